// Package keymap resolves a keystroke to a binding by walking a stack of
// keymaps from innermost (an active prefix) outward. A binding is either a
// command looked up by name, an anonymous command function, or a nested
// keymap that becomes the sole keymap consulted for the following
// keystroke.
package keymap
