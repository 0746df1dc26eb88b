// Package builtins registers the small set of commands the default keymap
// binds directly: motion, kill-ring, undo, exit, window management,
// buffer save, and minibuffer prompt control. Commands close over the
// process-scoped collaborators they need (window tree, minibuffer, frame
// loop), which are wired once at startup, and take the active window
// from command.Context.
package builtins
