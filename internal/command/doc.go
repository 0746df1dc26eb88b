// Package command implements the command registry: a hash map from a
// djb2 name hash to a registered command, plus the context a command
// function receives when invoked by the keymap resolver or the
// minibuffer.
package command
