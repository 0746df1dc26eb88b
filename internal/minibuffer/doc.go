// Package minibuffer implements the echo area: a single-line buffer that
// displays transient status messages and, while a prompt is active, reads
// one line of user input on behalf of an interactive command.
package minibuffer
