// Package cmdlist implements the command-list renderer: a growable,
// chainable sequence of typed draw primitives emitted by buffer and window
// updates, later translated into terminal bytes by render/ansi. Copied draw
// bytes are allocated from a shared per-frame Arena; the List values
// themselves, including chained successors, are allocated on the general
// heap.
package cmdlist
