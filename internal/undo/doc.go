// Package undo implements the editing engine's append-only undo record
// log: a sequence of Add/Delete/Boundary records plus a single cursor
// ("top") that tracks how far backward a traversal has consumed.
//
// The log never truncates. Undoing a group applies each record's inverse
// to the buffer, and those inverse mutations are themselves pushed back
// onto the tail of the log (without advancing top, since the push happens
// during a begin/end-bracketed traversal). Because inverting an inverse
// record reproduces the original edit, the very same Next call that
// implements undo also implements redo once top has been walked all the
// way back to the sentinel "invalid" position: the next traversal resets
// top to the end of the log and starts consuming the inverse records
// appended by the prior undo session, in logical (forward) order.
package undo
