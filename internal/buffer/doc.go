// Package buffer composes a text store, an undo log and a kill ring into
// the editing engine's unit of editable content: named text backed by an
// optional file, with read-only/modified flags, a language descriptor and
// hook lists that fire around every mutation.
package buffer
