// Package killring implements a fixed-capacity ring of cut/copied text
// chunks with yank/yank-pop cycling semantics.
package killring
