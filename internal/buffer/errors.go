package buffer

import "errors"

// Buffer errors.
var (
	// ErrReadOnly indicates a mutating operation was attempted on a
	// read-only buffer.
	ErrReadOnly = errors.New("buffer: read-only")

	// ErrNoBackingFile indicates write-to-file or reload was called on a
	// buffer with no associated path.
	ErrNoBackingFile = errors.New("buffer: no backing file")

	// ErrEmptyWord indicates word-at found no word-forming bytes at the
	// requested location.
	ErrEmptyWord = errors.New("buffer: no word at location")
)
