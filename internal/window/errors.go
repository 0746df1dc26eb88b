package window

import "errors"

var (
	// ErrLeafNotFound is returned when an operation names a leaf id not
	// present in the tree.
	ErrLeafNotFound = errors.New("window: leaf not found")
	// ErrCannotCloseRoot is returned by Close when the tree has exactly
	// one window left.
	ErrCannotCloseRoot = errors.New("window: cannot close the only window")
)
