package ansi

import "strconv"

// MoveCursor returns the CSI sequence that positions the cursor absolutely
// at the given 0-indexed row and column.
func MoveCursor(row, col int) []byte {
	return []byte("\x1b[" + strconv.Itoa(row+1) + ";" + strconv.Itoa(col+1) + "H")
}

// ClearToEnd returns the CSI sequence that clears from the cursor to the
// end of the screen.
func ClearToEnd() []byte {
	return []byte("\x1b[J")
}

// ShowCursor returns CSI ?25h (show) or CSI ?25l (hide).
func ShowCursor(show bool) []byte {
	if show {
		return []byte("\x1b[?25h")
	}
	return []byte("\x1b[?25l")
}
