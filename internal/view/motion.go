package view

// The Move* methods delegate to the underlying buffer's motion primitives
// and update dot. They never touch the mark; a command binding decides
// whether a given keystroke should also clear or extend the selection.

// MoveNextChar moves dot forward one codepoint.
func (v *View) MoveNextChar() { v.Dot = v.Buf.NextChar(v.Dot) }

// MovePreviousChar moves dot back one codepoint.
func (v *View) MovePreviousChar() { v.Dot = v.Buf.PreviousChar(v.Dot) }

// MoveNextWord moves dot to the start of the next word.
func (v *View) MoveNextWord() { v.Dot = v.Buf.NextWord(v.Dot) }

// MovePreviousWord moves dot to the start of the previous word.
func (v *View) MovePreviousWord() { v.Dot = v.Buf.PreviousWord(v.Dot) }

// MoveNextLine moves dot down one line, clamping the column.
func (v *View) MoveNextLine() { v.Dot = v.Buf.NextLine(v.Dot) }

// MovePreviousLine moves dot up one line, clamping the column.
func (v *View) MovePreviousLine() { v.Dot = v.Buf.PreviousLine(v.Dot) }

// MoveToEnd moves dot to the end of the buffer.
func (v *View) MoveToEnd() { v.Dot = v.Buf.End() }

// MoveToLineStart moves dot to column 0 of its current line.
func (v *View) MoveToLineStart() { v.Dot = v.Buf.Clamp(v.Dot.Line, 0) }

// MoveToLineEnd moves dot to the end of its current line.
func (v *View) MoveToLineEnd() { v.Dot = v.Buf.Clamp(v.Dot.Line, v.Buf.NumChars(v.Dot.Line)) }
