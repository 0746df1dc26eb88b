package buffer

import "github.com/dged-editor/dged/internal/textstore"

// isWordDelimiter reports whether r separates words: whitespace or one of
// the common punctuation marks named in the motion spec.
func isWordDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '.', '(', ')', '"', ',', ';', ':', '!', '?', '\'', '[', ']', '{', '}':
		return true
	}
	return false
}

// lineRunes decodes a line's bytes into runes, indexable by column.
func (b *Buffer) lineRunes(lineIdx int) []rune {
	chunk := b.store.GetLine(lineIdx)
	return []rune(string(chunk.Bytes))
}

// Clamp clamps (line, col) to valid store coordinates.
func (b *Buffer) Clamp(line, col int) textstore.Location {
	return b.store.Clamp(textstore.Location{Line: line, Col: col})
}

// End returns the location just past the last character in the buffer.
func (b *Buffer) End() textstore.Location {
	return b.store.EndLocation()
}

// NextChar advances one codepoint, wrapping onto the next line at EOL.
func (b *Buffer) NextChar(loc textstore.Location) textstore.Location {
	loc = b.store.Clamp(loc)
	lineLen := b.store.NumChars(loc.Line)
	if loc.Col < lineLen {
		return textstore.Location{Line: loc.Line, Col: loc.Col + 1}
	}
	if loc.Line+1 < b.store.NumLines() {
		return textstore.Location{Line: loc.Line + 1, Col: 0}
	}
	return loc
}

// PreviousChar retreats one codepoint, wrapping onto the prior line's end.
func (b *Buffer) PreviousChar(loc textstore.Location) textstore.Location {
	loc = b.store.Clamp(loc)
	if loc.Col > 0 {
		return textstore.Location{Line: loc.Line, Col: loc.Col - 1}
	}
	if loc.Line > 0 {
		return textstore.Location{Line: loc.Line - 1, Col: b.store.NumChars(loc.Line - 1)}
	}
	return loc
}

// NextLine moves down one line, clamping the column to the target line's
// length. At the last line it holds position (clamped).
func (b *Buffer) NextLine(loc textstore.Location) textstore.Location {
	loc = b.store.Clamp(loc)
	return b.store.Clamp(textstore.Location{Line: loc.Line + 1, Col: loc.Col})
}

// PreviousLine moves up one line, clamping the column to the target
// line's length.
func (b *Buffer) PreviousLine(loc textstore.Location) textstore.Location {
	loc = b.store.Clamp(loc)
	return b.store.Clamp(textstore.Location{Line: loc.Line - 1, Col: loc.Col})
}

// NextWord skips the current run of non-delimiters (if dot sits inside
// one), then skips the following run of delimiters, landing at the start
// of the next word.
func (b *Buffer) NextWord(loc textstore.Location) textstore.Location {
	loc = b.store.Clamp(loc)
	runes := b.lineRunes(loc.Line)
	n := len(runes)
	i := loc.Col
	for i < n && !isWordDelimiter(runes[i]) {
		i++
	}
	for i < n && isWordDelimiter(runes[i]) {
		i++
	}
	return textstore.Location{Line: loc.Line, Col: i}
}

// PreviousWord is NextWord's mirror: skip the delimiter run immediately
// before dot, then skip backward across the word run, landing at its
// start.
func (b *Buffer) PreviousWord(loc textstore.Location) textstore.Location {
	loc = b.store.Clamp(loc)
	runes := b.lineRunes(loc.Line)
	i := loc.Col
	if i > len(runes) {
		i = len(runes)
	}
	for i > 0 && isWordDelimiter(runes[i-1]) {
		i--
	}
	for i > 0 && !isWordDelimiter(runes[i-1]) {
		i--
	}
	return textstore.Location{Line: loc.Line, Col: i}
}

// WordAt returns the region spanning the word surrounding loc. Returns
// ErrEmptyWord when loc sits on a delimiter or an empty line.
func (b *Buffer) WordAt(loc textstore.Location) (textstore.Region, error) {
	loc = b.store.Clamp(loc)
	runes := b.lineRunes(loc.Line)
	n := len(runes)
	if n == 0 {
		return textstore.Region{}, ErrEmptyWord
	}
	col := loc.Col
	if col >= n {
		col = n - 1
	}
	if isWordDelimiter(runes[col]) {
		return textstore.Region{}, ErrEmptyWord
	}
	start, end := col, col
	for start > 0 && !isWordDelimiter(runes[start-1]) {
		start--
	}
	for end < n && !isWordDelimiter(runes[end]) {
		end++
	}
	return textstore.NewRegion(
		textstore.Location{Line: loc.Line, Col: start},
		textstore.Location{Line: loc.Line, Col: end},
	), nil
}
