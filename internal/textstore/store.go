package textstore

import (
	"bytes"

	"github.com/dged-editor/dged/internal/codec"
)

// Store is a mutable, line-addressable UTF-8 text sequence plus a set of
// text-property spans. The zero value is a valid empty store.
type Store struct {
	lines      []*line
	properties []Span
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// NumLines returns the number of lines currently stored.
func (s *Store) NumLines() int {
	return len(s.lines)
}

// NumChars returns the number of codepoints on the given line. Out-of-range
// indices return 0.
func (s *Store) NumChars(lineIdx int) int {
	l := s.lineAt(lineIdx)
	if l == nil {
		return 0
	}
	return l.nchars()
}

// lineAt returns the line at idx, or nil if out of range.
func (s *Store) lineAt(idx int) *line {
	if idx < 0 || idx >= len(s.lines) {
		return nil
	}
	return s.lines[idx]
}

// ColToByte converts a codepoint column on lineIdx to a byte offset,
// clamping col to the line's length.
func (s *Store) ColToByte(lineIdx, col int) int {
	l := s.lineAt(lineIdx)
	if l == nil {
		return 0
	}
	if col < 0 {
		col = 0
	}
	n := codec.NBytes(l.bytes, col)
	if n > len(l.bytes) {
		n = len(l.bytes)
	}
	return n
}

// ByteToCol converts a byte offset on lineIdx to a codepoint column.
func (s *Store) ByteToCol(lineIdx, byteOff int) int {
	l := s.lineAt(lineIdx)
	if l == nil {
		return 0
	}
	if byteOff > len(l.bytes) {
		byteOff = len(l.bytes)
	}
	return codec.NChars(l.bytes, byteOff)
}

// Clamp returns loc clamped to valid store coordinates: the line index is
// clamped to [0, NumLines()-1] (or (0,0) when the store is empty) and the
// column is clamped to the clamped line's length.
func (s *Store) Clamp(loc Location) Location {
	if len(s.lines) == 0 {
		return Location{0, 0}
	}
	line := loc.Line
	if line < 0 {
		line = 0
	}
	if line >= len(s.lines) {
		line = len(s.lines) - 1
	}
	col := loc.Col
	if col < 0 {
		col = 0
	}
	max := s.lines[line].nchars()
	if col > max {
		col = max
	}
	return Location{Line: line, Col: col}
}

// ensureLine grows the store with empty lines so that idx is valid.
// Returns the number of lines added.
func (s *Store) ensureLine(idx int) int {
	before := len(s.lines)
	for len(s.lines) <= idx {
		s.lines = append(s.lines, newLine(nil))
	}
	return len(s.lines) - before
}

// Append inserts bytes at the end of the store and returns the number of
// new lines created.
func (s *Store) Append(data []byte) int {
	end := s.EndLocation()
	return s.InsertAt(end, data)
}

// EndLocation returns the location just past the last character in the
// store.
func (s *Store) EndLocation() Location {
	if len(s.lines) == 0 {
		return Location{0, 0}
	}
	last := len(s.lines) - 1
	return Location{Line: last, Col: s.lines[last].nchars()}
}

// InsertAt inserts data, which may contain newlines, at loc. The bytes
// before the first newline are appended into the target line at the byte
// offset implied by loc.Col; subsequent segments become new lines. An
// out-of-range loc.Line extends the store with empty lines. Returns the
// number of lines added.
func (s *Store) InsertAt(loc Location, data []byte) int {
	before := len(s.lines)

	s.ensureLine(loc.Line)
	target := s.lines[loc.Line]
	bo := codec.NBytes(target.bytes, loc.Col)
	if bo > len(target.bytes) {
		bo = len(target.bytes)
	}
	prefix := append([]byte(nil), target.bytes[:bo]...)
	suffix := append([]byte(nil), target.bytes[bo:]...)

	segments := bytes.Split(data, []byte{'\n'})

	if len(segments) == 1 {
		newBytes := append(append(prefix, segments[0]...), suffix...)
		target.bytes = newBytes
		target.changed = true
	} else {
		newLines := make([]*line, len(segments))
		first := append(append([]byte(nil), prefix...), segments[0]...)
		newLines[0] = &line{bytes: first, changed: true}
		for i := 1; i < len(segments)-1; i++ {
			newLines[i] = &line{bytes: append([]byte(nil), segments[i]...), changed: true}
		}
		last := append(append([]byte(nil), segments[len(segments)-1]...), suffix...)
		newLines[len(segments)-1] = &line{bytes: last, changed: true}

		tail := append([]*line(nil), s.lines[loc.Line+1:]...)
		s.lines = append(s.lines[:loc.Line], newLines...)
		s.lines = append(s.lines, tail...)
	}

	return len(s.lines) - before
}

// Delete removes the text in the half-open range [start, end), clamping
// column values beyond a line's length to end-of-line and merging the
// tail of the last line into the first when the range crosses a newline.
// If the store becomes entirely empty, it drops to zero lines.
func (s *Store) Delete(start, end Location) {
	if len(s.lines) == 0 {
		return
	}
	if start.Compare(end) > 0 {
		start, end = end, start
	}
	startLine := clampInt(start.Line, 0, len(s.lines)-1)
	endLine := clampInt(end.Line, 0, len(s.lines)-1)
	if startLine == endLine && start.Col == end.Col {
		return
	}

	startByte := s.ColToByte(startLine, start.Col)
	endByte := s.ColToByte(endLine, end.Col)

	prefix := append([]byte(nil), s.lines[startLine].bytes[:startByte]...)
	suffix := append([]byte(nil), s.lines[endLine].bytes[endByte:]...)
	merged := append(prefix, suffix...)

	newLines := make([]*line, 0, len(s.lines)-(endLine-startLine))
	newLines = append(newLines, s.lines[:startLine]...)
	newLines = append(newLines, &line{bytes: merged, changed: true})
	newLines = append(newLines, s.lines[endLine+1:]...)
	s.lines = newLines

	if len(s.lines) == 1 && len(s.lines[0].bytes) == 0 {
		s.lines = nil
	}
}

// GetLine returns a borrowed view of the given line. Out-of-range indices
// yield an empty, non-allocated chunk.
func (s *Store) GetLine(lineIdx int) Chunk {
	l := s.lineAt(lineIdx)
	if l == nil {
		return Chunk{Line: lineIdx, Allocated: false}
	}
	return Chunk{Bytes: l.bytes, Line: lineIdx, Allocated: false}
}

// GetRegion returns a freshly owned concatenation of the text in [start,
// end), joining spanned lines with '\n'.
func (s *Store) GetRegion(start, end Location) Chunk {
	if len(s.lines) == 0 || start.Compare(end) == 0 {
		return Chunk{Allocated: true}
	}
	if start.Compare(end) > 0 {
		start, end = end, start
	}
	startLine := clampInt(start.Line, 0, len(s.lines)-1)
	endLine := clampInt(end.Line, 0, len(s.lines)-1)

	var buf bytes.Buffer
	for i := startLine; i <= endLine; i++ {
		l := s.lines[i]
		lo, hi := 0, len(l.bytes)
		if i == startLine {
			lo = s.ColToByte(i, start.Col)
		}
		if i == endLine {
			hi = s.ColToByte(i, end.Col)
		}
		if lo > hi {
			lo = hi
		}
		buf.Write(l.bytes[lo:hi])
		if i != endLine {
			buf.WriteByte('\n')
		}
	}
	return Chunk{Bytes: buf.Bytes(), Line: startLine, Allocated: true}
}

// ForEachLine visits count lines starting at start in order, yielding a
// borrowed chunk for each. The callback must not mutate the store.
func (s *Store) ForEachLine(start, count int, fn func(Chunk)) {
	for i := start; i < start+count && i < len(s.lines); i++ {
		if i < 0 {
			continue
		}
		fn(s.GetLine(i))
	}
}

// AddProperty registers a text-property span.
func (s *Store) AddProperty(span Span) {
	s.properties = append(s.properties, span)
}

// PropertiesAt returns every span containing loc.
func (s *Store) PropertiesAt(loc Location) []Span {
	var out []Span
	for _, sp := range s.properties {
		if sp.Contains(loc) {
			out = append(out, sp)
		}
	}
	return out
}

// ClearProperties removes every registered span.
func (s *Store) ClearProperties() {
	s.properties = nil
}

// TotalBytes returns the sum of per-line byte counts plus the newlines
// between them, satisfying the store's size invariant.
func (s *Store) TotalBytes() int {
	if len(s.lines) == 0 {
		return 0
	}
	total := -1 // no leading separator
	for _, l := range s.lines {
		total += len(l.bytes) + 1
	}
	return total
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
