package buffer

import (
	"bytes"
	"sort"

	"github.com/dged-editor/dged/internal/textstore"
)

// Line returns a borrowed chunk for the given line.
func (b *Buffer) Line(lineIdx int) textstore.Chunk {
	return b.store.GetLine(lineIdx)
}

// NumLines returns the number of lines in the buffer.
func (b *Buffer) NumLines() int {
	return b.store.NumLines()
}

// NumChars returns the codepoint count of the given line.
func (b *Buffer) NumChars(lineIdx int) int {
	return b.store.NumChars(lineIdx)
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

// SortLines rewrites the inclusive line range [start, end] in lexicographic
// byte order, routed through Delete and Add so the rewrite is undoable and
// fires the ordinary edit hooks like any other mutation.
func (b *Buffer) SortLines(start, end int) error {
	if b.readOnly {
		b.echoReadOnly()
		return ErrReadOnly
	}
	n := b.store.NumLines()
	if n == 0 {
		return nil
	}
	start = clampInt(start, 0, n-1)
	end = clampInt(end, 0, n-1)
	if start > end {
		start, end = end, start
	}

	lines := make([][]byte, 0, end-start+1)
	for i := start; i <= end; i++ {
		c := b.store.GetLine(i)
		lines = append(lines, append([]byte(nil), c.Bytes...))
	}
	sort.Slice(lines, func(i, j int) bool { return bytes.Compare(lines[i], lines[j]) < 0 })

	regionStart := textstore.Location{Line: start, Col: 0}
	regionEnd := textstore.Location{Line: end, Col: b.store.NumChars(end)}

	if _, err := b.Delete(textstore.NewRegion(regionStart, regionEnd)); err != nil {
		return err
	}
	if _, err := b.Add(regionStart, bytes.Join(lines, []byte{'\n'})); err != nil {
		return err
	}
	return nil
}
