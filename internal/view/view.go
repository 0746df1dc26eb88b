package view

import (
	"github.com/dged-editor/dged/internal/buffer"
	"github.com/dged-editor/dged/internal/textstore"
)

// ModelineState holds the last-rendered modeline text, replaced with a
// freshly formatted slice on each update.
type ModelineState struct {
	Text []byte
}

// View weakly references one Buffer and owns everything about how that
// buffer is currently being looked at: dot, mark, scroll origin, and
// viewport decoration flags.
type View struct {
	Buf *buffer.Buffer

	Dot  textstore.Location
	Mark textstore.Location

	markSet bool

	ScrollLine int
	ScrollCol  int

	Modeline    *ModelineState
	LineNumbers bool
	FringeWidth int
}

// New creates a view over buf with dot and mark at the origin.
func New(buf *buffer.Buffer) *View {
	return &View{Buf: buf}
}

// SetMark sets the mark to dot's current location and marks it active.
func (v *View) SetMark() {
	v.Mark = v.Dot
	v.markSet = true
}

// ClearMark deactivates the mark without changing its stored location.
func (v *View) ClearMark() {
	v.markSet = false
}

// MarkSet reports whether the mark is currently active.
func (v *View) MarkSet() bool {
	return v.markSet
}

// Region returns the region between mark and dot, normalized. HasSize is
// false when the mark is not set or dot equals mark.
func (v *View) Region() textstore.Region {
	if !v.markSet {
		return textstore.Region{Begin: v.Dot, End: v.Dot}
	}
	return textstore.NewRegion(v.Mark, v.Dot)
}

// clampDot re-clamps dot to the buffer's current bounds, e.g. after an
// edit that shortened the buffer.
func (v *View) clampDot() {
	v.Dot = v.Buf.Clamp(v.Dot.Line, v.Dot.Col)
}
