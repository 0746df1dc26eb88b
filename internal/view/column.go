package view

import "github.com/dged-editor/dged/internal/codec"

const defaultTabWidth = 4

// VisualColumn converts dot's codepoint column into a screen-relative
// column: it walks the line's bytes up to dot.Col, expanding tabs to
// tabWidth cells and using the codec for every other codepoint's width,
// then adds the left-fringe width and subtracts horizontal scroll.
// tabWidth <= 0 falls back to defaultTabWidth.
func (v *View) VisualColumn(tabWidth int) int {
	return v.rawVisualColumn(tabWidth) + v.FringeWidth - v.ScrollCol
}

// rawVisualColumn is VisualColumn without the fringe/scroll adjustment,
// used when deciding whether to recenter scroll in the first place.
func (v *View) rawVisualColumn(tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	data := v.Buf.Line(v.Dot.Line).Bytes

	visual := 0
	col := 0
	for i := 0; i < len(data) && col < v.Dot.Col; {
		r, width, ok := codec.DecodeRune(data, i)
		if !ok {
			i++
			col++
			continue
		}
		if r == '\t' {
			visual += tabWidth
		} else {
			visual += codec.RuneWidth(r)
		}
		i += width
		col++
	}
	return visual
}
