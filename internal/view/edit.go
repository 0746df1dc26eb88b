package view

import "github.com/dged-editor/dged/internal/textstore"

// maybeDeleteRegion is the shared prelude for char deletes and Add: when
// the mark is set and spans a non-empty region, it deletes that region,
// moves dot to the deletion point, clears the mark, and reports true.
func (v *View) maybeDeleteRegion() (bool, error) {
	if !v.markSet {
		return false, nil
	}
	region := textstore.NewRegion(v.Mark, v.Dot)
	if !region.HasSize() {
		return false, nil
	}
	loc, err := v.Buf.Delete(region)
	if err != nil {
		return false, err
	}
	v.Dot = loc
	v.markSet = false
	return true, nil
}

// Add performs a region-replacing insert: if the mark is set over a
// non-empty region, that region is deleted first; then data is inserted
// at dot, and dot moves to the insertion's end.
func (v *View) Add(data []byte) error {
	if _, err := v.maybeDeleteRegion(); err != nil {
		return err
	}
	end, err := v.Buf.Add(v.Dot, data)
	if err != nil {
		return err
	}
	v.Dot = end
	return nil
}

// DeleteChar deletes the selected region if one is active, otherwise the
// single character at dot.
func (v *View) DeleteChar() error {
	if handled, err := v.maybeDeleteRegion(); handled || err != nil {
		return err
	}
	end := v.Buf.NextChar(v.Dot)
	_, err := v.Buf.Delete(textstore.Region{Begin: v.Dot, End: end})
	return err
}

// DeletePreviousChar deletes the selected region if one is active,
// otherwise the single character before dot, moving dot backward.
func (v *View) DeletePreviousChar() error {
	if handled, err := v.maybeDeleteRegion(); handled || err != nil {
		return err
	}
	start := v.Buf.PreviousChar(v.Dot)
	loc, err := v.Buf.Delete(textstore.Region{Begin: start, End: v.Dot})
	if err != nil {
		return err
	}
	v.Dot = loc
	return nil
}

// KillLine cuts from dot to the end of the line through the kill ring. If
// dot already sits at end-of-line, it cuts the newline too (N is at least
// 1 so the cut is never a no-op there).
func (v *View) KillLine() error {
	lineLen := v.Buf.NumChars(v.Dot.Line)
	n := lineLen - v.Dot.Col
	if n <= 0 {
		n = 1
	}
	end := v.Dot
	for i := 0; i < n; i++ {
		end = v.Buf.NextChar(end)
	}
	_, err := v.Buf.Cut(textstore.Region{Begin: v.Dot, End: end})
	return err
}

// SortLines sorts the inclusive line range spanned by the mark/dot region.
func (v *View) SortLines() error {
	region := v.Region()
	return v.Buf.SortLines(region.Begin.Line, region.End.Line)
}
