package buffer

import "github.com/dged-editor/dged/internal/textstore"

// Copy pushes region's text onto the kill ring without modifying the
// buffer. A no-op when the buffer has no kill ring or region is empty.
func (b *Buffer) Copy(region textstore.Region) {
	if b.killRing == nil || !region.HasSize() {
		return
	}
	chunk := b.store.GetRegion(region.Begin, region.End)
	b.killRing.Copy(chunk.Bytes)
}

// Cut copies region to the kill ring, then deletes it.
func (b *Buffer) Cut(region textstore.Region) (textstore.Location, error) {
	b.Copy(region)
	return b.Delete(region)
}

// Paste inserts the kill ring's most recent entry at loc and remembers the
// inserted region so a following PasteOlder can replace it in place.
func (b *Buffer) Paste(loc textstore.Location) (textstore.Location, error) {
	if b.readOnly {
		b.echoReadOnly()
		return loc, ErrReadOnly
	}
	if b.killRing == nil {
		return b.store.Clamp(loc), nil
	}
	data, ok := b.killRing.Paste()
	if !ok {
		return b.store.Clamp(loc), nil
	}
	loc = b.store.Clamp(loc)
	end := b.insertRaw(loc, data)
	b.lastPasteRegion = textstore.NewRegion(loc, end)
	b.hasLastPaste = true
	return end, nil
}

// PasteOlder replaces the text from the immediately preceding Paste or
// PasteOlder with the kill ring's next-older entry. When the previous
// action was not a paste, it behaves like a fresh Paste at loc.
func (b *Buffer) PasteOlder(loc textstore.Location) (textstore.Location, error) {
	if b.readOnly {
		b.echoReadOnly()
		return loc, ErrReadOnly
	}
	if b.killRing == nil {
		return b.store.Clamp(loc), nil
	}
	if !b.hasLastPaste || !b.killRing.PasteUpToDate() {
		return b.Paste(loc)
	}
	data, ok := b.killRing.PasteOlder()
	if !ok {
		return b.store.Clamp(loc), nil
	}
	b.deleteRaw(b.lastPasteRegion)
	start := b.lastPasteRegion.Begin
	end := b.insertRaw(start, data)
	b.lastPasteRegion = textstore.NewRegion(start, end)
	return end, nil
}
