package buffer

import (
	"bytes"

	"github.com/dged-editor/dged/internal/codec"
	"github.com/dged-editor/dged/internal/textstore"
)

// maxIndentWidth caps Indent's inserted run of spaces.
const maxIndentWidth = 16

// insertRaw performs the text-store mutation, undo recording, modified-flag
// update and insert-hook dispatch for an insertion, without touching the
// kill ring's paste-up-to-date flag. Add, Paste and PasteOlder all funnel
// through this so only the public entry points decide whether the paste
// state should be disturbed.
func (b *Buffer) insertRaw(loc textstore.Location, data []byte) textstore.Location {
	loc = b.store.Clamp(loc)
	b.store.InsertAt(loc, data)
	end := endOfInsert(loc, data)

	b.undoLog.PushAdd(loc, end)
	b.modified = true
	if bytes.IndexByte(data, '\n') >= 0 {
		b.undoLog.PushBoundary(false)
	}

	region := textstore.NewRegion(loc, end)
	b.hooks.insert.forEach(func(fn EditHookFunc, ud any) { fn(b, region, len(data), ud) })
	return end
}

// deleteRaw performs the text-store mutation, undo recording, modified-flag
// update and delete-hook dispatch for a deletion, without touching the
// kill ring's paste-up-to-date flag.
func (b *Buffer) deleteRaw(region textstore.Region) {
	if !region.HasSize() {
		return
	}
	chunk := b.store.GetRegion(region.Begin, region.End)
	owned := append([]byte(nil), chunk.Bytes...)
	b.store.Delete(region.Begin, region.End)

	b.undoLog.PushDelete(region.Begin, owned, len(owned))
	b.modified = true
	if region.Begin.Line != region.End.Line {
		b.undoLog.PushBoundary(false)
	}

	b.hooks.delete.forEach(func(fn EditHookFunc, ud any) { fn(b, region, len(owned), ud) })
}

// endOfInsert computes the location just past data once inserted at loc.
func endOfInsert(loc textstore.Location, data []byte) textstore.Location {
	segments := bytes.Split(data, []byte{'\n'})
	if len(segments) == 1 {
		return textstore.Location{Line: loc.Line, Col: loc.Col + codec.TotalChars(segments[0])}
	}
	last := segments[len(segments)-1]
	return textstore.Location{Line: loc.Line + len(segments) - 1, Col: codec.TotalChars(last)}
}

// Add inserts data at loc and returns the location just past it. An insert
// is a non-paste action, so it clears the kill ring's paste-up-to-date
// flag.
func (b *Buffer) Add(loc textstore.Location, data []byte) (textstore.Location, error) {
	if b.readOnly {
		b.echoReadOnly()
		return loc, ErrReadOnly
	}
	if len(data) == 0 {
		return b.store.Clamp(loc), nil
	}
	end := b.insertRaw(loc, data)
	if b.killRing != nil {
		b.killRing.Invalidate()
	}
	return end, nil
}

// Delete removes region and returns region.Begin.
func (b *Buffer) Delete(region textstore.Region) (textstore.Location, error) {
	if b.readOnly {
		b.echoReadOnly()
		return region.Begin, ErrReadOnly
	}
	b.deleteRaw(region)
	if b.killRing != nil {
		b.killRing.Invalidate()
	}
	return region.Begin, nil
}

// Newline inserts a line break at loc.
func (b *Buffer) Newline(loc textstore.Location) (textstore.Location, error) {
	return b.Add(loc, []byte{'\n'})
}

// Indent inserts tabWidth spaces at loc, capped at 16.
func (b *Buffer) Indent(loc textstore.Location, tabWidth int) (textstore.Location, error) {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	if tabWidth > maxIndentWidth {
		tabWidth = maxIndentWidth
	}
	return b.Add(loc, bytes.Repeat([]byte{' '}, tabWidth))
}
