package buffer

import (
	"github.com/dged-editor/dged/internal/textstore"
	"github.com/dged-editor/dged/internal/undo"
)

// PushBoundary marks the end of a keystroke group for undo purposes. A
// savepoint boundary clears the savepoint flag from any prior boundary.
func (b *Buffer) PushBoundary(savePoint bool) {
	b.undoLog.PushBoundary(savePoint)
}

// Undo inverts one undo group and returns the location the dot should move
// to afterward.
//
// A group is returned by the log in chronological (oldest-first) order,
// but its records must be inverted newest-first: an Add near the end of a
// compound edit (e.g. the insert half of a selection replace) was recorded
// against buffer coordinates that only hold once any later records in the
// same group have already been unwound. Applying oldest-first would invert
// against stale coordinates.
//
// Both insertRaw and deleteRaw push their own inverse record onto the
// undo log as a side effect; since this happens inside the Begin/End
// bracket below, those pushes land on the tail without advancing top,
// becoming the redo fodder for the next traversal.
func (b *Buffer) Undo(loc textstore.Location) textstore.Location {
	b.undoLog.Begin()
	defer b.undoLog.End()

	var group []undo.Record
	if !b.undoLog.Next(&group) {
		return loc
	}

	result := loc
	savePoint := false
	for i := len(group) - 1; i >= 0; i-- {
		r := group[i]
		switch r.Kind {
		case undo.KindAdd:
			b.deleteRaw(textstore.Region{Begin: r.Begin, End: r.End})
			result = r.Begin
		case undo.KindDelete:
			result = b.insertRaw(r.Position, r.Bytes)
		case undo.KindBoundary:
			if r.SavePoint {
				savePoint = true
			}
		}
	}
	// The inverse edits above set modified; a savepoint in the group
	// clears it once they are all applied.
	if savePoint {
		b.modified = false
	}
	return result
}
