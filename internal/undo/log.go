package undo

import "github.com/dged-editor/dged/internal/textstore"

// RecordKind discriminates the three undo record variants.
type RecordKind uint8

const (
	// KindAdd records that text was inserted across [Begin, End).
	KindAdd RecordKind = iota
	// KindDelete records that text was removed starting at Position.
	KindDelete
	// KindBoundary is a grouping marker, optionally a savepoint.
	KindBoundary
)

// Record is one entry in the undo log.
type Record struct {
	Kind RecordKind

	// Add fields.
	Begin textstore.Location
	End   textstore.Location

	// Delete fields. Bytes is owned by the log once pushed.
	Position textstore.Location
	Bytes    []byte
	Length   int

	// Boundary fields.
	SavePoint bool
}

// invalidTop is the sentinel meaning "nothing left to consume in this
// direction"; the next traversal resets top to the end of the log.
const invalidTop = -1

// Log is an append-only undo record stream with a cursor and an
// in-progress flag. The zero value is a ready-to-use empty log.
type Log struct {
	records    []Record
	top        int
	inProgress bool
}

// NewLog creates an empty undo log.
func NewLog() *Log {
	return &Log{top: 0}
}

// Len returns the number of records ever pushed (the log never shrinks).
func (l *Log) Len() int {
	return len(l.records)
}

func (l *Log) advanceTopOnPush() {
	if !l.inProgress {
		l.top = len(l.records)
	}
}

// PushBoundary appends a grouping marker. When savePoint is true, any
// prior record's savepoint flag is cleared first, since at most one
// record in the log may carry savepoint=true.
func (l *Log) PushBoundary(savePoint bool) {
	if savePoint {
		for i := range l.records {
			l.records[i].SavePoint = false
		}
	}
	l.records = append(l.records, Record{Kind: KindBoundary, SavePoint: savePoint})
	l.advanceTopOnPush()
}

// PushAdd appends an Add record, coalescing with the immediately previous
// record if it is also an Add whose End equals begin (compressing
// character-by-character typing into a single record).
func (l *Log) PushAdd(begin, end textstore.Location) {
	if n := len(l.records); n > 0 {
		prev := &l.records[n-1]
		if prev.Kind == KindAdd && prev.End == begin {
			prev.End = end
			l.advanceTopOnPush()
			return
		}
	}
	l.records = append(l.records, Record{Kind: KindAdd, Begin: begin, End: end})
	l.advanceTopOnPush()
}

// PushDelete appends a Delete record. The log takes ownership of bytes.
func (l *Log) PushDelete(position textstore.Location, bytes []byte, length int) {
	l.records = append(l.records, Record{Kind: KindDelete, Position: position, Bytes: bytes, Length: length})
	l.advanceTopOnPush()
}

// Begin brackets the start of an undo traversal: pushes made before the
// matching End do not advance top.
func (l *Log) Begin() {
	l.inProgress = true
}

// End closes a traversal opened by Begin.
func (l *Log) End() {
	l.inProgress = false
}

// InProgress reports whether a traversal is currently open.
func (l *Log) InProgress() bool {
	return l.inProgress
}

// Next consumes one group starting at top: any boundary run immediately
// at top, then edit records until the next boundary or the start of the
// log. Records are returned in logical (chronological) order, the reverse
// of how they were consumed from storage. If top was already at the
// invalid sentinel, it is first reset to the end of the log, so a
// traversal that has undone everything flips into consuming the inverse
// records appended by the prior traversal — implicit redo. Returns false
// if there was nothing to consume.
func (l *Log) Next(out *[]Record) bool {
	if l.top == invalidTop {
		l.top = len(l.records)
	}

	i := l.top - 1
	var consumed []Record

	for i >= 0 && l.records[i].Kind == KindBoundary {
		consumed = append(consumed, l.records[i])
		i--
	}
	for i >= 0 && l.records[i].Kind != KindBoundary {
		consumed = append(consumed, l.records[i])
		i--
	}

	if i < 0 {
		l.top = invalidTop
	} else {
		l.top = i + 1
	}

	if len(consumed) == 0 {
		*out = nil
		return false
	}

	for a, b := 0, len(consumed)-1; a < b; a, b = a+1, b-1 {
		consumed[a], consumed[b] = consumed[b], consumed[a]
	}
	*out = consumed
	return true
}

// Top returns the raw cursor value, for tests and diagnostics.
func (l *Log) Top() int {
	return l.top
}
