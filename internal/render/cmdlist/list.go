package cmdlist

// DefaultCapacity is the primitive count a list holds before it chains to a
// successor.
const DefaultCapacity = 256

// List is a growable sequence of draw primitives anchored at an
// (OriginX, OriginY) offset. When a list fills past its capacity it
// allocates a successor with the same origin and name and chains to it;
// Each walks the full chain transparently.
type List struct {
	OriginX, OriginY int
	Name             string

	arena    *Arena
	capacity int
	prims    []Primitive
	next     *List
}

// NewList creates an empty list. A capacity <= 0 uses DefaultCapacity.
func NewList(arena *Arena, originX, originY int, name string, capacity int) *List {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List{
		OriginX:  originX,
		OriginY:  originY,
		Name:     name,
		arena:    arena,
		capacity: capacity,
		prims:    make([]Primitive, 0, capacity),
	}
}

// tail returns the last list in the chain, the one new primitives append to.
func (l *List) tail() *List {
	t := l
	for t.next != nil {
		t = t.next
	}
	return t
}

func (l *List) push(p Primitive) {
	t := l.tail()
	if len(t.prims) >= t.capacity {
		t.next = NewList(t.arena, l.OriginX, l.OriginY, l.Name, t.capacity)
		t = t.next
	}
	t.prims = append(t.prims, p)
}

// DrawText renders data verbatim at (col, row), relative to the list's
// origin. The list borrows data; the caller must not mutate it afterward.
func (l *List) DrawText(col, row int, data []byte) {
	l.push(Primitive{Kind: KindDrawText, Col: col, Row: row, Bytes: data})
}

// DrawTextCopy is DrawText but the list takes an arena-owned copy of data.
func (l *List) DrawTextCopy(col, row int, data []byte) {
	owned := l.arena.Alloc(len(data))
	copy(owned, data)
	l.push(Primitive{Kind: KindDrawTextCopy, Col: col, Row: row, Bytes: owned})
}

// DrawRepeated replicates r n times starting at (col, row).
func (l *List) DrawRepeated(col, row int, r rune, n int) {
	if n <= 0 {
		return
	}
	l.push(Primitive{Kind: KindDrawRepeated, Col: col, Row: row, Rune: r, Count: n})
}

// PushFormat appends an ANSI SGR fragment (e.g. "1" or "38;5;196") to the
// format stack consulted by subsequent draw primitives.
func (l *List) PushFormat(fragment string) {
	if fragment == "" {
		return
	}
	l.push(Primitive{Kind: KindPushFormat, Format: fragment})
}

// ClearFormat resets the format stack to the neutral baseline.
func (l *List) ClearFormat() {
	l.push(Primitive{Kind: KindClearFormat})
}

// SetShowWhitespace toggles whitespace-substitution rendering: when on,
// space draws as a mid-dot in color 90 and tab as an arrow plus three
// spaces.
func (l *List) SetShowWhitespace(on bool) {
	l.push(Primitive{Kind: KindSetShowWhitespace, ShowWhitespace: on})
}

// DrawList splices child into this list. child's own origin and format
// state are its own; it inherits nothing from the parent.
func (l *List) DrawList(child *List) {
	l.push(Primitive{Kind: KindDrawList, Child: child})
}

// Each walks the chain in order, invoking fn once per primitive with the
// chain segment it belongs to (chained successors share the head's origin
// and name, but fn may still want the segment for arena-free inspection).
func (l *List) Each(fn func(seg *List, p Primitive)) {
	for seg := l; seg != nil; seg = seg.next {
		for _, p := range seg.prims {
			fn(seg, p)
		}
	}
}

// Len reports the total primitive count across the whole chain.
func (l *List) Len() int {
	n := 0
	for seg := l; seg != nil; seg = seg.next {
		n += len(seg.prims)
	}
	return n
}
