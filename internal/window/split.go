package window

import (
	"github.com/google/uuid"

	"github.com/dged-editor/dged/internal/view"
)

// cloneView creates a fresh view over the same buffer as v, copying only
// dot as the window-tree design specifies; mark and scroll start fresh.
func cloneView(v *view.View) *view.View {
	nv := view.New(v.Buf)
	nv.Dot = v.Dot
	return nv
}

// SplitHorizontal replaces leaf with a left/right split: the left child
// keeps leaf's buffer and dot, the right child is a fresh view over the
// same buffer with dot copied. Returns the new right-hand leaf's id.
func (t *Tree) SplitHorizontal(id uuid.UUID) (uuid.UUID, error) {
	return t.split(id, AxisVertical)
}

// SplitVertical replaces leaf with a top/bottom split, analogous to
// SplitHorizontal along the other axis.
func (t *Tree) SplitVertical(id uuid.UUID) (uuid.UUID, error) {
	return t.split(id, AxisHorizontal)
}

// Split applies the heuristic from the window-tree design: a tall, narrow
// rectangle (height*2 > width) gets SplitVertical (top/bottom); anything
// else gets SplitHorizontal (left/right).
func (t *Tree) Split(id uuid.UUID) (uuid.UUID, error) {
	leaf := t.Root.findLeaf(id)
	if leaf == nil {
		return uuid.Nil, ErrLeafNotFound
	}
	if leaf.Rect.Height*2 > leaf.Rect.Width {
		return t.SplitVertical(id)
	}
	return t.SplitHorizontal(id)
}

func (t *Tree) split(id uuid.UUID, axis Axis) (uuid.UUID, error) {
	leaf := t.Root.findLeaf(id)
	if leaf == nil {
		return uuid.Nil, ErrLeafNotFound
	}

	firstRect, secondRect := splitRect(leaf.Rect, axis)

	newLeaf := &Node{
		ID:   uuid.New(),
		Rect: secondRect,
		View: cloneView(leaf.View),
	}
	keptLeaf := &Node{
		ID:   leaf.ID,
		Rect: firstRect,
		View: leaf.View,
	}

	*leaf = Node{
		Rect:   leaf.Rect,
		Axis:   axis,
		First:  keptLeaf,
		Second: newLeaf,
		parent: leaf.parent,
	}
	keptLeaf.parent = leaf
	newLeaf.parent = leaf

	return newLeaf.ID, nil
}

// splitRect divides r along axis, giving the first half the floor of the
// split and the remainder to the second half.
func splitRect(r Rect, axis Axis) (first, second Rect) {
	if axis == AxisHorizontal {
		top := r.Height / 2
		first = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: top}
		second = Rect{X: r.X, Y: r.Y + top, Width: r.Width, Height: r.Height - top}
		return first, second
	}
	left := r.Width / 2
	first = Rect{X: r.X, Y: r.Y, Width: left, Height: r.Height}
	second = Rect{X: r.X + left, Y: r.Y, Width: r.Width - left, Height: r.Height}
	return first, second
}
