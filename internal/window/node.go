package window

import (
	"github.com/google/uuid"

	"github.com/dged-editor/dged/internal/view"
)

// Axis names the direction a split container divides its rectangle along.
type Axis int

const (
	// AxisHorizontal stacks children top/bottom.
	AxisHorizontal Axis = iota
	// AxisVertical places children side by side.
	AxisVertical
)

// Rect is a screen rectangle in cell coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Node is either an interior split container (Axis set, First/Second
// children populated) or a leaf window (ID/View populated). Every node
// carries the rectangle it currently occupies.
type Node struct {
	Rect Rect

	// Interior node fields.
	Axis   Axis
	First  *Node // left or top child
	Second *Node // right or bottom child
	parent *Node

	// Leaf node fields.
	ID   uuid.UUID
	View *view.View
}

func (n *Node) isLeaf() bool {
	return n.First == nil && n.Second == nil
}

// findLeaf locates the leaf with the given id within n's subtree.
func (n *Node) findLeaf(id uuid.UUID) *Node {
	if n == nil {
		return nil
	}
	if n.isLeaf() {
		if n.ID == id {
			return n
		}
		return nil
	}
	if found := n.First.findLeaf(id); found != nil {
		return found
	}
	return n.Second.findLeaf(id)
}

// sibling returns n's sibling under its parent, or nil if n is the root.
func (n *Node) sibling() *Node {
	if n.parent == nil {
		return nil
	}
	if n.parent.First == n {
		return n.parent.Second
	}
	return n.parent.First
}

// leaves appends every leaf in n's subtree to out, in left-to-right /
// top-to-bottom (in-order) order.
func (n *Node) leaves(out []*Node) []*Node {
	if n == nil {
		return out
	}
	if n.isLeaf() {
		return append(out, n)
	}
	out = n.First.leaves(out)
	return n.Second.leaves(out)
}
