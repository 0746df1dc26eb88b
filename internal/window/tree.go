package window

import (
	"github.com/google/uuid"

	"github.com/dged-editor/dged/internal/buffer"
	"github.com/dged-editor/dged/internal/view"
)

// Tree is a binary split tree of windows plus a standalone minibuffer
// window pinned to the bottom row. ActiveID names the leaf receiving
// keystrokes.
type Tree struct {
	Root       *Node
	Minibuffer *Node

	ActiveID uuid.UUID

	Height, Width int
}

// Init builds a tree with a single window over initial and a minibuffer
// window over mini, sized to fill height x width. The minibuffer occupies
// the last row; the root window gets the rest.
func Init(height, width int, initial, mini *buffer.Buffer) *Tree {
	root := &Node{
		ID:   uuid.New(),
		View: view.New(initial),
		Rect: Rect{X: 0, Y: 0, Width: width, Height: height - 1},
	}
	miniNode := &Node{
		ID:   uuid.New(),
		View: view.New(mini),
		Rect: Rect{X: 0, Y: height - 1, Width: width, Height: 1},
	}
	return &Tree{
		Root:       root,
		Minibuffer: miniNode,
		ActiveID:   root.ID,
		Height:     height,
		Width:      width,
	}
}

// Active returns the currently focused leaf, or nil if ActiveID names no
// leaf in the tree (should not happen in normal operation).
func (t *Tree) Active() *Node {
	return t.Root.findLeaf(t.ActiveID)
}

// Find locates the leaf with the given id.
func (t *Tree) Find(id uuid.UUID) *Node {
	return t.Root.findLeaf(id)
}

// Leaves returns every window leaf in left-to-right, top-to-bottom order.
func (t *Tree) Leaves() []*Node {
	return t.Root.leaves(nil)
}

// Walk visits every window leaf in the same in-order used for rendering,
// so focus cycling and drawing agree on visual order.
func (t *Tree) Walk(fn func(leaf *Node)) {
	for _, leaf := range t.Leaves() {
		fn(leaf)
	}
}

// Focus makes the leaf named by id active. It returns ErrLeafNotFound if
// no such leaf exists.
func (t *Tree) Focus(id uuid.UUID) error {
	if t.Root.findLeaf(id) == nil {
		return ErrLeafNotFound
	}
	t.ActiveID = id
	return nil
}

// FocusNext advances the active leaf to the next one in in-order
// traversal, wrapping around to the first.
func (t *Tree) FocusNext() {
	leaves := t.Leaves()
	if len(leaves) == 0 {
		return
	}
	for i, leaf := range leaves {
		if leaf.ID == t.ActiveID {
			t.ActiveID = leaves[(i+1)%len(leaves)].ID
			return
		}
	}
	t.ActiveID = leaves[0].ID
}
