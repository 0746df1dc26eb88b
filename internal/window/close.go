package window

import (
	"github.com/google/uuid"
)

// Close removes leaf from the tree, promoting its sibling subtree into the
// parent's slot and resizing that subtree to fill the parent's rectangle.
// It refuses to close the root (ErrCannotCloseRoot). If the active leaf is
// the one being closed, focus moves to the first remaining leaf.
func (t *Tree) Close(id uuid.UUID) error {
	leaf := t.Root.findLeaf(id)
	if leaf == nil {
		return ErrLeafNotFound
	}
	if leaf.parent == nil {
		return ErrCannotCloseRoot
	}

	sib := leaf.sibling()
	parent := leaf.parent
	rect := parent.Rect
	grandparent := parent.parent

	*parent = *sib
	parent.parent = grandparent
	reparentChildren(parent)
	resizeSubtree(parent, rect)

	if t.Active() == nil {
		leaves := t.Leaves()
		if len(leaves) > 0 {
			t.ActiveID = leaves[0].ID
		}
	}
	return nil
}

// CloseOthers collapses the tree to a single root window showing the same
// buffer and dot as leaf.
func (t *Tree) CloseOthers(id uuid.UUID) error {
	leaf := t.Root.findLeaf(id)
	if leaf == nil {
		return ErrLeafNotFound
	}

	rect := t.Root.Rect
	t.Root = &Node{
		ID:   uuid.New(),
		Rect: rect,
		View: cloneView(leaf.View),
	}
	t.ActiveID = t.Root.ID
	return nil
}

// reparentChildren fixes up the parent pointers of n's children after n
// has been overwritten by a copy of a node from elsewhere in the tree.
func reparentChildren(n *Node) {
	if n.isLeaf() {
		return
	}
	n.First.parent = n
	n.Second.parent = n
}
