package window

// Resize rescales the entire tree, including the minibuffer window, to
// fill a new height x width, proportionally rescaling every interior
// split.
func (t *Tree) Resize(height, width int) {
	t.Height = height
	t.Width = width

	resizeSubtree(t.Root, Rect{X: 0, Y: 0, Width: width, Height: height - 1})
	t.Minibuffer.Rect = Rect{X: 0, Y: height - 1, Width: width, Height: 1}
}

// resizeSubtree assigns rect to n and, for interior nodes, rescales both
// children proportionally to their previous share of n's axis length. The
// second child always fills the remainder so rounding error never opens a
// gap or overlap.
func resizeSubtree(n *Node, rect Rect) {
	old := n.Rect
	n.Rect = rect
	if n.isLeaf() {
		return
	}

	if n.Axis == AxisHorizontal {
		ratio := ratioOf(n.First.Rect.Height, old.Height)
		top := scale(rect.Height, ratio)
		resizeSubtree(n.First, Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: top})
		resizeSubtree(n.Second, Rect{X: rect.X, Y: rect.Y + top, Width: rect.Width, Height: rect.Height - top})
		return
	}

	ratio := ratioOf(n.First.Rect.Width, old.Width)
	left := scale(rect.Width, ratio)
	resizeSubtree(n.First, Rect{X: rect.X, Y: rect.Y, Width: left, Height: rect.Height})
	resizeSubtree(n.Second, Rect{X: rect.X + left, Y: rect.Y, Width: rect.Width - left, Height: rect.Height})
}

func ratioOf(part, whole int) float64 {
	if whole <= 0 {
		return 0.5
	}
	return float64(part) / float64(whole)
}

func scale(total int, ratio float64) int {
	n := int(float64(total)*ratio + 0.5)
	if n < 0 {
		n = 0
	}
	if n > total {
		n = total
	}
	return n
}
