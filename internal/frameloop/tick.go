//go:build linux

package frameloop

import (
	"github.com/dged-editor/dged/internal/render/ansi"
	"github.com/dged-editor/dged/internal/render/cmdlist"
)

// Tick runs one full pass of the engine: resize, buffer/window update,
// display flush, reactor suspension, keyboard drain and file-watch
// drain, finishing by resetting the per-frame arena. It is the sole
// per-iteration entry point; Run just calls Tick in a loop.
func (l *Loop) Tick() error {
	if l.resizePending.CompareAndSwap(true, false) {
		if err := l.Display.Resize(); err != nil {
			return err
		}
		l.Tree.Resize(l.Display.Height(), l.Display.Width())
	}

	root := l.buildCommandList()

	if err := l.flush(root); err != nil {
		return err
	}

	if err := l.Reactor.Update(); err != nil {
		return err
	}

	if err := l.drainKeyboard(); err != nil {
		return err
	}

	l.drainFileEvents()

	l.Arena.Reset()
	return nil
}

// Run ticks until Stop is called or Tick returns an error.
func (l *Loop) Run() error {
	for l.Running() {
		if err := l.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// buildCommandList runs every window leaf's (and the minibuffer's) view
// update, producing one command-list tree rooted at the whole screen.
func (l *Loop) buildCommandList() *cmdlist.List {
	root := cmdlist.NewList(l.Arena, 0, 0, "root", 0)

	for _, leaf := range l.Tree.Leaves() {
		leaf.View.Update(root, l.Arena, leaf.Rect.X, leaf.Rect.Y, leaf.Rect.Width, leaf.Rect.Height, l.TabWidth, l.ShowWhitespace)
	}

	mini := l.Tree.Minibuffer
	mini.View.Update(root, l.Arena, mini.Rect.X, mini.Rect.Y, mini.Rect.Width, mini.Rect.Height, l.TabWidth, l.ShowWhitespace)

	return root
}

// flush translates the command-list tree to ANSI bytes and writes it to
// the terminal, positioning the cursor at the active window's dot.
func (l *Loop) flush(root *cmdlist.List) error {
	l.Display.BeginRender()
	if _, err := l.Display.Write(ansi.Translate(root)); err != nil {
		return err
	}

	row, col := l.cursorPosition()
	return l.Display.EndRender(row, col)
}

// cursorPosition computes the active window's dot in absolute screen
// coordinates: the window's own origin plus the view's fringe- and
// scroll-adjusted offsets.
func (l *Loop) cursorPosition() (row, col int) {
	active := l.Tree.Active()
	if active == nil {
		return 0, 0
	}
	v := active.View
	row = active.Rect.Y + (v.Dot.Line - v.ScrollLine)
	col = active.Rect.X + v.VisualColumn(l.TabWidth)
	return row, col
}
