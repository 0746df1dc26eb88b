package builtins

import (
	"github.com/google/uuid"

	"github.com/dged-editor/dged/internal/command"
	"github.com/dged-editor/dged/internal/frameloop"
	"github.com/dged-editor/dged/internal/minibuffer"
	"github.com/dged-editor/dged/internal/view"
	"github.com/dged-editor/dged/internal/window"
)

// Register installs every built-in command into reg, closing each over
// the collaborators it needs. Call DefaultKeymap afterward to bind them
// to keystrokes. The set covers motion, editing, kill-ring, undo,
// window, file and quit so the frame loop and dispatch path are
// exercised end-to-end.
func Register(reg *command.Registry, loop *frameloop.Loop, tree *window.Tree, mini *minibuffer.Minibuffer) {
	reg.RegisterMany(
		Exit(loop),
		AbortPrompt(mini),
		SaveBuffer(mini),
		ForwardChar(),
		BackwardChar(),
		ForwardWord(),
		BackwardWord(),
		NextLine(),
		PreviousLine(),
		KillRegion(mini),
		CopyRegion(mini),
		Yank(mini),
		YankPop(mini),
		Undo(),
		SplitWindowBelow(tree),
		SplitWindowRight(tree),
		CloseWindow(tree, mini),
		CloseOtherWindows(tree),
		FocusNextWindow(tree),
	)
}

// motionCommand returns a command that calls move on the active window's
// view. The mark is left as it is, so a set mark keeps its selection.
func motionCommand(name string, move func(v *view.View)) *command.Command {
	return &command.Command{
		Name: name,
		Func: func(ctx *command.Context) int {
			if ctx.Window == nil {
				return 1
			}
			move(ctx.Window.View)
			return 0
		},
	}
}

// ForwardChar returns a command that moves dot forward one codepoint.
// Bound by default to the right arrow.
func ForwardChar() *command.Command {
	return motionCommand("forward-char", (*view.View).MoveNextChar)
}

// BackwardChar returns a command that moves dot back one codepoint.
// Bound by default to the left arrow.
func BackwardChar() *command.Command {
	return motionCommand("backward-char", (*view.View).MovePreviousChar)
}

// ForwardWord returns a command that moves dot to the start of the next
// word. Bound by default to Meta-F.
func ForwardWord() *command.Command {
	return motionCommand("forward-word", (*view.View).MoveNextWord)
}

// BackwardWord returns a command that moves dot to the start of the
// previous word. Bound by default to Meta-B.
func BackwardWord() *command.Command {
	return motionCommand("backward-word", (*view.View).MovePreviousWord)
}

// NextLine returns a command that moves dot down one line. Bound by
// default to the down arrow.
func NextLine() *command.Command {
	return motionCommand("next-line", (*view.View).MoveNextLine)
}

// PreviousLine returns a command that moves dot up one line. Bound by
// default to the up arrow.
func PreviousLine() *command.Command {
	return motionCommand("previous-line", (*view.View).MovePreviousLine)
}

// KillRegion returns a command that cuts the active view's selection to
// the kill ring. Bound by default to Ctrl-W.
func KillRegion(mini *minibuffer.Minibuffer) *command.Command {
	return &command.Command{
		Name: "kill-region",
		Func: func(ctx *command.Context) int {
			if ctx.Window == nil {
				return 1
			}
			v := ctx.Window.View
			if !v.MarkSet() {
				mini.Echo("no mark set")
				return 1
			}
			region := v.Region()
			loc, err := v.Buf.Cut(region)
			if err != nil {
				mini.Echo("kill-region: %v", err)
				return 1
			}
			v.Dot = loc
			v.ClearMark()
			return 0
		},
	}
}

// CopyRegion returns a command that copies the active view's selection
// to the kill ring without deleting it. Bound by default to Meta-W.
func CopyRegion(mini *minibuffer.Minibuffer) *command.Command {
	return &command.Command{
		Name: "copy-region",
		Func: func(ctx *command.Context) int {
			if ctx.Window == nil {
				return 1
			}
			v := ctx.Window.View
			if !v.MarkSet() {
				mini.Echo("no mark set")
				return 1
			}
			v.Buf.Copy(v.Region())
			v.ClearMark()
			return 0
		},
	}
}

// Yank returns a command that pastes the kill ring's most recent entry
// at dot. Bound by default to Ctrl-Y.
func Yank(mini *minibuffer.Minibuffer) *command.Command {
	return &command.Command{
		Name: "yank",
		Func: func(ctx *command.Context) int {
			if ctx.Window == nil {
				return 1
			}
			v := ctx.Window.View
			loc, err := v.Buf.Paste(v.Dot)
			if err != nil {
				mini.Echo("yank: %v", err)
				return 1
			}
			v.Dot = loc
			return 0
		},
	}
}

// YankPop returns a command that replaces the text from the immediately
// preceding Yank with the kill ring's next-older entry. Bound by default
// to Meta-Y.
func YankPop(mini *minibuffer.Minibuffer) *command.Command {
	return &command.Command{
		Name: "yank-pop",
		Func: func(ctx *command.Context) int {
			if ctx.Window == nil {
				return 1
			}
			v := ctx.Window.View
			loc, err := v.Buf.PasteOlder(v.Dot)
			if err != nil {
				mini.Echo("yank-pop: %v", err)
				return 1
			}
			v.Dot = loc
			return 0
		},
	}
}

// Undo returns a command that inverts one undo group in the active
// buffer. Bound by default to Ctrl-_.
func Undo() *command.Command {
	return &command.Command{
		Name: "undo",
		Func: func(ctx *command.Context) int {
			if ctx.Window == nil {
				return 1
			}
			v := ctx.Window.View
			v.Dot = v.Buf.Undo(v.Dot)
			v.ClearMark()
			return 0
		},
	}
}

// Exit returns a command that stops the frame loop. Bound by default to
// Ctrl-X Ctrl-C.
func Exit(loop *frameloop.Loop) *command.Command {
	return &command.Command{
		Name: "exit",
		Func: func(ctx *command.Context) int {
			loop.Stop()
			return 0
		},
	}
}

// AbortPrompt returns a command that cancels an in-progress minibuffer
// prompt without invoking the waiting command. Bound by default to
// Ctrl-G.
func AbortPrompt(mini *minibuffer.Minibuffer) *command.Command {
	return &command.Command{
		Name: "abort-prompt",
		Func: func(ctx *command.Context) int {
			mini.AbortPrompt()
			return 0
		},
	}
}

// SaveBuffer returns a command that writes the active window's buffer
// back to its bound path. Bound by default to Ctrl-X Ctrl-S.
func SaveBuffer(mini *minibuffer.Minibuffer) *command.Command {
	return &command.Command{
		Name: "save-buffer",
		Func: func(ctx *command.Context) int {
			if ctx.Window == nil {
				return 1
			}
			b := ctx.Window.View.Buf
			if b.Path == "" {
				mini.Echo("buffer is not visiting a file")
				return 1
			}
			if err := b.WriteToFile(b.Path); err != nil {
				mini.Echo("write failed: %v", err)
				return 1
			}
			mini.Echo("wrote %s", b.Path)
			return 0
		},
	}
}

// SplitWindowBelow returns a command that splits the active window into
// a top/bottom pair and focuses the new half. Bound by default to
// Ctrl-X 2.
func SplitWindowBelow(tree *window.Tree) *command.Command {
	return splitCommand(tree, "split-window-below", tree.SplitVertical)
}

// SplitWindowRight returns a command that splits the active window into
// a left/right pair and focuses the new half. Bound by default to
// Ctrl-X 3.
func SplitWindowRight(tree *window.Tree) *command.Command {
	return splitCommand(tree, "split-window-right", tree.SplitHorizontal)
}

func splitCommand(tree *window.Tree, name string, split func(uuid.UUID) (uuid.UUID, error)) *command.Command {
	return &command.Command{
		Name: name,
		Func: func(ctx *command.Context) int {
			if ctx.Window == nil {
				return 1
			}
			newID, err := split(ctx.Window.ID)
			if err != nil {
				return 1
			}
			_ = tree.Focus(newID)
			return 0
		},
	}
}

// CloseWindow returns a command that closes the active window, refusing
// to close the root. Bound by default to Ctrl-X 0.
func CloseWindow(tree *window.Tree, mini *minibuffer.Minibuffer) *command.Command {
	return &command.Command{
		Name: "close-window",
		Func: func(ctx *command.Context) int {
			if ctx.Window == nil {
				return 1
			}
			if err := tree.Close(ctx.Window.ID); err != nil {
				mini.Echo("%v", err)
				return 1
			}
			return 0
		},
	}
}

// CloseOtherWindows returns a command that replaces the tree with a
// single window cloned from the active one. Bound by default to
// Ctrl-X 1.
func CloseOtherWindows(tree *window.Tree) *command.Command {
	return &command.Command{
		Name: "close-other-windows",
		Func: func(ctx *command.Context) int {
			if ctx.Window == nil {
				return 1
			}
			if err := tree.CloseOthers(ctx.Window.ID); err != nil {
				return 1
			}
			return 0
		},
	}
}

// FocusNextWindow returns a command that advances the active leaf in
// in-order traversal. Bound by default to Ctrl-X o.
func FocusNextWindow(tree *window.Tree) *command.Command {
	return &command.Command{
		Name: "focus-next-window",
		Func: func(ctx *command.Context) int {
			tree.FocusNext()
			return 0
		},
	}
}
