package builtins

import (
	"github.com/dged-editor/dged/internal/key"
	"github.com/dged-editor/dged/internal/keymap"
)

// DefaultKeymap builds the global keymap stack bound to the commands
// registered by Register: Ctrl-G aborts a minibuffer prompt directly,
// the arrow keys and Meta-f/Meta-b/Ctrl-n/Ctrl-p drive motion, Ctrl-w/
// Meta-w/Ctrl-y/Meta-y drive the kill ring, Ctrl-_ undoes, and Ctrl-X is
// a prefix for window and file management, mirroring the Ctrl-X Ctrl-C
// exit binding named in scenario 5. This is a representative default
// set, not a full Emacs keymap: one binding per motion/edit/kill-ring/
// undo/window/file/quit category is enough to exercise the frame loop
// and dispatch path end-to-end.
func DefaultKeymap() *keymap.Map {
	global := keymap.New("global")

	ctrlX := keymap.New("ctrl-x")
	ctrlX.BindCommand(key.ID{Mod: key.ModCtrl, Rune: 'C'}, "exit")
	ctrlX.BindCommand(key.ID{Mod: key.ModCtrl, Rune: 'S'}, "save-buffer")
	ctrlX.BindCommand(key.ID{Rune: '0'}, "close-window")
	ctrlX.BindCommand(key.ID{Rune: '1'}, "close-other-windows")
	ctrlX.BindCommand(key.ID{Rune: '2'}, "split-window-below")
	ctrlX.BindCommand(key.ID{Rune: '3'}, "split-window-right")
	ctrlX.BindCommand(key.ID{Rune: 'o'}, "focus-next-window")

	global.BindKeymap(key.ID{Mod: key.ModCtrl, Rune: 'X'}, ctrlX)
	global.BindCommand(key.ID{Mod: key.ModCtrl, Rune: 'G'}, "abort-prompt")

	// Motion: arrow keys plus the Emacs word/line equivalents.
	global.BindCommand(key.ID{Spec: "[C"}, "forward-char")
	global.BindCommand(key.ID{Spec: "[D"}, "backward-char")
	global.BindCommand(key.ID{Spec: "[A"}, "previous-line")
	global.BindCommand(key.ID{Spec: "[B"}, "next-line")
	global.BindCommand(key.ID{Mod: key.ModMeta, Rune: 'f'}, "forward-word")
	global.BindCommand(key.ID{Mod: key.ModMeta, Rune: 'b'}, "backward-word")
	global.BindCommand(key.ID{Mod: key.ModCtrl, Rune: 'N'}, "next-line")
	global.BindCommand(key.ID{Mod: key.ModCtrl, Rune: 'P'}, "previous-line")

	// Kill ring.
	global.BindCommand(key.ID{Mod: key.ModCtrl, Rune: 'W'}, "kill-region")
	global.BindCommand(key.ID{Mod: key.ModMeta, Rune: 'w'}, "copy-region")
	global.BindCommand(key.ID{Mod: key.ModCtrl, Rune: 'Y'}, "yank")
	global.BindCommand(key.ID{Mod: key.ModMeta, Rune: 'y'}, "yank-pop")

	// Undo.
	global.BindCommand(key.ID{Mod: key.ModCtrl, Rune: '_'}, "undo")

	return global
}
