//go:build linux

package frameloop

import (
	"golang.org/x/sys/unix"

	"github.com/dged-editor/dged/internal/command"
	"github.com/dged-editor/dged/internal/key"
	"github.com/dged-editor/dged/internal/keymap"
	"github.com/dged-editor/dged/internal/window"
)

// readBufSize bounds one raw terminal read; a burst larger than this
// drains across several Tick calls instead of one.
const readBufSize = 4096

// drainKeyboard reads whatever terminal bytes are available, decodes them
// into keystrokes, and resolves and dispatches each one in turn.
func (l *Loop) drainKeyboard() error {
	if !l.Reactor.PollEvent(l.keyboardID) {
		return nil
	}

	var buf [readBufSize]byte
	n, err := unix.Read(l.keyboardFD, buf[:])
	if err != nil {
		if err == unix.EAGAIN {
			return nil
		}
		return err
	}
	if n == 0 {
		return nil
	}

	l.keyPending = append(l.keyPending, buf[:n]...)
	strokes, consumed := key.Decode(l.keyPending)
	l.keyPending = append([]byte(nil), l.keyPending[consumed:]...)

	for _, s := range strokes {
		l.dispatch(s)
	}
	return nil
}

// dispatch resolves one keystroke against the active keymap stack and
// carries out whatever that resolution calls for: running a command or
// function, self-inserting outside a prefix, or reporting an unbound
// keystroke inside one.
func (l *Loop) dispatch(s key.Stroke) {
	active := l.Tree.Active()
	target := active
	if l.Minibuffer.Active() {
		target = l.Tree.Minibuffer
	}

	wasInPrefix := l.Resolver.InPrefix()
	result := l.Resolver.Resolve(s.ID)

	switch result.Kind {
	case keymap.ResultPrefix:
		return

	case keymap.ResultUnbound:
		if wasInPrefix {
			l.Minibuffer.Echo("%s is undefined", key.FormatID(s.ID))
			return
		}
		if len(s.Text) > 0 && target != nil {
			_ = target.View.Add(s.Text)
		}
		return

	case keymap.ResultCommand:
		cmd, ok := l.Registry.Lookup(result.Name)
		if !ok {
			l.Minibuffer.Echo("%s is undefined", result.Name)
			return
		}
		l.runCommand(cmd, active)

	case keymap.ResultFunc:
		switch fn := result.Func.(type) {
		case *command.Command:
			l.runCommand(fn, active)
		case command.Func:
			l.runCommand(&command.Command{Name: "anonymous", Func: fn}, active)
		}
	}
}

// runCommand invokes cmd and, if it fails without leaving its own message
// in the minibuffer, surfaces a generic diagnostic there.
func (l *Loop) runCommand(cmd *command.Command, active *window.Node) {
	before := l.Minibuffer.Text()
	status := l.Registry.Invoke(cmd, active, l.Buffers, command.NewArgVector())
	if status != 0 && l.Minibuffer.Text() == before {
		l.Minibuffer.Echo("%s failed", cmd.Name)
	}
}
