package minibuffer

import (
	"fmt"
	"time"

	"github.com/dged-editor/dged/internal/buffer"
	"github.com/dged-editor/dged/internal/command"
	"github.com/dged-editor/dged/internal/textstore"
	"github.com/dged-editor/dged/internal/window"
)

// PromptContext carries everything an interactive command needs to resume
// once its prompt's answer has been typed, saved across the minibuffer
// round-trip the way Context.Argv carries saved arguments across several
// such round-trips.
type PromptContext struct {
	Self     *command.Command
	Window   *window.Node
	Buffers  []*buffer.Buffer
	Registry *command.Registry
	Argv     *command.ArgVector
}

// Minibuffer is the echo area's state machine: it owns a one-line buffer,
// an optional expiry for the message currently displayed, and, while a
// prompt is active, the saved context an in-progress interactive command
// will resume with.
type Minibuffer struct {
	Buf *buffer.Buffer

	// Now returns the current time; overridable so expiry logic is
	// deterministic under test. Defaults to time.Now.
	Now func() time.Time

	expiresAt time.Time
	hasExpiry bool

	promptText   string
	promptActive bool
	ctx          *PromptContext
}

// New creates a minibuffer backed by buf, registering the update hook that
// clears an expired echo message once per frame.
func New(buf *buffer.Buffer) *Minibuffer {
	m := &Minibuffer{Buf: buf, Now: time.Now}
	buf.Hooks().OnUpdate(m.tick, nil, nil)
	return m
}

func (m *Minibuffer) tick(b *buffer.Buffer, userData any) (int, buffer.LineRenderFunc) {
	if !m.promptActive && m.hasExpiry && !m.Now().Before(m.expiresAt) {
		m.hasExpiry = false
		m.setText("")
	}
	return 0, nil
}

// setText replaces the backing buffer's entire contents with text.
func (m *Minibuffer) setText(text string) {
	end := m.Buf.End()
	if end != (textstore.Location{}) {
		m.Buf.Delete(textstore.Region{Begin: textstore.Location{}, End: end})
	}
	if text != "" {
		m.Buf.Add(textstore.Location{}, []byte(text))
	}
}

// Text returns the echo area's current line, whether it holds a status
// message or in-progress prompt input.
func (m *Minibuffer) Text() string {
	return string(m.Buf.Line(0).Bytes)
}

// Echo displays a formatted, non-expiring message. A no-op while a prompt
// is active, so a background status update never clobbers user input.
func (m *Minibuffer) Echo(format string, args ...any) {
	if m.promptActive {
		return
	}
	m.hasExpiry = false
	m.setText(fmt.Sprintf(format, args...))
}

// EchoTimeout displays a formatted message that the update hook clears
// once seconds have elapsed, unless a prompt starts first.
func (m *Minibuffer) EchoTimeout(seconds float64, format string, args ...any) {
	if m.promptActive {
		return
	}
	m.setText(fmt.Sprintf(format, args...))
	m.expiresAt = m.Now().Add(time.Duration(seconds * float64(time.Second)))
	m.hasExpiry = true
}

// Active reports whether a prompt is currently reading input.
func (m *Minibuffer) Active() bool { return m.promptActive }

// PromptText returns the prompt string shown alongside the input line,
// empty when no prompt is active.
func (m *Minibuffer) PromptText() string { return m.promptText }
