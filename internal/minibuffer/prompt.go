package minibuffer

import (
	"fmt"
	"strings"

	"github.com/dged-editor/dged/internal/command"
)

// Prompt clears the echo area, displays a formatted prompt string, and
// begins reading a line of input on behalf of ctx.Self. Ordinary
// self-insert keystrokes land in the backing buffer like any other edit
// until Execute or AbortPrompt ends the round-trip. Returns a non-zero
// status, the same convention a command.Func uses to signal that control
// has been handed off rather than completed synchronously.
func (m *Minibuffer) Prompt(ctx *PromptContext, format string, args ...any) int {
	m.promptText = fmt.Sprintf(format, args...)
	m.ctx = ctx
	m.promptActive = true
	m.hasExpiry = false
	m.setText("")
	return 1
}

// AbortPrompt discards an in-progress prompt without invoking the waiting
// command, clearing the echo area.
func (m *Minibuffer) AbortPrompt() {
	m.promptActive = false
	m.promptText = ""
	m.ctx = nil
	m.setText("")
}

// Execute ends the active prompt, appends the typed line (split on
// whitespace) to the saved argv, and re-invokes the waiting command
// through the registry. Returns 0 with no effect if no prompt is active.
func (m *Minibuffer) Execute() int {
	if !m.promptActive || m.ctx == nil {
		return 0
	}
	ctx := m.ctx
	line := m.Text()

	argv := command.NewArgVector()
	if ctx.Argv != nil {
		for i := 0; i < ctx.Argv.Len(); i++ {
			v, _ := ctx.Argv.At(i)
			argv.Push(v)
		}
	}
	for _, field := range strings.Fields(line) {
		argv.Push(field)
	}

	m.promptActive = false
	m.promptText = ""
	m.ctx = nil
	m.setText("")

	return ctx.Registry.Invoke(ctx.Self, ctx.Window, ctx.Buffers, argv)
}
