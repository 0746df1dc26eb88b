package ansi

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/dged-editor/dged/internal/codec"
	"github.com/dged-editor/dged/internal/render/cmdlist"
)

const (
	whitespaceFormat = "90"
	midDot           = '·'
	tabArrow         = '→'
)

// Translate walks list's full chain (and any nested draw-list children) and
// returns the equivalent ANSI byte stream: absolute CSI positioning before
// every draw primitive, SGR fragments concatenated as "ESC[0;f1;f2…m", and
// whitespace substitution when toggled on.
func Translate(list *cmdlist.List) []byte {
	var out bytes.Buffer
	(&translator{out: &out}).walk(list)
	return out.Bytes()
}

type translator struct {
	out            *bytes.Buffer
	formatStack    []string
	showWhitespace bool
}

func (t *translator) walk(l *cmdlist.List) {
	if l == nil {
		return
	}
	l.Each(func(seg *cmdlist.List, p cmdlist.Primitive) {
		switch p.Kind {
		case cmdlist.KindDrawText, cmdlist.KindDrawTextCopy:
			t.moveTo(seg, p.Col, p.Row)
			t.drawText(p.Bytes)
		case cmdlist.KindDrawRepeated:
			t.moveTo(seg, p.Col, p.Row)
			t.drawRepeated(p.Rune, p.Count)
		case cmdlist.KindPushFormat:
			t.formatStack = append(t.formatStack, p.Format)
			t.emitSGR(t.formatStack)
		case cmdlist.KindClearFormat:
			t.formatStack = t.formatStack[:0]
			t.emitSGR(t.formatStack)
		case cmdlist.KindSetShowWhitespace:
			t.showWhitespace = p.ShowWhitespace
		case cmdlist.KindDrawList:
			// A nested list inherits no state from the parent: fresh
			// format stack and whitespace mode, shared output stream.
			(&translator{out: t.out}).walk(p.Child)
		}
	})
}

func (t *translator) moveTo(seg *cmdlist.List, col, row int) {
	t.out.Write(MoveCursor(seg.OriginY+row, seg.OriginX+col))
}

func (t *translator) emitSGR(fragments []string) {
	t.out.WriteString("\x1b[0")
	for _, f := range fragments {
		t.out.WriteByte(';')
		t.out.WriteString(f)
	}
	t.out.WriteByte('m')
}

// drawText writes data codepoint by codepoint, suppressing control bytes
// and substituting whitespace glyphs when showWhitespace is set.
func (t *translator) drawText(data []byte) {
	for i := 0; i < len(data); {
		r, width, ok := codec.DecodeRune(data, i)
		if !ok {
			i++
			continue
		}
		i += width
		t.drawRune(r)
	}
}

func (t *translator) drawRune(r rune) {
	switch {
	case r == '\t':
		if t.showWhitespace {
			t.writeRune(tabArrow)
			t.out.WriteString("   ")
		}
		// Suppressed control byte when whitespace display is off.
	case r == ' ':
		if t.showWhitespace {
			t.withFormat(whitespaceFormat, func() { t.writeRune(midDot) })
		} else {
			t.out.WriteByte(' ')
		}
	case r < 0x20 || r == 0x7f:
		// Control bytes are suppressed.
	default:
		t.writeRune(r)
	}
}

func (t *translator) drawRepeated(r rune, n int) {
	for i := 0; i < n; i++ {
		t.drawRune(r)
	}
}

func (t *translator) writeRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	t.out.Write(buf[:n])
}

// withFormat temporarily overrides the format stack with a single fragment
// for fn, then restores the prior stack.
func (t *translator) withFormat(fragment string, fn func()) {
	t.emitSGR([]string{fragment})
	fn()
	t.emitSGR(t.formatStack)
}

// formatString renders a format stack the way emitSGR does, for tests.
func formatString(fragments []string) string {
	if len(fragments) == 0 {
		return "\x1b[0m"
	}
	return "\x1b[0;" + strings.Join(fragments, ";") + "m"
}
