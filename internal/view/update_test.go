package view

import (
	"strings"
	"testing"

	"github.com/dged-editor/dged/internal/render/ansi"
	"github.com/dged-editor/dged/internal/render/cmdlist"
)

func TestUpdateRendersVisibleLines(t *testing.T) {
	v := newTestView(t, "alpha\nbeta\ngamma")
	v.Dot = loc(0, 0)

	arena := cmdlist.NewArena(1 << 16)
	parent := cmdlist.NewList(arena, 0, 0, "win", 0)

	v.Update(parent, arena, 0, 0, 20, 5, 4, false)

	out := string(ansi.Translate(parent))
	for _, want := range []string{"alpha", "beta", "gamma"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered output %q missing line %q", out, want)
		}
	}
}

func TestUpdateDrawsModelineWithBufferName(t *testing.T) {
	v := newTestView(t, "hello")
	v.Modeline = &ModelineState{}

	arena := cmdlist.NewArena(1 << 16)
	parent := cmdlist.NewList(arena, 0, 0, "win", 0)

	v.Update(parent, arena, 0, 0, 20, 5, 4, false)

	if !strings.Contains(string(v.Modeline.Text), "scratch") {
		t.Fatalf("modeline text = %q, want it to contain the buffer name", v.Modeline.Text)
	}
	out := string(ansi.Translate(parent))
	if !strings.Contains(out, "scratch") {
		t.Fatalf("rendered output %q missing modeline text", out)
	}
}

func TestUpdateRecentersScrollWhenDotLeavesViewport(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line"
	}
	v := newTestView(t, strings.Join(lines, "\n"))
	v.Dot = loc(15, 0)

	arena := cmdlist.NewArena(1 << 16)
	parent := cmdlist.NewList(arena, 0, 0, "win", 0)

	v.Update(parent, arena, 0, 0, 20, 5, 4, false)

	if v.ScrollLine == 0 {
		t.Fatal("expected scroll to recenter away from 0 once dot moved past the viewport")
	}
	if v.Dot.Line < v.ScrollLine || v.Dot.Line >= v.ScrollLine+5 {
		t.Fatalf("dot line %d outside recentered viewport [%d, %d)", v.Dot.Line, v.ScrollLine, v.ScrollLine+5)
	}
}

func TestUpdateSelectionAddsBackgroundProperty(t *testing.T) {
	v := newTestView(t, "hello world")
	v.Dot = loc(0, 0)
	v.SetMark()
	v.Dot = loc(0, 5)

	arena := cmdlist.NewArena(1 << 16)
	parent := cmdlist.NewList(arena, 0, 0, "win", 0)

	v.Update(parent, arena, 0, 0, 20, 5, 4, false)

	out := string(ansi.Translate(parent))
	if !strings.Contains(out, "\x1b[0;45m") {
		t.Fatalf("rendered output %q missing selection background SGR (45)", out)
	}

	// Properties are ephemeral: gone again after Update returns.
	if props := v.Buf.PropertiesAt(loc(0, 2)); len(props) != 0 {
		t.Fatalf("expected properties cleared after Update, found %d", len(props))
	}
}

func TestUpdateClampsDotAfterBufferShrinks(t *testing.T) {
	v := newTestView(t, "short")
	v.Dot = loc(5, 5)

	arena := cmdlist.NewArena(1 << 16)
	parent := cmdlist.NewList(arena, 0, 0, "win", 0)

	v.Update(parent, arena, 0, 0, 20, 5, 4, false)

	if v.Dot.Line != 0 || v.Dot.Col > 5 {
		t.Fatalf("dot = %v, want clamped to buffer bounds", v.Dot)
	}
}

func TestLineNumbersRenderDigitsForEachVisibleLine(t *testing.T) {
	v := newTestView(t, "one\ntwo\nthree")
	v.LineNumbers = true

	arena := cmdlist.NewArena(1 << 16)
	parent := cmdlist.NewList(arena, 0, 0, "win", 0)

	v.Update(parent, arena, 0, 0, 20, 5, 4, false)

	if v.FringeWidth == 0 {
		t.Fatal("expected FringeWidth to reflect the line-number gutter width")
	}
	out := string(ansi.Translate(parent))
	if !strings.Contains(out, "1") || !strings.Contains(out, "2") || !strings.Contains(out, "3") {
		t.Fatalf("rendered output %q missing expected line numbers", out)
	}
}
