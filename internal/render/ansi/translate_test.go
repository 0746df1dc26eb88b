package ansi

import (
	"strings"
	"testing"

	"github.com/dged-editor/dged/internal/render/cmdlist"
)

func TestDrawTextMovesCursorAndWritesBytes(t *testing.T) {
	arena := cmdlist.NewArena(1024)
	l := cmdlist.NewList(arena, 2, 3, "win", 0)
	l.DrawText(1, 0, []byte("hi"))

	got := string(Translate(l))
	want := string(MoveCursor(3, 3)) + "hi"
	if got != want {
		t.Fatalf("Translate = %q, want %q", got, want)
	}
}

func TestPushFormatEmitsCumulativeSGR(t *testing.T) {
	arena := cmdlist.NewArena(1024)
	l := cmdlist.NewList(arena, 0, 0, "win", 0)
	l.PushFormat("1")
	l.PushFormat("38;5;196")

	got := string(Translate(l))
	want := formatString([]string{"1"}) + formatString([]string{"1", "38;5;196"})
	if got != want {
		t.Fatalf("Translate = %q, want %q", got, want)
	}
}

func TestClearFormatResetsToBaseline(t *testing.T) {
	arena := cmdlist.NewArena(1024)
	l := cmdlist.NewList(arena, 0, 0, "win", 0)
	l.PushFormat("1")
	l.ClearFormat()

	got := string(Translate(l))
	want := formatString([]string{"1"}) + formatString(nil)
	if got != want {
		t.Fatalf("Translate = %q, want %q", got, want)
	}
}

func TestShowWhitespaceSubstitutesSpaceAndTab(t *testing.T) {
	arena := cmdlist.NewArena(1024)
	l := cmdlist.NewList(arena, 0, 0, "win", 0)
	l.SetShowWhitespace(true)
	l.DrawText(0, 0, []byte("a \tb"))

	got := string(Translate(l))
	if !strings.Contains(got, "·") {
		t.Fatalf("Translate = %q, want it to contain a mid-dot for the space", got)
	}
	if !strings.Contains(got, "→   ") {
		t.Fatalf("Translate = %q, want it to contain an arrow + 3 spaces for the tab", got)
	}
	if !strings.Contains(got, formatString([]string{whitespaceFormat})) {
		t.Fatalf("Translate = %q, want the mid-dot wrapped in color 90", got)
	}
}

func TestControlBytesAreSuppressedWithoutWhitespaceDisplay(t *testing.T) {
	arena := cmdlist.NewArena(1024)
	l := cmdlist.NewList(arena, 0, 0, "win", 0)
	l.DrawText(0, 0, []byte("a\tb"))

	got := string(Translate(l))
	want := string(MoveCursor(0, 0)) + "ab"
	if got != want {
		t.Fatalf("Translate = %q, want %q (tab suppressed)", got, want)
	}
}

func TestDrawRepeatedWritesNCopies(t *testing.T) {
	arena := cmdlist.NewArena(1024)
	l := cmdlist.NewList(arena, 0, 0, "win", 0)
	l.DrawRepeated(0, 0, '-', 3)

	got := string(Translate(l))
	want := string(MoveCursor(0, 0)) + "---"
	if got != want {
		t.Fatalf("Translate = %q, want %q", got, want)
	}
}

func TestDrawListChildDoesNotInheritParentFormat(t *testing.T) {
	arena := cmdlist.NewArena(1024)
	parent := cmdlist.NewList(arena, 0, 0, "parent", 0)
	parent.PushFormat("1")

	child := cmdlist.NewList(arena, 5, 5, "child", 0)
	child.DrawText(0, 0, []byte("x"))
	parent.DrawList(child)

	got := string(Translate(parent))
	want := formatString([]string{"1"}) + string(MoveCursor(5, 5)) + "x"
	if got != want {
		t.Fatalf("Translate = %q, want %q (child draws with no inherited format)", got, want)
	}
}

func TestChainedListsTranslateInOrder(t *testing.T) {
	arena := cmdlist.NewArena(1024)
	l := cmdlist.NewList(arena, 0, 0, "win", 2)
	l.DrawText(0, 0, []byte("a"))
	l.DrawText(1, 0, []byte("b"))
	l.DrawText(2, 0, []byte("c"))

	got := string(Translate(l))
	want := string(MoveCursor(0, 0)) + "a" + string(MoveCursor(0, 1)) + "b" + string(MoveCursor(0, 2)) + "c"
	if got != want {
		t.Fatalf("Translate = %q, want %q", got, want)
	}
}
