package view

import (
	"testing"

	"github.com/dged-editor/dged/internal/buffer"
	"github.com/dged-editor/dged/internal/killring"
	"github.com/dged-editor/dged/internal/textstore"
)

func loc(line, col int) textstore.Location { return textstore.Location{Line: line, Col: col} }

func newTestView(t *testing.T, text string) *View {
	t.Helper()
	b := buffer.New("scratch", killring.New())
	if _, err := b.Add(loc(0, 0), []byte(text)); err != nil {
		t.Fatalf("seed Add: %v", err)
	}
	return New(b)
}

func TestAddReplacesSelectedRegion(t *testing.T) {
	v := newTestView(t, "hello world")
	v.Dot = loc(0, 0)
	v.SetMark()
	v.Dot = loc(0, 5)

	if err := v.Add([]byte("HELLO")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := string(v.Buf.Line(0).Bytes); got != "HELLO world" {
		t.Fatalf("buffer contents = %q, want %q", got, "HELLO world")
	}
	if v.Dot != loc(0, 5) {
		t.Fatalf("dot after replace = %v, want (0,5)", v.Dot)
	}
	if v.MarkSet() {
		t.Fatal("mark should be cleared after a region replace")
	}
}

func TestDeletePreviousCharWithoutSelection(t *testing.T) {
	v := newTestView(t, "abc")
	v.Dot = loc(0, 3)

	if err := v.DeletePreviousChar(); err != nil {
		t.Fatalf("DeletePreviousChar: %v", err)
	}
	if got := string(v.Buf.Line(0).Bytes); got != "ab" {
		t.Fatalf("buffer contents = %q, want %q", got, "ab")
	}
	if v.Dot != loc(0, 2) {
		t.Fatalf("dot = %v, want (0,2)", v.Dot)
	}
}

func TestKillLineAtMiddleOfLine(t *testing.T) {
	v := newTestView(t, "hello world")
	v.Dot = loc(0, 5)

	if err := v.KillLine(); err != nil {
		t.Fatalf("KillLine: %v", err)
	}
	if got := string(v.Buf.Line(0).Bytes); got != "hello" {
		t.Fatalf("buffer contents = %q, want %q", got, "hello")
	}

	// KillLine cuts through the kill ring; pasting it back should recover
	// the killed text.
	if _, err := v.Buf.Paste(v.Dot); err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if got := string(v.Buf.Line(0).Bytes); got != "hello world" {
		t.Fatalf("buffer contents after paste-back = %q, want %q", got, "hello world")
	}
}

func TestKillLineAtEndOfLineConsumesNewline(t *testing.T) {
	v := newTestView(t, "one\ntwo")
	v.Dot = loc(0, 3)

	if err := v.KillLine(); err != nil {
		t.Fatalf("KillLine: %v", err)
	}
	if v.Buf.NumLines() != 1 {
		t.Fatalf("NumLines = %d, want 1 (newline consumed)", v.Buf.NumLines())
	}
	if got := string(v.Buf.Line(0).Bytes); got != "onetwo" {
		t.Fatalf("buffer contents = %q, want %q", got, "onetwo")
	}
}

func TestSortLinesOverRegion(t *testing.T) {
	v := newTestView(t, "banana\napple\ncherry")
	v.Dot = loc(0, 0)
	v.SetMark()
	v.Dot = loc(2, 0)

	if err := v.SortLines(); err != nil {
		t.Fatalf("SortLines: %v", err)
	}
	want := []string{"apple", "banana", "cherry"}
	for i, w := range want {
		if got := string(v.Buf.Line(i).Bytes); got != w {
			t.Fatalf("line %d = %q, want %q", i, got, w)
		}
	}
}

func TestVisualColumnExpandsTabs(t *testing.T) {
	v := newTestView(t, "a\tb")
	v.Dot = loc(0, 3) // past the tab and 'b'

	if got := v.VisualColumn(4); got != 6 {
		t.Fatalf("VisualColumn = %d, want 6 (1 for 'a' + 4 for tab + 1 for 'b')", got)
	}
}

func TestVisualColumnAccountsForFringeAndScroll(t *testing.T) {
	v := newTestView(t, "hello")
	v.Dot = loc(0, 3)
	v.FringeWidth = 4
	v.ScrollCol = 1

	if got := v.VisualColumn(4); got != 6 {
		t.Fatalf("VisualColumn = %d, want 6 (3 chars + 4 fringe - 1 scroll)", got)
	}
}
