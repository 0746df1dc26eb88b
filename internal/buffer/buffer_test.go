package buffer

import (
	"testing"

	"github.com/dged-editor/dged/internal/killring"
	"github.com/dged-editor/dged/internal/textstore"
)

func loc(line, col int) textstore.Location { return textstore.Location{Line: line, Col: col} }

func lineText(t *testing.T, b *Buffer, idx int) string {
	t.Helper()
	return string(b.Line(idx).Bytes)
}

func TestInsertAndUndoRestoresEmptyBuffer(t *testing.T) {
	b := New("scratch", killring.New())

	at := loc(0, 0)
	at, _ = b.Add(at, []byte("a"))
	at, _ = b.Add(at, []byte("b"))
	_, _ = b.Add(at, []byte("c"))
	b.PushBoundary(true)

	if got := lineText(t, b, 0); got != "abc" {
		t.Fatalf("buffer contents = %q, want %q", got, "abc")
	}

	result := b.Undo(loc(0, 3))
	if b.NumLines() != 0 {
		t.Fatalf("NumLines after undo = %d, want 0 (empty)", b.NumLines())
	}
	if result != loc(0, 0) {
		t.Fatalf("post-undo location = %v, want (0,0)", result)
	}
	if b.Modified() {
		t.Fatal("Modified should be false: the undone boundary was a savepoint")
	}
}

func TestSelectionReplaceUndo(t *testing.T) {
	b := New("scratch", killring.New())
	b.Add(loc(0, 0), []byte("hello world"))
	b.undoLog.PushBoundary(true) // treat the initial load as the savepoint

	if _, err := b.Delete(textstore.NewRegion(loc(0, 0), loc(0, 5))); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := b.Add(loc(0, 0), []byte("HELLO")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := lineText(t, b, 0); got != "HELLO world" {
		t.Fatalf("buffer contents = %q, want %q", got, "HELLO world")
	}

	result := b.Undo(loc(0, 5))
	if got := lineText(t, b, 0); got != "hello world" {
		t.Fatalf("post-undo contents = %q, want %q", got, "hello world")
	}
	if result != loc(0, 5) {
		t.Fatalf("post-undo location = %v, want (0,5)", result)
	}
}

func TestMultiLineDelete(t *testing.T) {
	b := New("scratch", killring.New())
	b.Add(loc(0, 0), []byte("a\nb\nc"))

	if _, err := b.Delete(textstore.NewRegion(loc(0, 1), loc(2, 0))); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if b.NumLines() != 1 {
		t.Fatalf("NumLines = %d, want 1", b.NumLines())
	}
	if got := lineText(t, b, 0); got != "ac" {
		t.Fatalf("buffer contents = %q, want %q", got, "ac")
	}
}

func TestNextWordAcrossPunctuation(t *testing.T) {
	b := New("scratch", killring.New())
	b.Add(loc(0, 0), []byte(` word1, word2 "word3" word4`))

	want := []int{1, 8, 15, 22}
	dot := loc(0, 0)
	for i, col := range want {
		dot = b.NextWord(dot)
		if dot.Col != col {
			t.Fatalf("next-word #%d = col %d, want %d", i+1, dot.Col, col)
		}
	}
}

func TestKillRingPasteOlder(t *testing.T) {
	kr := killring.New()
	b := New("scratch", kr)

	kr.Copy([]byte("one"))
	kr.Copy([]byte("two"))

	if _, err := b.Paste(loc(0, 0)); err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if got := lineText(t, b, 0); got != "two" {
		t.Fatalf("buffer contents after paste = %q, want %q", got, "two")
	}

	if _, err := b.PasteOlder(loc(0, 0)); err != nil {
		t.Fatalf("PasteOlder: %v", err)
	}
	if got := lineText(t, b, 0); got != "one" {
		t.Fatalf("buffer contents after paste-older = %q, want %q", got, "one")
	}
}

func TestNonPasteActionMakesPasteOlderBehaveAsFreshPaste(t *testing.T) {
	kr := killring.New()
	b := New("scratch", kr)
	kr.Copy([]byte("one"))
	kr.Copy([]byte("two"))

	b.Paste(loc(0, 0))
	b.Add(loc(0, 3), []byte("!")) // a non-paste action

	if _, err := b.PasteOlder(loc(0, 4)); err != nil {
		t.Fatalf("PasteOlder: %v", err)
	}
	if got := lineText(t, b, 0); got != "two!two" {
		t.Fatalf("buffer contents = %q, want %q", got, "two!two")
	}
}

func TestReadOnlyRejectsMutation(t *testing.T) {
	b := New("scratch", killring.New())
	b.SetReadOnly(true)

	var echoed string
	b.Echo = func(msg string) { echoed = msg }

	if _, err := b.Add(loc(0, 0), []byte("x")); err != ErrReadOnly {
		t.Fatalf("Add on read-only buffer: err = %v, want ErrReadOnly", err)
	}
	if echoed == "" {
		t.Fatal("expected a read-only message to be echoed")
	}
	if b.NumLines() != 0 {
		t.Fatal("read-only Add must not mutate the buffer")
	}
}

func TestWordAt(t *testing.T) {
	b := New("scratch", killring.New())
	b.Add(loc(0, 0), []byte("foo bar baz"))

	region, err := b.WordAt(loc(0, 5))
	if err != nil {
		t.Fatalf("WordAt: %v", err)
	}
	if region.Begin != loc(0, 4) || region.End != loc(0, 7) {
		t.Fatalf("WordAt region = %v, want (0,4)-(0,7)", region)
	}

	if _, err := b.WordAt(loc(0, 3)); err != ErrEmptyWord {
		t.Fatalf("WordAt on a space: err = %v, want ErrEmptyWord", err)
	}
}

func TestSortLines(t *testing.T) {
	b := New("scratch", killring.New())
	b.Add(loc(0, 0), []byte("banana\napple\ncherry"))

	if err := b.SortLines(0, 2); err != nil {
		t.Fatalf("SortLines: %v", err)
	}
	want := []string{"apple", "banana", "cherry"}
	for i, w := range want {
		if got := lineText(t, b, i); got != w {
			t.Fatalf("line %d = %q, want %q", i, got, w)
		}
	}
}

func TestInsertHookFiresInRegistrationOrder(t *testing.T) {
	b := New("scratch", killring.New())
	var order []int
	b.Hooks().OnInsert(func(*Buffer, textstore.Region, int, any) { order = append(order, 1) }, nil, nil)
	b.Hooks().OnInsert(func(*Buffer, textstore.Region, int, any) { order = append(order, 2) }, nil, nil)

	b.Add(loc(0, 0), []byte("x"))

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("hook order = %v, want [1 2]", order)
	}
}

func TestRemoveHookRunsCleanup(t *testing.T) {
	b := New("scratch", killring.New())
	cleaned := false
	id := b.Hooks().OnInsert(func(*Buffer, textstore.Region, int, any) {}, "payload", func(ud any) {
		if ud != "payload" {
			t.Fatalf("cleanup userData = %v, want %q", ud, "payload")
		}
		cleaned = true
	})

	if !b.Hooks().Remove(id) {
		t.Fatal("Remove should find the registered hook")
	}
	if !cleaned {
		t.Fatal("Remove should invoke the cleanup callback")
	}
}
