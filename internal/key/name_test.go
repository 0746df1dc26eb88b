package key

import "testing"

func TestFormatIDPlainRune(t *testing.T) {
	if got := FormatID(ID{Rune: 'q'}); got != "q" {
		t.Fatalf("FormatID = %q, want %q", got, "q")
	}
}

func TestFormatIDCtrl(t *testing.T) {
	if got := FormatID(ID{Mod: ModCtrl, Rune: 'x'}); got != "c-x" {
		t.Fatalf("FormatID = %q, want %q", got, "c-x")
	}
}

func TestFormatIDMeta(t *testing.T) {
	if got := FormatID(ID{Mod: ModMeta, Rune: 'f'}); got != "m-f" {
		t.Fatalf("FormatID = %q, want %q", got, "m-f")
	}
}

func TestFormatIDCtrlMetaOrdersCtrlFirst(t *testing.T) {
	if got := FormatID(ID{Mod: ModCtrl | ModMeta, Rune: 'x'}); got != "c-m-x" {
		t.Fatalf("FormatID = %q, want %q", got, "c-m-x")
	}
}

func TestFormatIDSpec(t *testing.T) {
	if got := FormatID(ID{Spec: "Up"}); got != "special-up" {
		t.Fatalf("FormatID = %q, want %q", got, "special-up")
	}
}
