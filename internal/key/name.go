package key

import "strings"

// FormatID renders id using the minibuffer's key-name syntax: "c-" for
// Ctrl, "m-" for Meta (Ctrl ordered before Meta when both apply),
// "special-" for a named Spec sequence, and a lowercased base key
// otherwise.
func FormatID(id ID) string {
	var b strings.Builder
	if id.Mod&ModCtrl != 0 {
		b.WriteString("c-")
	}
	if id.Mod&ModMeta != 0 {
		b.WriteString("m-")
	}
	if id.Spec != "" {
		b.WriteString("special-")
		b.WriteString(strings.ToLower(id.Spec))
		return b.String()
	}
	b.WriteRune(toLowerRune(id.Rune))
	return b.String()
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
