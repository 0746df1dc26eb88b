package key

// Mod is a bitmask of keystroke modifiers.
type Mod uint8

const (
	ModNone Mod = 0
	ModCtrl Mod = 1 << 0
	ModMeta Mod = 1 << 1
)

// ID identifies a keystroke for binding lookups, independent of where in
// the input stream it occurred. Two keystrokes bind the same if their ID
// is equal.
//
// Rune carries the decoded codepoint for self-insert, Ctrl- and
// Meta-modified keys. Spec carries the raw sequence body (everything
// after the leading ESC, starting with the '[' or 'O' byte and including
// its terminator, e.g. "[A") for a special function-key sequence, and
// Rune is zero in that case.
type ID struct {
	Mod  Mod
	Rune rune
	Spec string
}

// Stroke is one decoded keystroke together with the byte range in the
// input it was decoded from. Text carries the literal UTF-8 bytes of a
// mod=None, non-Spec keystroke (or a coalesced run of several), letting
// the frame loop self-insert a typing burst with one buffer edit instead
// of one per keystroke.
type Stroke struct {
	ID
	Start, End int
	Text       []byte
}
