package key

import "github.com/dged-editor/dged/internal/codec"

// Decode attempts to decode keystrokes from the front of data, stopping
// as soon as the remaining bytes do not yet form a complete keystroke (so
// the caller can retain them and retry once more bytes arrive). It returns
// the decoded strokes and the number of leading bytes consumed.
//
// Consecutive simple (mod=None, non-special) keystrokes are merged into a
// single Stroke whose Text spans every codepoint in the run: this lets a
// burst of typed characters reach the buffer with one insert instead of
// one per keystroke, while any keystroke that is a Ctrl/Meta/Spec
// keystroke, or that would require more bytes than are currently
// available, ends the run.
func Decode(data []byte) (strokes []Stroke, consumed int) {
	for consumed < len(data) {
		s, n, ok := decodeOne(data[consumed:])
		if !ok {
			break
		}
		s.Start += consumed
		s.End += consumed

		if canCoalesce(s) && len(strokes) > 0 && canCoalesce(strokes[len(strokes)-1]) {
			last := &strokes[len(strokes)-1]
			last.Text = append(last.Text, s.Text...)
			last.End = s.End
			last.Rune = 0
		} else {
			strokes = append(strokes, s)
		}
		consumed += n
	}
	return strokes, consumed
}

func canCoalesce(s Stroke) bool {
	return s.Mod == ModNone && s.Spec == ""
}

func isParamByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == ';'
}

func isAlnum(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// decodeOne decodes a single keystroke from the start of data. ok is false
// when data holds only a partial keystroke (more bytes are needed before
// anything can be reported); n and the returned Stroke are meaningless in
// that case.
func decodeOne(data []byte) (s Stroke, n int, ok bool) {
	if len(data) == 0 {
		return Stroke{}, 0, false
	}

	b0 := data[0]

	switch {
	case b0 == 0x1B:
		return decodeEscape(data)
	case b0 == 0x7F:
		return Stroke{ID: ID{Mod: ModCtrl, Rune: '?'}, Start: 0, End: 1}, 1, true
	case b0 < 0x20:
		r := rune(b0 | 0x40)
		return Stroke{ID: ID{Mod: ModCtrl, Rune: r}, Start: 0, End: 1}, 1, true
	default:
		declared := codec.RuneLen(b0)
		if declared > len(data) {
			return Stroke{}, 0, false
		}
		r, width, decOk := codec.DecodeRune(data, 0)
		if !decOk {
			r, width = rune(b0), 1
		}
		return Stroke{ID: ID{Mod: ModNone, Rune: r}, Start: 0, End: width, Text: append([]byte(nil), data[:width]...)}, width, true
	}
}

// decodeEscape decodes a keystroke starting with ESC (0x1B): either a
// Spec (special function) sequence introduced by '[' or 'O', or a Meta
// keystroke formed from ESC plus the single keystroke that follows.
func decodeEscape(data []byte) (Stroke, int, bool) {
	if len(data) < 2 {
		return Stroke{}, 0, false
	}
	b1 := data[1]

	if b1 == '[' || b1 == 'O' {
		if len(data) < 3 {
			return Stroke{}, 0, false
		}
		if isAlnum(data[2]) {
			i := 2
			for i < len(data) && isParamByte(data[i]) {
				i++
			}
			if i >= len(data) {
				return Stroke{}, 0, false
			}
			end := i + 1
			spec := string(data[1:end])
			return Stroke{ID: ID{Mod: ModNone, Spec: spec}, Start: 0, End: end}, end, true
		}
	}

	// Plain Meta keystroke: ESC plus the keystroke that completes it.
	inner, n, ok := decodeOne(data[1:])
	if !ok {
		return Stroke{}, 0, false
	}
	inner.Mod |= ModMeta
	inner.Start, inner.End = 0, 1+n
	return inner, 1 + n, true
}
