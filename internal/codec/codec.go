package codec

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// ByteClass categorizes a single byte within a UTF-8 stream.
type ByteClass uint8

const (
	// ClassASCII is a single-byte codepoint (0x00-0x7F).
	ClassASCII ByteClass = iota
	// ClassUnicodeStart begins a multi-byte codepoint (0xC0-0xFF leading byte).
	ClassUnicodeStart
	// ClassContinuation continues a multi-byte codepoint (0x80-0xBF).
	ClassContinuation
)

// Classify reports which class a single byte belongs to.
func Classify(b byte) ByteClass {
	switch {
	case b < 0x80:
		return ClassASCII
	case b&0xC0 == 0x80:
		return ClassContinuation
	default:
		return ClassUnicodeStart
	}
}

// RuneLen returns the declared byte length of a codepoint from its leading
// byte, counting leading one-bits per the UTF-8 encoding table. Returns 1
// for ASCII and for bytes that do not encode a valid leading byte (the
// caller is responsible for skipping such bytes one at a time).
func RuneLen(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// NBytes returns the byte length of the first n codepoints of s. If s
// contains fewer than n codepoints, the full byte length of s is returned.
func NBytes(s []byte, n int) int {
	if n <= 0 {
		return 0
	}
	count := 0
	i := 0
	for i < len(s) {
		if count == n {
			return i
		}
		step := RuneLen(s[i])
		if i+step > len(s) || step == 0 {
			step = 1
		}
		// Skip any stray continuation bytes without counting a rune for them.
		if Classify(s[i]) == ClassContinuation {
			i++
			continue
		}
		i += step
		count++
	}
	return i
}

// NChars returns the number of codepoints represented by the first n bytes
// of s. Invalid continuation bytes are skipped without incrementing the
// count, preserving the invariant NBytes(s, NChars(s, n)) == n for n that
// land on a boundary.
func NChars(s []byte, n int) int {
	if n > len(s) {
		n = len(s)
	}
	count := 0
	i := 0
	for i < n {
		if Classify(s[i]) == ClassContinuation {
			i++
			continue
		}
		count++
		step := RuneLen(s[i])
		if step == 0 {
			step = 1
		}
		i += step
	}
	return count
}

// TotalChars returns the number of codepoints encoded in s.
func TotalChars(s []byte) int {
	return NChars(s, len(s))
}

// DecodeRune decodes the codepoint starting at byte offset i, returning the
// rune, its byte width, and whether i pointed at a valid rune start. On an
// invalid or continuation byte, it returns (utf8.RuneError, 1, false) so
// the caller can advance by one byte and keep scanning.
func DecodeRune(s []byte, i int) (r rune, width int, ok bool) {
	if i < 0 || i >= len(s) {
		return utf8.RuneError, 0, false
	}
	if Classify(s[i]) == ClassContinuation {
		return utf8.RuneError, 1, false
	}
	r, width = utf8.DecodeRune(s[i:])
	if r == utf8.RuneError && width <= 1 {
		return utf8.RuneError, 1, false
	}
	return r, width, true
}

// Width reports the visual cell width of the codepoint at byte offset i in
// s: 0 for continuation bytes, 1 for ASCII printables/narrow codepoints and
// for tabs/control characters (tab expansion is the renderer's job), 2 for
// wide CJK/emoji codepoints, and 2 as a fallback for an undecodable
// sequence that still begins with a unicode-start byte.
func Width(s []byte, i int) int {
	if i < 0 || i >= len(s) {
		return 0
	}
	b := s[i]
	if Classify(b) == ClassContinuation {
		return 0
	}
	r, width, ok := DecodeRune(s, i)
	if !ok {
		if Classify(b) == ClassUnicodeStart {
			return 2
		}
		return 1
	}
	if r < 0x20 || r == 0x7F {
		return 1 // tabs and control characters are width-1 "other" at this layer
	}
	_ = width
	return runewidth.RuneWidth(r)
}

// RuneWidth reports the visual cell width of a decoded rune, applying the
// same tab/control-character override as Width.
func RuneWidth(r rune) int {
	if r < 0x20 || r == 0x7F {
		return 1
	}
	return runewidth.RuneWidth(r)
}

// StringWidth sums the visual width of every codepoint in s.
func StringWidth(s []byte) int {
	total := 0
	for i := 0; i < len(s); {
		w := Width(s, i)
		total += w
		step := RuneLen(s[i])
		if step == 0 || i+step > len(s) {
			step = 1
		}
		if Classify(s[i]) == ClassContinuation {
			step = 1
		}
		i += step
	}
	return total
}

// ForEachRune invokes fn for each decoded codepoint in s, in order,
// skipping invalid continuation bytes while preserving byte offsets. fn
// receives the byte offset, the rune, and its byte width.
func ForEachRune(s []byte, fn func(offset int, r rune, width int)) {
	i := 0
	for i < len(s) {
		if Classify(s[i]) == ClassContinuation {
			i++
			continue
		}
		r, width, ok := DecodeRune(s, i)
		if !ok {
			fn(i, utf8.RuneError, 1)
			i++
			continue
		}
		fn(i, r, width)
		i += width
	}
}
