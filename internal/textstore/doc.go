// Package textstore implements a mutable, line-addressable UTF-8 text
// sequence with embedded text-property spans.
//
// A store is an ordered slice of lines; each line owns a byte buffer
// without a terminator. No line ever contains a newline byte, an empty
// store has zero lines, and column indices are codepoint offsets while
// byte indices crossing the API are always UTF-8 boundary aligned.
//
// Properties are unordered spans of (begin, end, property) that overlap
// freely; they do not shift automatically on edits. Buffer-layer callers
// clear and regenerate them once per render cycle.
package textstore
