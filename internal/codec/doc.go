// Package codec provides byte/char-index conversion, visual width, and
// codepoint iteration over raw UTF-8 byte slices.
//
// Decoders never fail loudly: an invalid continuation byte is skipped so
// that byte offsets stay meaningful to callers working against a buffer
// that is assumed (but not verified) to hold valid UTF-8.
package codec
