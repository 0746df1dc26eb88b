// Package key decodes raw input bytes into keystrokes: self-inserting
// runes, Ctrl-modified bytes, Meta (Alt/ESC-prefixed) keystrokes, and
// special function-key sequences (arrows, Home/End, F-keys and the like).
// Decoding is incremental so a keystroke split across two reads from the
// terminal is resolved once the remaining bytes arrive.
package key
