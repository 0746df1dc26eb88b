// Package display is the thin terminal collaborator underneath the core
// renderer: it owns termios raw-mode state and the buffered write path to
// stdout, and reports the device's current size. It knows nothing about
// command lists or SGR formatting; internal/render/ansi supplies the byte
// sequences this package writes.
package display
