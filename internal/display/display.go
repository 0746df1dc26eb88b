//go:build linux

package display

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/dged-editor/dged/internal/render/ansi"
)

// Display owns the terminal's raw mode state and a buffered stdout writer.
// It restores the original termios settings on Close and must not outlive
// the process's control of the controlling terminal.
type Display struct {
	fd   int
	orig unix.Termios

	width, height int

	out *bufio.Writer
}

// New puts stdin into raw mode (VMIN=0, VTIME=0: reads never block, since
// the reactor is the engine's sole suspension point) and queries the
// terminal's current size.
func New() (*Display, error) {
	fd := int(os.Stdin.Fd())

	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("display: get termios: %w", err)
	}

	raw := *orig
	makeRaw(&raw)
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETSW, &raw); err != nil {
		return nil, fmt.Errorf("display: set raw mode: %w", err)
	}

	d := &Display{
		fd:   fd,
		orig: *orig,
		out:  bufio.NewWriter(os.Stdout),
	}
	d.Resize()
	return d, nil
}

// makeRaw disables canonical mode, echo, signal generation and input/output
// processing, mirroring POSIX cfmakeraw.
func makeRaw(t *unix.Termios) {
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8
}

// Close restores the terminal's original termios settings and flushes any
// buffered output. It must run on every exit path, signal-initiated
// termination included.
func (d *Display) Close() error {
	d.out.Flush()
	if err := unix.IoctlSetTermios(d.fd, unix.TCSETSW, &d.orig); err != nil {
		return fmt.Errorf("display: restore termios: %w", err)
	}
	return nil
}

// Resize re-queries the device's size via TIOCGWINSZ.
func (d *Display) Resize() error {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("display: get window size: %w", err)
	}
	d.width = int(ws.Col)
	d.height = int(ws.Row)
	return nil
}

// Width reports the terminal's current width in columns.
func (d *Display) Width() int { return d.width }

// Height reports the terminal's current height in rows.
func (d *Display) Height() int { return d.height }

// BeginRender hides the cursor, as the first step of a frame flush.
func (d *Display) BeginRender() {
	d.out.Write(ansi.ShowCursor(false))
}

// EndRender moves the cursor to (row, col), shows it again, and flushes
// buffered output to the terminal device.
func (d *Display) EndRender(row, col int) error {
	d.out.Write(ansi.MoveCursor(row, col))
	d.out.Write(ansi.ShowCursor(true))
	return d.out.Flush()
}

// Write queues already-translated CSI/text bytes (from render/ansi) for
// the next flush.
func (d *Display) Write(data []byte) (int, error) {
	return d.out.Write(data)
}

// Clear moves the cursor home and clears to the end of the screen.
func (d *Display) Clear() {
	d.out.Write(ansi.MoveCursor(0, 0))
	d.out.Write(ansi.ClearToEnd())
}
