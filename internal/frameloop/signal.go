//go:build linux

package frameloop

import (
	"os"
	"os/signal"
	"syscall"
)

// WatchSignals spawns a goroutine that reacts to SIGTERM by requesting
// shutdown and SIGWINCH by requesting a resize, in both cases waking a
// concurrently blocked reactor Update so the next tick notices without
// waiting on a keystroke. It never touches a buffer, view or window
// directly: those are single-threaded engine state, and the goroutine
// only flips the atomic flags Tick already consults.
func (l *Loop) WatchSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGWINCH)

	go func() {
		for sig := range sigCh {
			switch sig {
			case syscall.SIGTERM:
				l.Stop()
			case syscall.SIGWINCH:
				l.RequestResize()
			}
			_ = l.Reactor.Wake()
		}
	}()
}
