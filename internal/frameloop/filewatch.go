//go:build linux

package frameloop

import "github.com/dged-editor/dged/internal/reactor"

// drainFileEvents reloads every buffer whose backing file the reactor
// reports as written, pushing a savepoint boundary so the reload is a
// single undoable step. A watch that the kernel invalidated is re-armed
// against the same buffer's path.
func (l *Loop) drainFileEvents() {
	var ev reactor.FileEvent
	for l.Reactor.NextFileEvent(&ev) {
		b, ok := l.watches[ev.ID]
		if !ok {
			continue
		}

		if ev.Mask&reactor.FileWritten != 0 && !b.Modified() {
			if err := b.Reload(); err == nil {
				b.PushBoundary(true)
			}
		}

		if ev.Mask&reactor.LastEvent != 0 {
			delete(l.watches, ev.ID)
			if err := l.WatchBuffer(b); err != nil {
				l.Minibuffer.Echo("failed to re-arm watch for %s: %v", b.Path, err)
			}
		}
	}
}
