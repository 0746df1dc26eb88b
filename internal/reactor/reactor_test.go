//go:build linux

package reactor

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

func newTestReactor(t *testing.T) *Reactor {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func newTestPipe(t *testing.T) (read, write int) {
	t.Helper()
	var fds [2]int
	if err := unix.Pipe2(fds[:], unix.O_NONBLOCK|unix.O_CLOEXEC); err != nil {
		t.Fatalf("pipe2: %v", err)
	}
	t.Cleanup(func() {
		unix.Close(fds[0])
		unix.Close(fds[1])
	})
	return fds[0], fds[1]
}

func TestRegisterInterestReportsReadiness(t *testing.T) {
	r := newTestReactor(t)
	rd, wr := newTestPipe(t)

	id, err := r.RegisterInterest(rd, InterestRead)
	if err != nil {
		t.Fatalf("RegisterInterest: %v", err)
	}

	if _, err := unix.Write(wr, []byte{1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := r.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !r.PollEvent(id) {
		t.Fatalf("expected PollEvent(%d) to be true after a write", id)
	}
}

func TestUnregisterInterestStopsReporting(t *testing.T) {
	r := newTestReactor(t)
	rd, wr := newTestPipe(t)

	id, err := r.RegisterInterest(rd, InterestRead)
	if err != nil {
		t.Fatalf("RegisterInterest: %v", err)
	}
	r.UnregisterInterest(id)

	if _, err := unix.Write(wr, []byte{1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := r.Wake(); err != nil {
		t.Fatalf("Wake: %v", err)
	}
	if err := r.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if r.PollEvent(id) {
		t.Fatalf("expected unregistered fd to no longer report readiness")
	}
}

func TestWakeUnblocksUpdate(t *testing.T) {
	r := newTestReactor(t)
	if err := r.Wake(); err != nil {
		t.Fatalf("Wake: %v", err)
	}
	if err := r.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestWatchFileReportsWriteEvent(t *testing.T) {
	r := newTestReactor(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	id, err := r.WatchFile(path, 0)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}

	if err := os.WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := r.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	var ev FileEvent
	if !r.NextFileEvent(&ev) {
		t.Fatalf("expected a file event after modifying the watched file")
	}
	if ev.ID != id {
		t.Fatalf("FileEvent.ID = %d, want %d", ev.ID, id)
	}
	if ev.Mask&FileWritten == 0 {
		t.Fatalf("expected FileWritten bit set, got mask %b", ev.Mask)
	}
}

func TestUnwatchFileStopsNotifications(t *testing.T) {
	r := newTestReactor(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	id, err := r.WatchFile(path, 0)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	r.UnwatchFile(id)

	// Removing a watch itself queues an IN_IGNORED notification; drain it
	// (and it alone) before checking that the watch is truly dead.
	if err := r.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	var ev FileEvent
	sawRemoval := false
	for r.NextFileEvent(&ev) {
		if ev.Mask&LastEvent != 0 {
			sawRemoval = true
		} else {
			t.Fatalf("unexpected event draining the watch removal: %+v", ev)
		}
	}
	if !sawRemoval {
		t.Fatalf("expected UnwatchFile to queue a LastEvent notification")
	}

	if err := os.WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := r.Wake(); err != nil {
		t.Fatalf("Wake: %v", err)
	}
	if err := r.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if r.NextFileEvent(&ev) {
		t.Fatalf("expected no file event for a dead watch, got %+v", ev)
	}
}
