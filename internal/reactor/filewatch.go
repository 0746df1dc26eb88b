//go:build linux

package reactor

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"
)

// inotifyEventHeaderSize is sizeof(struct inotify_event) on Linux: wd,
// mask, cookie and len are each a uint32.
const inotifyEventHeaderSize = 16

// FileEventMask describes what happened to a watched path.
type FileEventMask uint8

const (
	// FileWritten reports the watched path was modified. Only modification
	// is watched, so every drained event carries this bit, including the
	// one that reports LastEvent.
	FileWritten FileEventMask = 1 << iota
	// LastEvent reports the watch became invalid (the kernel dropped it,
	// typically because the underlying inode was removed or replaced) and
	// must be re-armed with WatchFile before it can fire again.
	LastEvent
)

// FileEvent is one drained file-watch notification.
type FileEvent struct {
	ID   uint32
	Mask FileEventMask
}

// WatchFile arms path-granularity notifications on path, returning an
// opaque watch id for NextFileEvent and UnwatchFile. mask is reserved for
// future event kinds; only modification is currently watched.
func (r *Reactor) WatchFile(path string, mask uint32) (uint32, error) {
	wd, err := unix.InotifyAddWatch(r.inotifyFD, path, unix.IN_MODIFY)
	if err != nil {
		return 0, fmt.Errorf("reactor: inotify_add_watch %s: %w", path, err)
	}
	return uint32(wd), nil
}

// UnwatchFile disarms a watch. Unwatching an unknown or already-invalid id
// is a silent no-op.
func (r *Reactor) UnwatchFile(id uint32) {
	unix.InotifyRmWatch(r.inotifyFD, id)
}

// NextFileEvent drains one pending file-watch notification into out,
// reporting false once none remain. A single inotify read can surface
// several queued notifications at once; NextFileEvent hands them out one
// at a time across calls, only touching the fd again once its internal
// queue runs dry.
func (r *Reactor) NextFileEvent(out *FileEvent) bool {
	if len(r.pendingFile) == 0 {
		if !r.PollEvent(r.inotifyID) {
			return false
		}
		if err := r.fillPendingFile(); err != nil {
			return false
		}
		if len(r.pendingFile) == 0 {
			return false
		}
	}

	*out = r.pendingFile[0]
	r.pendingFile = r.pendingFile[1:]
	return true
}

func (r *Reactor) fillPendingFile() error {
	n, err := unix.Read(r.inotifyFD, r.inotifyReadBuf)
	if err != nil {
		if err == unix.EAGAIN {
			return nil
		}
		return fmt.Errorf("reactor: read inotify fd: %w", err)
	}

	buf := r.inotifyReadBuf[:n]
	for len(buf) >= inotifyEventHeaderSize {
		wd := int32(binary.NativeEndian.Uint32(buf[0:4]))
		mask := binary.NativeEndian.Uint32(buf[4:8])
		nameLen := binary.NativeEndian.Uint32(buf[12:16])

		ev := FileEvent{ID: uint32(wd), Mask: FileWritten}
		if mask&unix.IN_IGNORED != 0 {
			ev.Mask |= LastEvent
		}
		r.pendingFile = append(r.pendingFile, ev)

		consumed := inotifyEventHeaderSize + int(nameLen)
		if consumed > len(buf) {
			break
		}
		buf = buf[consumed:]
	}
	return nil
}
