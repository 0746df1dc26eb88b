//go:build linux

package reactor

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Interest is a bitmask of readiness a registered fd is polled for.
type Interest uint8

const (
	InterestRead Interest = 1 << iota
	InterestWrite
)

// maxEpollEvents bounds how many ready fds a single Update call reports,
// mirroring the original's fixed ten-slot events array.
const maxEpollEvents = 10

// Reactor multiplexes fd readiness (epoll) and file-watch notifications
// (inotify, itself registered as one more epoll interest) behind a single
// blocking Update call. It is not safe for concurrent use; the engine is
// single-threaded between Update calls by construction.
type Reactor struct {
	epollFD int

	inotifyFD      int
	inotifyID      uint32
	inotifyReadBuf []byte
	pendingFile    []FileEvent

	wakeFD     [2]int
	wakeID     uint32
	wakeOpened bool

	lastEvents []unix.EpollEvent
}

// New creates a reactor. It owns the epoll and inotify file descriptors
// and must be closed with Close.
func New() (*Reactor, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("reactor: epoll_create1: %w", err)
	}

	infd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		unix.Close(epfd)
		return nil, fmt.Errorf("reactor: inotify_init1: %w", err)
	}

	r := &Reactor{
		epollFD:        epfd,
		inotifyFD:      infd,
		inotifyReadBuf: make([]byte, 64*(inotifyEventHeaderSize+unix.NAME_MAX+1)),
		lastEvents:     make([]unix.EpollEvent, maxEpollEvents),
	}

	id, err := r.RegisterInterest(infd, InterestRead)
	if err != nil {
		r.Close()
		return nil, err
	}
	r.inotifyID = id

	if err := unix.Pipe2(r.wakeFD[:], unix.O_NONBLOCK|unix.O_CLOEXEC); err != nil {
		r.Close()
		return nil, fmt.Errorf("reactor: pipe2: %w", err)
	}
	r.wakeOpened = true
	id, err = r.RegisterInterest(r.wakeFD[0], InterestRead)
	if err != nil {
		r.Close()
		return nil, err
	}
	r.wakeID = id

	return r, nil
}

// Close releases the epoll, inotify and wakeup file descriptors.
func (r *Reactor) Close() error {
	var firstErr error
	if r.wakeOpened {
		unix.Close(r.wakeFD[0])
		unix.Close(r.wakeFD[1])
	}
	if r.inotifyFD != 0 {
		if err := unix.Close(r.inotifyFD); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if r.epollFD != 0 {
		if err := unix.Close(r.epollFD); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// RegisterInterest arms fd in epoll for the given interest, returning an
// opaque id (the fd itself; epoll keys interests by fd, so registering an
// fd that is already registered fails with an error).
func (r *Reactor) RegisterInterest(fd int, interest Interest) (uint32, error) {
	var events uint32
	if interest&InterestRead != 0 {
		events |= unix.EPOLLIN
	}
	if interest&InterestWrite != 0 {
		events |= unix.EPOLLOUT
	}
	ev := unix.EpollEvent{Events: events, Fd: int32(fd)}
	if err := unix.EpollCtl(r.epollFD, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		return 0, fmt.Errorf("reactor: epoll_ctl add: %w", err)
	}
	return uint32(fd), nil
}

// UnregisterInterest disarms a previously registered fd. Unregistering an
// unknown id is a silent no-op.
func (r *Reactor) UnregisterInterest(id uint32) {
	unix.EpollCtl(r.epollFD, unix.EPOLL_CTL_DEL, int(id), nil)
}

// PollEvent reports whether the most recent Update observed readiness for
// id.
func (r *Reactor) PollEvent(id uint32) bool {
	for _, ev := range r.lastEvents {
		if uint32(ev.Fd) == id {
			return true
		}
	}
	return false
}

// Update blocks until at least one registered fd is ready, then records
// the batch for PollEvent and NextFileEvent to consult. It is the only
// place the engine may block.
func (r *Reactor) Update() error {
	n, err := unix.EpollWait(r.epollFD, r.lastEvents[:maxEpollEvents], -1)
	if err != nil {
		if err == unix.EINTR {
			r.lastEvents = r.lastEvents[:0]
			return nil
		}
		return fmt.Errorf("reactor: epoll_wait: %w", err)
	}
	r.lastEvents = r.lastEvents[:n]

	if r.PollEvent(r.wakeID) {
		drainPipe(r.wakeFD[0])
	}
	return nil
}

// Wake unblocks a concurrently running Update call, for use from a
// signal-handling goroutine requesting termination.
func (r *Reactor) Wake() error {
	_, err := unix.Write(r.wakeFD[1], []byte{0})
	if err != nil && err != unix.EAGAIN {
		return fmt.Errorf("reactor: wake: %w", err)
	}
	return nil
}

func drainPipe(fd int) {
	var buf [64]byte
	for {
		n, err := unix.Read(fd, buf[:])
		if err != nil || n == 0 {
			return
		}
	}
}
