//go:build linux

package frameloop

import (
	"sync/atomic"

	"github.com/dged-editor/dged/internal/buffer"
	"github.com/dged-editor/dged/internal/command"
	"github.com/dged-editor/dged/internal/display"
	"github.com/dged-editor/dged/internal/keymap"
	"github.com/dged-editor/dged/internal/minibuffer"
	"github.com/dged-editor/dged/internal/reactor"
	"github.com/dged-editor/dged/internal/render/cmdlist"
	"github.com/dged-editor/dged/internal/window"
)

// Loop owns every collaborator the engine touches on a tick: the window
// tree, the keymap resolver, the command registry, the minibuffer, the
// reactor and the display. It is single-threaded between calls to Tick;
// the only blocking point in the whole engine is the reactor's Update.
type Loop struct {
	Reactor    *reactor.Reactor
	Display    *display.Display
	Tree       *window.Tree
	Resolver   *keymap.Resolver
	Registry   *command.Registry
	Minibuffer *minibuffer.Minibuffer
	Buffers    []*buffer.Buffer
	Arena      *cmdlist.Arena

	// TabWidth and ShowWhitespace mirror settings.Editor, applied
	// uniformly across every view update and the cursor-position math so
	// there is exactly one tab width in effect, per the single
	// tab-width policy.
	TabWidth       int
	ShowWhitespace bool

	keyboardFD int
	keyboardID uint32
	keyPending []byte // undecoded tail bytes carried from the previous tick

	// watches maps a reactor file-watch id to the buffer it was armed
	// for, per the frame loop's role as sole owner of that association.
	watches map[uint32]*buffer.Buffer

	running       atomic.Bool
	resizePending atomic.Bool
}

// New wires a Loop together. arenaSize <= 0 uses cmdlist.DefaultArenaSize.
func New(r *reactor.Reactor, d *display.Display, tree *window.Tree, resolver *keymap.Resolver, registry *command.Registry, mini *minibuffer.Minibuffer, buffers []*buffer.Buffer, keyboardFD int, arenaSize int, tabWidth int, showWhitespace bool) (*Loop, error) {
	id, err := r.RegisterInterest(keyboardFD, reactor.InterestRead)
	if err != nil {
		return nil, err
	}
	l := &Loop{
		Reactor:        r,
		Display:        d,
		Tree:           tree,
		Resolver:       resolver,
		Registry:       registry,
		Minibuffer:     mini,
		Buffers:        buffers,
		Arena:          cmdlist.NewArena(arenaSize),
		TabWidth:       tabWidth,
		ShowWhitespace: showWhitespace,
		keyboardFD:     keyboardFD,
		keyboardID:     id,
		watches:        make(map[uint32]*buffer.Buffer),
	}
	l.running.Store(true)
	return l, nil
}

// Running reports whether the loop should keep ticking.
func (l *Loop) Running() bool { return l.running.Load() }

// Stop requests that the loop exit after its current tick.
func (l *Loop) Stop() { l.running.Store(false) }

// RequestResize marks the terminal as resized, for the signal-handling
// goroutine to call from outside the tick itself.
func (l *Loop) RequestResize() { l.resizePending.Store(true) }

// WatchBuffer arms file-watch notifications for b's backing path and
// records the association so drainFileEvents can find b again.
func (l *Loop) WatchBuffer(b *buffer.Buffer) error {
	if b.Path == "" {
		return nil
	}
	id, err := l.Reactor.WatchFile(b.Path, 0)
	if err != nil {
		return err
	}
	l.watches[id] = b
	return nil
}
