package buffer

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dged-editor/dged/internal/killring"
	"github.com/dged-editor/dged/internal/textstore"
	"github.com/dged-editor/dged/internal/undo"
)

// Buffer is named, optionally file-backed text with a text store, an undo
// log, a shared kill ring reference, hook lists and modification state.
// A Buffer exclusively owns its text store and undo log; the kill ring is
// injected so multiple buffers can share one ring, mirroring how a single
// editor instance hands every buffer the same *killring.KillRing.
type Buffer struct {
	ID          uuid.UUID
	Name        string
	Path        string
	LastWritten time.Time
	Language    Language
	LastError   error

	// Echo receives a human-readable message when a mutating call is
	// rejected (currently: read-only violations). Nil is a valid no-op.
	Echo func(string)

	store    *textstore.Store
	undoLog  *undo.Log
	killRing *killring.KillRing

	modified   bool
	readOnly   bool
	lazyRowAdd bool

	lastPasteRegion textstore.Region
	hasLastPaste    bool

	hooks Hooks
}

// New creates an empty, unnamed-file buffer. kr may be nil, in which case
// copy/cut/paste operations are no-ops.
func New(name string, kr *killring.KillRing) *Buffer {
	b := &Buffer{
		ID:       uuid.New(),
		Name:     name,
		store:    textstore.New(),
		undoLog:  undo.NewLog(),
		killRing: kr,
		Language: unknownLanguage,
	}
	b.hooks.create.forEach(func(fn CreateHookFunc, ud any) { fn(b, ud) })
	return b
}

// FromFile creates a buffer backed by path and loads its contents.
func FromFile(path string, kr *killring.KillRing) (*Buffer, error) {
	b := New(filepath.Base(path), kr)
	b.Path = path
	if err := b.ReadFromFile(); err != nil {
		return nil, err
	}
	return b, nil
}

// Destroy flushes destroy-hooks. The buffer must not be used afterward;
// any view still referencing it is left dangling by contract.
func (b *Buffer) Destroy() {
	b.hooks.destroy.forEach(func(fn DestroyHookFunc, ud any) { fn(b, ud) })
}

// Hooks exposes the buffer's hook registration surface.
func (b *Buffer) Hooks() *Hooks { return &b.hooks }

// Modified reports whether the buffer has unsaved changes.
func (b *Buffer) Modified() bool { return b.modified }

// ReadOnly reports whether mutations are currently rejected.
func (b *Buffer) ReadOnly() bool { return b.readOnly }

// SetReadOnly toggles the read-only flag.
func (b *Buffer) SetReadOnly(v bool) { b.readOnly = v }

func (b *Buffer) echoReadOnly() {
	if b.Echo != nil {
		b.Echo(b.Name + " is read-only")
	}
}

// ReadFromFile (re)loads the buffer's entire content from its backing
// path, discarding the undo log and clearing the modified flag.
func (b *Buffer) ReadFromFile() error {
	if b.Path == "" {
		return ErrNoBackingFile
	}
	data, err := os.ReadFile(b.Path)
	if err != nil {
		b.LastError = err
		return err
	}
	b.store = textstore.New()
	b.store.Append(data)
	b.undoLog = undo.NewLog()
	b.modified = false
	b.hasLastPaste = false
	if info, statErr := os.Stat(b.Path); statErr == nil {
		b.LastWritten = info.ModTime()
	}
	b.LastError = nil
	return nil
}

// WriteToFile writes the buffer's content to path, or to the buffer's
// existing Path when path is empty.
func (b *Buffer) WriteToFile(path string) error {
	if path == "" {
		path = b.Path
	}
	if path == "" {
		return ErrNoBackingFile
	}
	data := b.contentBytes()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		b.LastError = err
		return err
	}
	b.Path = path
	b.modified = false
	b.LastWritten = time.Now()
	b.LastError = nil
	return nil
}

func (b *Buffer) contentBytes() []byte {
	n := b.store.NumLines()
	if n == 0 {
		return nil
	}
	chunk := b.store.GetRegion(textstore.Location{Line: 0, Col: 0}, b.store.EndLocation())
	return chunk.Bytes
}

// Reload discards in-memory edits and re-reads the backing file, firing
// reload hooks afterward.
func (b *Buffer) Reload() error {
	if err := b.ReadFromFile(); err != nil {
		return err
	}
	b.hooks.reload.forEach(func(fn ReloadHookFunc, ud any) { fn(b, ud) })
	return nil
}
