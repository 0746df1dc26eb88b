package buffer

import "github.com/dged-editor/dged/internal/textstore"

// HookID identifies a registered hook for later removal.
type HookID int

// LineRenderFunc optionally overrides how a single line is rendered. It
// returns the bytes to draw in place of the line's raw text.
type LineRenderFunc func(lineIdx int) []byte

// UpdateHookFunc runs once per frame for a buffer. It returns a margin
// (left-fringe width) contribution and, optionally, a LineRenderFunc.
type UpdateHookFunc func(b *Buffer, userData any) (margin int, render LineRenderFunc)

// CreateHookFunc is the create-hook signature. New runs the new buffer's
// create list before returning, but hooks can only be registered on an
// existing Buffer, so that list is empty at that point and a hook added
// with OnCreate is never invoked.
type CreateHookFunc func(b *Buffer, userData any)

// EditHookFunc fires after an insert or delete, naming the affected region
// and the number of bytes touched.
type EditHookFunc func(b *Buffer, region textstore.Region, byteSpan int, userData any)

// ReloadHookFunc fires after a buffer's contents are replaced from disk.
type ReloadHookFunc func(b *Buffer, userData any)

// RenderHookFunc fires before a buffer's lines are drawn, naming the
// viewport's origin and size.
type RenderHookFunc func(b *Buffer, origin textstore.Location, width, height int, userData any)

// DestroyHookFunc fires once, while a buffer is being torn down.
type DestroyHookFunc func(b *Buffer, userData any)

type hookEntry[F any] struct {
	id       HookID
	fn       F
	userData any
	cleanup  func(userData any)
}

// lastHookID is shared by every hook list so that ids are unique across
// lists and Hooks.Remove cannot match a hook of another kind.
var lastHookID HookID

// hookList holds one kind of hook, invoked in registration order.
type hookList[F any] struct {
	entries []hookEntry[F]
}

func (l *hookList[F]) register(fn F, userData any, cleanup func(any)) HookID {
	lastHookID++
	id := lastHookID
	l.entries = append(l.entries, hookEntry[F]{id: id, fn: fn, userData: userData, cleanup: cleanup})
	return id
}

// remove drops the hook with the given id, invoking its cleanup callback
// (if any) with the stored user-data pointer. Reports whether an entry was
// found.
func (l *hookList[F]) remove(id HookID) bool {
	for i, e := range l.entries {
		if e.id == id {
			if e.cleanup != nil {
				e.cleanup(e.userData)
			}
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (l *hookList[F]) forEach(visit func(fn F, userData any)) {
	for _, e := range l.entries {
		visit(e.fn, e.userData)
	}
}

// Hooks bundles every hook list a Buffer exposes.
type Hooks struct {
	create  hookList[CreateHookFunc]
	insert  hookList[EditHookFunc]
	delete  hookList[EditHookFunc]
	reload  hookList[ReloadHookFunc]
	render  hookList[RenderHookFunc]
	destroy hookList[DestroyHookFunc]
	update  hookList[UpdateHookFunc]
}

// OnCreate registers a create hook, returning its id.
func (h *Hooks) OnCreate(fn CreateHookFunc, userData any, cleanup func(any)) HookID {
	return h.create.register(fn, userData, cleanup)
}

// OnInsert registers an insert hook, returning its id.
func (h *Hooks) OnInsert(fn EditHookFunc, userData any, cleanup func(any)) HookID {
	return h.insert.register(fn, userData, cleanup)
}

// OnDelete registers a delete hook, returning its id.
func (h *Hooks) OnDelete(fn EditHookFunc, userData any, cleanup func(any)) HookID {
	return h.delete.register(fn, userData, cleanup)
}

// OnReload registers a reload hook, returning its id.
func (h *Hooks) OnReload(fn ReloadHookFunc, userData any, cleanup func(any)) HookID {
	return h.reload.register(fn, userData, cleanup)
}

// OnRender registers a render hook, returning its id.
func (h *Hooks) OnRender(fn RenderHookFunc, userData any, cleanup func(any)) HookID {
	return h.render.register(fn, userData, cleanup)
}

// OnDestroy registers a destroy hook, returning its id.
func (h *Hooks) OnDestroy(fn DestroyHookFunc, userData any, cleanup func(any)) HookID {
	return h.destroy.register(fn, userData, cleanup)
}

// OnUpdate registers an update hook, returning its id.
func (h *Hooks) OnUpdate(fn UpdateHookFunc, userData any, cleanup func(any)) HookID {
	return h.update.register(fn, userData, cleanup)
}

// Remove removes the hook with the given id from whichever list holds it.
func (h *Hooks) Remove(id HookID) bool {
	switch {
	case h.create.remove(id):
	case h.insert.remove(id):
	case h.delete.remove(id):
	case h.reload.remove(id):
	case h.render.remove(id):
	case h.destroy.remove(id):
	case h.update.remove(id):
	default:
		return false
	}
	return true
}
