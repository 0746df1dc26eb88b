package keymap

import "github.com/dged-editor/dged/internal/key"

// ResultKind tags what a Resolve call produced.
type ResultKind int

const (
	// ResultUnbound means no keymap in the active stack had a binding for
	// the keystroke.
	ResultUnbound ResultKind = iota
	// ResultCommand means the keystroke resolved to a named command.
	ResultCommand
	// ResultFunc means the keystroke resolved to an anonymous function.
	ResultFunc
	// ResultPrefix means the keystroke set a new prefix keymap; the
	// resolver now consults only that keymap for the next keystroke.
	ResultPrefix
)

// Result is the outcome of resolving one keystroke.
type Result struct {
	Kind ResultKind
	Name string
	Func any
}

// Resolver tracks the global keymap stack and, while a multi-stroke
// binding is in progress, the single prefix keymap currently active.
type Resolver struct {
	globals []*Map
	current *Map
}

// NewResolver creates a resolver consulting globals innermost-first: the
// first element is tried first, matching the keymap design's stack order.
func NewResolver(globals ...*Map) *Resolver {
	return &Resolver{globals: globals}
}

// InPrefix reports whether a prefix keymap is currently active.
func (r *Resolver) InPrefix() bool {
	return r.current != nil
}

// ClearPrefix abandons the active prefix without resolving a keystroke.
func (r *Resolver) ClearPrefix() {
	r.current = nil
}

// Resolve looks up id, consulting only the active prefix keymap if one is
// set, or the full global stack (innermost first) otherwise. A keymap
// binding sets a new active prefix and returns ResultPrefix; any other
// outcome clears the active prefix.
func (r *Resolver) Resolve(id key.ID) Result {
	b, ok := r.lookup(id)
	r.current = nil

	if !ok {
		return Result{Kind: ResultUnbound}
	}

	switch b.Kind {
	case BindKeymap:
		r.current = b.Keymap
		return Result{Kind: ResultPrefix}
	case BindFunc:
		return Result{Kind: ResultFunc, Func: b.Func}
	default:
		return Result{Kind: ResultCommand, Name: b.Name}
	}
}

func (r *Resolver) lookup(id key.ID) (Binding, bool) {
	if r.current != nil {
		return r.current.Lookup(id)
	}
	for _, m := range r.globals {
		if b, ok := m.Lookup(id); ok {
			return b, true
		}
	}
	return Binding{}, false
}
