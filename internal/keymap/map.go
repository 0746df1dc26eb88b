package keymap

import "github.com/dged-editor/dged/internal/key"

// Kind tags which variant a Binding holds.
type Kind int

const (
	// BindCommand names a command to be looked up in the command registry
	// when the binding fires, resolved late so the keymap need not import
	// the command package.
	BindCommand Kind = iota
	// BindFunc holds an opaque function value, asserted to the caller's
	// expected command function type when invoked.
	BindFunc
	// BindKeymap chains the lookup into a nested prefix map.
	BindKeymap
)

// Binding is one of the three things a keystroke can resolve to.
type Binding struct {
	Kind   Kind
	Name   string
	Func   any
	Keymap *Map
}

// Map is a named table from keystroke to binding.
type Map struct {
	Name     string
	bindings map[key.ID]Binding
}

// New creates an empty keymap named name.
func New(name string) *Map {
	return &Map{Name: name, bindings: make(map[key.ID]Binding)}
}

// BindCommand registers id to invoke the named command.
func (m *Map) BindCommand(id key.ID, name string) {
	m.bindings[id] = Binding{Kind: BindCommand, Name: name}
}

// BindFunc registers id to invoke fn directly.
func (m *Map) BindFunc(id key.ID, fn any) {
	m.bindings[id] = Binding{Kind: BindFunc, Func: fn}
}

// BindKeymap registers id as a prefix that chains into child.
func (m *Map) BindKeymap(id key.ID, child *Map) {
	m.bindings[id] = Binding{Kind: BindKeymap, Keymap: child}
}

// Lookup returns the binding for id in this map, if any.
func (m *Map) Lookup(id key.ID) (Binding, bool) {
	b, ok := m.bindings[id]
	return b, ok
}
