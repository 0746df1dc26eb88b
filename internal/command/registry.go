package command

import (
	"github.com/dged-editor/dged/internal/buffer"
	"github.com/dged-editor/dged/internal/window"
)

// Registry is a hash map from djb2 name hash to command, consulted by the
// keymap resolver and by the minibuffer, which resumes a prompting command
// through Invoke. The editor is
// single-threaded (one frame loop tick at a time), so the registry needs
// no locking.
type Registry struct {
	byHash map[uint32]*Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byHash: make(map[uint32]*Command)}
}

// Register inserts cmd, indexed by the djb2 hash of its name. A later
// registration with a colliding hash replaces the earlier command.
func (r *Registry) Register(cmd *Command) {
	r.byHash[Hash(cmd.Name)] = cmd
}

// RegisterMany registers every command in cmds.
func (r *Registry) RegisterMany(cmds ...*Command) {
	for _, cmd := range cmds {
		r.Register(cmd)
	}
}

// Lookup finds a command by name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	return r.LookupByHash(Hash(name))
}

// LookupByHash finds a command by its precomputed djb2 hash.
func (r *Registry) LookupByHash(h uint32) (*Command, bool) {
	cmd, ok := r.byHash[h]
	return cmd, ok
}

// Execute looks up name, constructs a Context, and invokes the command's
// function. found is false when no command is registered under that name,
// in which case status is meaningless.
func (r *Registry) Execute(name string, win *window.Node, buffers []*buffer.Buffer, argv *ArgVector) (status int, found bool) {
	cmd, ok := r.Lookup(name)
	if !ok {
		return 0, false
	}
	return r.Invoke(cmd, win, buffers, argv), true
}

// Invoke constructs a Context and runs cmd directly, without a name
// lookup. This is how the minibuffer re-enters an already-resolved
// interactive command after a prompt completes.
func (r *Registry) Invoke(cmd *Command, win *window.Node, buffers []*buffer.Buffer, argv *ArgVector) int {
	ctx := &Context{
		Window:   win,
		Buffers:  buffers,
		Registry: r,
		Command:  cmd,
		UserData: cmd.UserData,
		Argv:     argv,
	}
	return cmd.Func(ctx)
}

// ForEach iterates every registered command, in no particular order, for
// use by completion providers.
func (r *Registry) ForEach(fn func(*Command)) {
	for _, cmd := range r.byHash {
		fn(cmd)
	}
}
