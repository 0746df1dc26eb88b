package command

import (
	"github.com/dged-editor/dged/internal/buffer"
	"github.com/dged-editor/dged/internal/window"
)

// Func is a command's implementation. It returns an integer status: 0 for
// success, non-zero to surface a diagnostic through the minibuffer.
type Func func(ctx *Context) int

// Command is a named, registered function plus any opaque data it closed
// over at registration time.
type Command struct {
	Name     string
	Func     Func
	UserData any
}

// Context is constructed fresh for every invocation and passed to the
// command function.
type Context struct {
	Window   *window.Node
	Buffers  []*buffer.Buffer
	Registry *Registry
	Command  *Command
	UserData any
	Argv     *ArgVector
}
