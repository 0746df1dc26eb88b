package buffer

// UpdateResult is one update hook's contribution to a frame: a left-fringe
// margin request and an optional override for how a line's bytes render.
type UpdateResult struct {
	Margin int
	Render LineRenderFunc
}

// Update runs once per frame for this buffer: it clears properties left
// over from the previous frame, then invokes every registered update hook
// in registration order, collecting their results. Hooks that need
// persistent decoration (syntax highlighting, diagnostics) re-add their
// properties here, since Update just cleared them.
func (b *Buffer) Update() []UpdateResult {
	b.store.ClearProperties()
	var results []UpdateResult
	b.hooks.update.forEach(func(fn UpdateHookFunc, ud any) {
		margin, render := fn(b, ud)
		results = append(results, UpdateResult{Margin: margin, Render: render})
	})
	return results
}
