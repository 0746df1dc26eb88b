package buffer

import "github.com/dged-editor/dged/internal/textstore"

// AddProperty registers a text-property span on the underlying store.
// Spans are conventionally ephemeral: the frame loop clears all of them
// after rendering, so persistent decoration must be re-added every frame,
// typically from an update hook.
func (b *Buffer) AddProperty(span textstore.Span) {
	b.store.AddProperty(span)
}

// PropertiesAt returns every span covering loc.
func (b *Buffer) PropertiesAt(loc textstore.Location) []textstore.Span {
	return b.store.PropertiesAt(loc)
}

// ClearProperties removes every registered span.
func (b *Buffer) ClearProperties() {
	b.store.ClearProperties()
}
