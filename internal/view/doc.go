// Package view implements BufferView: a dot (cursor), mark and scroll
// origin over a buffer, plus the motion and region-edit operations that
// are properties of a *view* onto text rather than of the text itself.
// Multiple views may reference the same buffer; edits made through one
// are visible to all.
package view
