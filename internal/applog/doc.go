// Package applog is a small leveled logger for the editor's own
// diagnostics: reactor failures, file I/O errors, and anything else that
// shouldn't interrupt editing by surfacing through the minibuffer alone.
package applog
