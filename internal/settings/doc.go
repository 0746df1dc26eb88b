// Package settings loads the editor's TOML configuration into a typed
// Settings struct layered over built-in defaults, preserving any unknown
// keys so a newer config file degrades gracefully on an older build.
package settings
