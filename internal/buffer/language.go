package buffer

// Language describes per-filetype editing settings, mirroring the
// languages.<id>.* tables in the TOML settings schema.
type Language struct {
	// Name is the language identifier, e.g. "go" or "markdown".
	Name string `toml:"-"`
	// Extensions lists the file extensions (without the leading dot)
	// associated with this language.
	Extensions []string `toml:"extensions"`
	// TabWidth overrides the editor-wide tab width for this language.
	// Zero means "use the editor default".
	TabWidth int `toml:"tab-width"`
	// LanguageServerCommand is the argv used to launch a language server
	// for files of this language. Empty means none configured.
	LanguageServerCommand []string `toml:"language-server-command"`
	// Grammar names the tree-sitter grammar used for syntax highlighting.
	// Empty means plain-text rendering.
	Grammar string `toml:"grammar"`
}

// unknownLanguage is the descriptor assigned to buffers whose file
// extension (or lack of a backing file) matches no configured language.
var unknownLanguage = Language{Name: "text"}
