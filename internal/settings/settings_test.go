package settings

import "testing"

func TestDefaultValues(t *testing.T) {
	s := Default()
	if s.Editor.TabWidth != defaultTabWidth {
		t.Fatalf("TabWidth = %d, want %d", s.Editor.TabWidth, defaultTabWidth)
	}
	if !s.Editor.ShowWhitespace {
		t.Fatal("ShowWhitespace should default to true")
	}
}

func TestParseOverridesEditorSettings(t *testing.T) {
	s, err := Parse([]byte(`
[editor]
tab-width = 2
show-whitespace = false
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Editor.TabWidth != 2 {
		t.Fatalf("TabWidth = %d, want 2", s.Editor.TabWidth)
	}
	if s.Editor.ShowWhitespace {
		t.Fatal("ShowWhitespace should be false")
	}
}

func TestParseFillsLanguageNameFromTableKey(t *testing.T) {
	s, err := Parse([]byte(`
[languages.go]
extensions = ["go"]
tab-width = 4
grammar = "go"
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lang, ok := s.Languages["go"]
	if !ok {
		t.Fatal("expected a \"go\" language entry")
	}
	if lang.Name != "go" {
		t.Fatalf("Name = %q, want %q", lang.Name, "go")
	}
	if lang.Grammar != "go" {
		t.Fatalf("Grammar = %q, want %q", lang.Grammar, "go")
	}
}

func TestTabWidthForFallsBackToEditorDefault(t *testing.T) {
	s, err := Parse([]byte(`
[editor]
tab-width = 8

[languages.markdown]
extensions = ["md"]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := s.TabWidthFor("markdown"); got != 8 {
		t.Fatalf("TabWidthFor(markdown) = %d, want 8 (falls back to editor default)", got)
	}
	if got := s.TabWidthFor("unknown-language"); got != 8 {
		t.Fatalf("TabWidthFor(unknown) = %d, want 8", got)
	}
}

func TestTabWidthForUsesLanguageOverride(t *testing.T) {
	s, err := Parse([]byte(`
[editor]
tab-width = 8

[languages.python]
extensions = ["py"]
tab-width = 4
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := s.TabWidthFor("python"); got != 4 {
		t.Fatalf("TabWidthFor(python) = %d, want 4", got)
	}
}

func TestParsePreservesUnknownTopLevelKeys(t *testing.T) {
	s, err := Parse([]byte(`
[editor]
tab-width = 4

[future-feature]
enabled = true
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v, ok := s.Get("future-feature")
	if !ok {
		t.Fatal("expected unknown top-level key to be preserved")
	}
	m, ok := v.(map[string]any)
	if !ok || m["enabled"] != true {
		t.Fatalf("future-feature = %#v, want map with enabled=true", v)
	}
}

func TestSetRejectsWrongType(t *testing.T) {
	s := Default()
	err := s.Set("editor.tab-width", "not an int")
	if err == nil {
		t.Fatal("expected an error for a string value on an int setting")
	}
}

func TestSetAppliesValidValue(t *testing.T) {
	s := Default()
	if err := s.Set("editor.tab-width", 2); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if s.Editor.TabWidth != 2 {
		t.Fatalf("TabWidth = %d, want 2", s.Editor.TabWidth)
	}
}

func TestSetUnknownPathIsNotFound(t *testing.T) {
	s := Default()
	err := s.Set("editor.nonexistent", 1)
	if err == nil {
		t.Fatal("expected an error for an unknown setting path")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load("/nonexistent/path/dged.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Editor.TabWidth != defaultTabWidth {
		t.Fatalf("TabWidth = %d, want default %d", s.Editor.TabWidth, defaultTabWidth)
	}
}
