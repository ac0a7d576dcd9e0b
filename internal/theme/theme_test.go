package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPaletteImmutability(t *testing.T) {
	first, err := Palette(ResolvedDark, Overrides{Accent: "#ff00ff"})
	if err != nil {
		t.Fatalf("Palette() unexpected error: %v", err)
	}
	if first.CSSVariables["--accent"] != "#ff00ff" {
		t.Fatalf("override not applied: %q", first.CSSVariables["--accent"])
	}
	first.CSSVariables["--bg"] = "#000000"

	second, err := Palette(ResolvedDark, Overrides{})
	if err != nil {
		t.Fatalf("Palette() unexpected error: %v", err)
	}
	if second.CSSVariables["--accent"] != "#14b8a6" {
		t.Fatalf("builtin accent changed: %q", second.CSSVariables["--accent"])
	}
	if second.CSSVariables["--bg"] != "#020617" {
		t.Fatalf("builtin bg changed: %q", second.CSSVariables["--bg"])
	}
}

func TestPaletteUnknown(t *testing.T) {
	if _, err := Palette(Resolved("system"), Overrides{}); err == nil {
		t.Fatalf("expected error for unresolved theme")
	}
}

func TestListLightFirst(t *testing.T) {
	items := List()
	if len(items) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(items))
	}
	if items[0].Name != "light" || items[1].Name != "dark" {
		t.Fatalf("List() order = %s,%s", items[0].Name, items[1].Name)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.toml")
	content := `
[light]
accent = "#123456"

[dark]
accent = "#abcdef"
border = "#222222"
shadow = "ignored"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write palette file: %v", err)
	}

	f, err := LoadOverrides(path, nil)
	if err != nil {
		t.Fatalf("LoadOverrides() unexpected error: %v", err)
	}
	if got := f.For(ResolvedLight).Accent; got != "#123456" {
		t.Fatalf("light accent = %q", got)
	}
	dark := f.For(ResolvedDark)
	if dark.Accent != "#abcdef" || dark.Border != "#222222" {
		t.Fatalf("dark overrides = %+v", dark)
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	f, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.toml"), nil)
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if f != (OverrideFile{}) {
		t.Fatalf("expected empty overrides, got %+v", f)
	}
}

func TestLoadOverridesMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[light\naccent ="), 0o600); err != nil {
		t.Fatalf("write palette file: %v", err)
	}
	if _, err := LoadOverrides(path, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}
