package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "prefs.toml"))
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.View != defaultView {
		t.Fatalf("View = %q, want %q", p.View, defaultView)
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"Paper\"\nview = \"gallery\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != "Paper" {
		t.Fatalf("Theme = %q, want Paper", p.Theme)
	}
	if p.View != "gallery" {
		t.Fatalf("View = %q, want gallery", p.View)
	}
}

func TestLoad_UnknownViewFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("view = \"dashboard\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.View != defaultView {
		t.Fatalf("View = %q, want %q", p.View, defaultView)
	}
}

func TestLoad_InvalidTOMLDegradesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme || p.View != defaultView {
		t.Fatalf("prefs = %+v, want defaults", p)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Paper", View: "search"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	p := Load(path)
	if p.Theme != "Paper" || p.View != "search" {
		t.Fatalf("round-trip prefs = %+v, want Paper/search", p)
	}
}
