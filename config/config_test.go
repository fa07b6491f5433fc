package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error for missing config, got %v", err)
	}
	if cfg.VisibleLines != 10 || cfg.Theme != "classic" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if filepath.Base(cfg.NotePath) != "note.json" {
		t.Fatalf("expected default note path, got %q", cfg.NotePath)
	}
}

func TestSaveThenLoadKeepsValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.VisibleLines = 4
	cfg.Theme = "monokai"
	if err := cfg.SaveTo(ConfigPath()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.VisibleLines != 4 || got.Theme != "monokai" {
		t.Fatalf("expected saved values, got %+v", got)
	}
}

func TestLoadFromValidatesGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"visible_lines": 0, "line_height": -2, "padding": -1}`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.VisibleLines != 10 || cfg.LineHeight != 1 || cfg.Padding != 0 {
		t.Fatalf("expected geometry fixed up, got %+v", cfg)
	}
}

func TestLoadFromRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestGetThemeFallsBackToClassic(t *testing.T) {
	cfg := Default()
	cfg.Theme = "does-not-exist"
	if got := cfg.GetTheme(); got != Themes["classic"] {
		t.Fatalf("expected classic theme, got %+v", got)
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b := Color(0xFFFFAA00).RGB()
	if r != 0xFF || g != 0xAA || b != 0 {
		t.Fatalf("unexpected components %x %x %x", r, g, b)
	}
	if a := Color(0x80808080).Alpha(); a != 0x80 {
		t.Fatalf("expected alpha 0x80, got %x", a)
	}
}

func TestColorOver(t *testing.T) {
	bg := Color(0xFF000000)
	if got := Color(0xFFFF0000).Over(bg); got != 0xFFFF0000 {
		t.Fatalf("expected opaque color unchanged, got %#x", uint32(got))
	}
	if got := Color(0x00FFFFFF).Over(0xFF102030); got != 0xFF102030 {
		t.Fatalf("expected transparent color to show the background, got %#x", uint32(got))
	}
	got := Color(0x80808080).Over(0xFF222222)
	r, g, b := got.RGB()
	if got.Alpha() != 0xFF || r != 0x51 || g != 0x51 || b != 0x51 {
		t.Fatalf("expected 0xFF515151, got %#x", uint32(got))
	}
}
