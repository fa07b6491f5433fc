package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogFormatsFields(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	defer setDefault(nil)

	Warn(CatNotes, "note truncated", "max", 10, "orphan")

	got := buf.String()
	if !strings.Contains(got, "[WARN] [notes] note truncated max=10 orphan=<missing>") {
		t.Fatalf("unexpected entry %q", got)
	}
}

func TestMinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	defer setDefault(nil)

	SetMinLevel(LevelWarn)
	Debug(CatUI, "hidden")
	Info(CatUI, "hidden too")
	ErrorErr(CatConfig, "load failed", errors.New("boom"))

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Fatalf("expected debug/info filtered, got %q", got)
	}
	if !strings.Contains(got, "error=boom") {
		t.Fatalf("expected error field, got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		if err != nil || got != tt.want {
			t.Fatalf("expected %v for %q, got %v (err %v)", tt.want, tt.name, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Init(path)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	Info(CatUI, "started")
	cleanup()

	// After cleanup nothing is logged and nothing panics.
	Info(CatUI, "after cleanup")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(string(data), "[INFO] [ui] started") || strings.Contains(string(data), "after cleanup") {
		t.Fatalf("unexpected log file content %q", data)
	}
}
