package notes

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ViewState is where the user left off in a note.
type ViewState struct {
	NotePath string `json:"note_path"`
	Line     int    `json:"cursor_line"`
	Col      int    `json:"cursor_col"`
	ScrollY  int    `json:"scroll_y"`
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "editbox")
}

// stateKey names per-note state files after the note's absolute path.
func stateKey(notePath string) string {
	if abs, err := filepath.Abs(notePath); err == nil {
		notePath = abs
	}
	hash := sha256.Sum256([]byte(notePath))
	return fmt.Sprintf("%x", hash[:8])
}

func sessionPath(notePath string) string {
	return filepath.Join(dataDir(), "sessions", stateKey(notePath)+".json")
}

func SaveViewState(vs ViewState) error {
	path := sessionPath(vs.NotePath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	data, err := json.MarshalIndent(vs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// LoadViewState returns the saved view for notePath, if any.
func LoadViewState(notePath string) (ViewState, bool) {
	data, err := os.ReadFile(sessionPath(notePath))
	if err != nil {
		return ViewState{}, false
	}
	var vs ViewState
	if err := json.Unmarshal(data, &vs); err != nil {
		return ViewState{}, false
	}
	return vs, true
}
