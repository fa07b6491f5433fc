package notes

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DraftInterval is how often unsaved edits are written to the draft file.
const DraftInterval = 30 * time.Second

// Draft is unsaved note text kept so it survives a crash.
type Draft struct {
	NotePath  string    `json:"note_path"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func draftPath(notePath string) string {
	return filepath.Join(dataDir(), "drafts", stateKey(notePath)+".json")
}

func SaveDraft(notePath, text string, now time.Time) error {
	path := draftPath(notePath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating draft directory: %w", err)
	}
	data, err := json.Marshal(Draft{NotePath: notePath, Text: text, Timestamp: now})
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing draft: %w", err)
	}
	return nil
}

// LoadDraft returns the draft left behind for notePath, if any.
func LoadDraft(notePath string) (Draft, bool) {
	data, err := os.ReadFile(draftPath(notePath))
	if err != nil {
		return Draft{}, false
	}
	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return Draft{}, false
	}
	return d, true
}

func RemoveDraft(notePath string) error {
	err := os.Remove(draftPath(notePath))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing draft: %w", err)
	}
	return nil
}
