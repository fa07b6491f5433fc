// Package notes persists the single note edited by editbox and watches its
// file for changes made by other programs.
package notes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"editbox/buffer"
	"editbox/log"
)

// SaveGrace is how long after our own save a write to the note file is
// still attributed to us.
const SaveGrace = time.Second

type noteFile struct {
	Note string `json:"note"`
}

// Store reads and writes the note file, a JSON object {"note": "..."}.
type Store struct {
	Path      string
	MaxLength int

	lastSave time.Time
}

func NewStore(path string, maxLength int) *Store {
	return &Store{Path: path, MaxLength: maxLength}
}

// Load returns the stored note. A missing file is created holding an empty
// note. Notes longer than MaxLength characters are cut down.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info(log.CatNotes, "note file missing, creating", "path", s.Path)
			if err := s.Save(""); err != nil {
				return "", err
			}
			return "", nil
		}
		return "", fmt.Errorf("reading note: %w", err)
	}

	// An empty file holds an empty note, the same as null.
	if len(bytes.TrimSpace(data)) == 0 {
		return "", nil
	}
	var f noteFile
	if err := json.Unmarshal(data, &f); err != nil {
		return "", fmt.Errorf("parsing note %s: %w", s.Path, err)
	}
	return s.truncate(f.Note), nil
}

// Save writes text, truncated to MaxLength, creating parent directories as
// needed.
func (s *Store) Save(text string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("creating note directory: %w", err)
	}
	data, err := json.MarshalIndent(noteFile{Note: s.truncate(text)}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding note: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("writing note: %w", err)
	}
	s.lastSave = time.Now()
	log.Debug(log.CatNotes, "note saved", "path", s.Path, "bytes", len(data))
	return nil
}

func (s *Store) LastSave() time.Time {
	return s.lastSave
}

// ChangedExternally reports whether a write stamped modTime came from
// another program rather than our last Save.
func (s *Store) ChangedExternally(modTime time.Time) bool {
	return s.lastSave.IsZero() || modTime.Sub(s.lastSave) > SaveGrace
}

func (s *Store) truncate(text string) string {
	cut, ok := Truncate(text, s.MaxLength)
	if ok {
		log.Warn(log.CatNotes, "note truncated", "max", s.MaxLength, "length", buffer.RuneLen(text))
	}
	return cut
}

// Truncate cuts text to at most limit characters. It reports whether
// anything was removed. A non-positive limit means no limit.
func Truncate(text string, limit int) (string, bool) {
	if limit <= 0 || buffer.RuneLen(text) <= limit {
		return text, false
	}
	return string([]rune(text)[:limit]), true
}
