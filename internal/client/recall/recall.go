// Package recall persists the last-used login email so the login prompt can
// pre-fill it, the terminal analogue of the browser's local storage.
package recall

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type record struct {
	LastEmail string `json:"lastEmail"`
}

// Store reads and writes the recall file.
type Store struct {
	path string
}

// New places the recall file under the user's config directory.
func New() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewWithPath(filepath.Join(dir, "viremo", "recall.json")), nil
}

// NewWithPath creates a Store at an explicit path. Used by tests.
func NewWithPath(path string) *Store {
	return &Store{path: path}
}

// Load returns the last-used email, or "" when none was saved or the file is
// unreadable. A broken recall file never blocks the login screen.
func (s *Store) Load() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return ""
	}
	return rec.LastEmail
}

// Save remembers the email for the next login prompt.
func (s *Store) Save(email string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(record{LastEmail: email})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
