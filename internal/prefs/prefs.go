// Package prefs persists small user preferences: the display theme
// and the last successfully searched handle.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/hal/devprofile/internal/model"
)

// prefsData is the on-disk shape.
type prefsData struct {
	Theme      model.Theme `json:"theme,omitempty"`
	LastHandle string      `json:"lastHandle,omitempty"`
}

// Store reads and writes the preferences file. Writes are persisted
// immediately.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a preferences store at the user config directory.
func NewStore() (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(configDir, "devprofile")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &Store{path: filepath.Join(dir, "prefs.json")}, nil
}

// NewStoreWithPath creates a store at the given path (for testing).
func NewStoreWithPath(path string) *Store {
	return &Store{path: path}
}

// Theme returns the persisted theme, defaulting to light.
func (s *Store) Theme() model.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.read()
	if !d.Theme.Valid() {
		return model.ThemeLight
	}
	return d.Theme
}

// SetTheme persists the theme.
func (s *Store) SetTheme(theme model.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.read()
	d.Theme = theme
	return s.write(d)
}

// LastHandle returns the most recently committed search handle, or
// empty if none has been recorded.
func (s *Store) LastHandle() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read().LastHandle
}

// SetLastHandle persists the handle of the latest successful search.
func (s *Store) SetLastHandle(handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.read()
	d.LastHandle = handle
	return s.write(d)
}

func (s *Store) read() prefsData {
	var d prefsData
	data, err := os.ReadFile(s.path)
	if err != nil {
		return d
	}
	_ = json.Unmarshal(data, &d)
	return d
}

func (s *Store) write(d prefsData) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
