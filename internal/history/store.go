// Package history persists the bounded list of previously searched
// handles, most recent first.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/hal/devprofile/internal/constants"
	"github.com/hal/devprofile/internal/log"
)

// Store manages the search history as a JSON array on disk. Every
// write is persisted immediately.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a history store at the user cache directory.
func NewStore() (*Store, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(cacheDir, "devprofile")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &Store{path: filepath.Join(dir, "history.json")}, nil
}

// NewStoreWithPath creates a store at the given path (for testing).
func NewStoreWithPath(path string) *Store {
	return &Store{path: path}
}

// Record inserts a handle at the front, removing any prior occurrence
// (exact match) and truncating to the history cap.
func (s *Store) Record(handle string) error {
	if handle == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	handles, err := s.read()
	if err != nil {
		log.Debug("could not read history, starting fresh", "error", err)
		handles = nil
	}

	// Move-to-front: drop any prior occurrence first
	out := make([]string, 0, len(handles)+1)
	out = append(out, handle)
	for _, h := range handles {
		if h == handle {
			continue
		}
		out = append(out, h)
	}

	if len(out) > constants.HistorySize {
		out = out[:constants.HistorySize]
	}

	return s.write(out)
}

// Load returns the persisted history, most recent first.
func (s *Store) Load() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	handles, err := s.read()
	if err != nil {
		return nil
	}
	return handles
}

// Clear removes all history entries.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) read() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var handles []string
	if err := json.Unmarshal(data, &handles); err != nil {
		return nil, err
	}
	return handles, nil
}

// write persists the list atomically.
func (s *Store) write(handles []string) error {
	data, err := json.Marshal(handles)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
