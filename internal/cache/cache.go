// Package cache provides a TTL'd file cache for GitHub API responses.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hal/devprofile/internal/constants"
	"github.com/hal/devprofile/internal/log"
	"github.com/hal/devprofile/internal/model"
)

// Cacher defines the interface for caching operations. This interface
// enables mocking the cache in unit tests.
type Cacher interface {
	GetProfile(handle string) (*model.Profile, bool)
	SetProfile(handle string, profile model.Profile) error

	GetRepoList(handle string, pageSize int) ([]model.Repository, bool)
	SetRepoList(handle string, pageSize int, repos []model.Repository) error

	Clear() error
	Stats() (*Stats, error)
}

// Cache stores profile and repository-list responses to avoid
// repeated API calls within a short window.
type Cache struct {
	dir string
}

// Ensure Cache implements Cacher.
var _ Cacher = (*Cache)(nil)

// NewCache creates a cache rooted at the user cache directory.
func NewCache() (*Cache, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}

	cacheDir = filepath.Join(cacheDir, "devprofile", "responses")
	if err := os.MkdirAll(cacheDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &Cache{dir: cacheDir}, nil
}

// NewCacheWithDir creates a cache at the given directory (for testing).
func NewCacheWithDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// safeHandle makes a handle usable as a file name component. Handles
// never contain slashes but a malformed value must not escape the dir.
func safeHandle(handle string) string {
	return strings.ReplaceAll(strings.ToLower(handle), "/", "_")
}

func (c *Cache) profilePath(handle string) string {
	return filepath.Join(c.dir, fmt.Sprintf("profile_%s.json", safeHandle(handle)))
}

func (c *Cache) repoListPath(handle string) string {
	return filepath.Join(c.dir, fmt.Sprintf("repos_%s.json", safeHandle(handle)))
}

// GetProfile returns a cached profile when present and fresh.
func (c *Cache) GetProfile(handle string) (*model.Profile, bool) {
	data, err := os.ReadFile(c.profilePath(handle))
	if err != nil {
		return nil, false
	}

	var entry ProfileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if entry.Version != Version {
		log.Debug("cache version mismatch", "cached", entry.Version, "current", Version)
		return nil, false
	}

	if time.Since(entry.CachedAt) > constants.ProfileCacheTTL {
		return nil, false
	}

	return &entry.Profile, true
}

// SetProfile caches a profile response.
func (c *Cache) SetProfile(handle string, profile model.Profile) error {
	entry := ProfileEntry{
		Profile:  profile,
		CachedAt: time.Now(),
		Version:  Version,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return os.WriteFile(c.profilePath(handle), data, 0600)
}

// GetRepoList returns a cached repository list when present, fresh,
// and fetched at a page size covering the request.
func (c *Cache) GetRepoList(handle string, pageSize int) ([]model.Repository, bool) {
	data, err := os.ReadFile(c.repoListPath(handle))
	if err != nil {
		return nil, false
	}

	var entry RepoListEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if entry.Version != Version {
		return nil, false
	}

	if time.Since(entry.CachedAt) > constants.RepoListCacheTTL {
		return nil, false
	}

	if entry.PageSize < pageSize {
		return nil, false
	}

	return entry.Repos, true
}

// SetRepoList caches a repository list response.
func (c *Cache) SetRepoList(handle string, pageSize int, repos []model.Repository) error {
	entry := RepoListEntry{
		Repos:    repos,
		PageSize: pageSize,
		CachedAt: time.Now(),
		Version:  Version,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return os.WriteFile(c.repoListPath(handle), data, 0600)
}

// Clear removes all cached entries.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}

// Stats returns cache statistics broken down by entry type.
func (c *Cache) Stats() (*Stats, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	now := time.Now()

	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(c.dir, entry.Name()))
		if err != nil {
			continue
		}

		switch {
		case strings.HasPrefix(entry.Name(), "profile_"):
			stats.ProfileTotal++
			var pe ProfileEntry
			if err := json.Unmarshal(data, &pe); err != nil {
				continue
			}
			if pe.Version == Version && now.Sub(pe.CachedAt) <= constants.ProfileCacheTTL {
				stats.ProfileValid++
			}
		case strings.HasPrefix(entry.Name(), "repos_"):
			stats.RepoListTotal++
			var re RepoListEntry
			if err := json.Unmarshal(data, &re); err != nil {
				continue
			}
			if re.Version == Version && now.Sub(re.CachedAt) <= constants.RepoListCacheTTL {
				stats.RepoListValid++
			}
		}
	}

	return stats, nil
}
