package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hal/devprofile/internal/model"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := NewCacheWithDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestProfileRoundTrip(t *testing.T) {
	c := newTestCache(t)

	if _, ok := c.GetProfile("octocat"); ok {
		t.Fatal("expected miss for empty cache")
	}

	p := model.Profile{Handle: "octocat", Name: "The Octocat", Followers: 1000}
	if err := c.SetProfile("octocat", p); err != nil {
		t.Fatal(err)
	}

	got, ok := c.GetProfile("octocat")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if got.Name != "The Octocat" || got.Followers != 1000 {
		t.Errorf("unexpected profile: %+v", got)
	}
}

func TestProfileKeyIsCaseInsensitive(t *testing.T) {
	c := newTestCache(t)

	if err := c.SetProfile("OctoCat", model.Profile{Handle: "octocat"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.GetProfile("octocat"); !ok {
		t.Error("expected hit regardless of handle case")
	}
}

func TestProfileExpiry(t *testing.T) {
	c := newTestCache(t)

	// Write an entry that is already stale
	entry := ProfileEntry{
		Profile:  model.Profile{Handle: "octocat"},
		CachedAt: time.Now().Add(-24 * time.Hour),
		Version:  Version,
	}
	data, _ := json.Marshal(entry)
	if err := os.WriteFile(c.profilePath("octocat"), data, 0600); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.GetProfile("octocat"); ok {
		t.Error("expected stale entry to miss")
	}
}

func TestProfileVersionMismatch(t *testing.T) {
	c := newTestCache(t)

	entry := ProfileEntry{
		Profile:  model.Profile{Handle: "octocat"},
		CachedAt: time.Now(),
		Version:  Version + 1,
	}
	data, _ := json.Marshal(entry)
	if err := os.WriteFile(c.profilePath("octocat"), data, 0600); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.GetProfile("octocat"); ok {
		t.Error("expected version mismatch to miss")
	}
}

func TestRepoListPageSize(t *testing.T) {
	c := newTestCache(t)

	repos := []model.Repository{{ID: 1, Name: "hello-world"}}
	if err := c.SetRepoList("octocat", 30, repos); err != nil {
		t.Fatal(err)
	}

	// Same or smaller page size is served from cache
	if _, ok := c.GetRepoList("octocat", 30); !ok {
		t.Error("expected hit at equal page size")
	}
	if _, ok := c.GetRepoList("octocat", 10); !ok {
		t.Error("expected hit at smaller page size")
	}

	// A larger page size needs a fresh fetch
	if _, ok := c.GetRepoList("octocat", 100); ok {
		t.Error("expected miss at larger page size")
	}
}

func TestClear(t *testing.T) {
	c := newTestCache(t)

	_ = c.SetProfile("octocat", model.Profile{Handle: "octocat"})
	_ = c.SetRepoList("octocat", 30, nil)

	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.GetProfile("octocat"); ok {
		t.Error("expected miss after clear")
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty cache dir, found %d entries", len(entries))
	}
}

func TestStats(t *testing.T) {
	c := newTestCache(t)

	_ = c.SetProfile("octocat", model.Profile{Handle: "octocat"})
	_ = c.SetRepoList("octocat", 30, nil)

	// One stale profile entry
	entry := ProfileEntry{
		Profile:  model.Profile{Handle: "old"},
		CachedAt: time.Now().Add(-24 * time.Hour),
		Version:  Version,
	}
	data, _ := json.Marshal(entry)
	if err := os.WriteFile(filepath.Join(c.dir, "profile_old.json"), data, 0600); err != nil {
		t.Fatal(err)
	}

	stats, err := c.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.ProfileTotal != 2 || stats.ProfileValid != 1 {
		t.Errorf("expected 2 total / 1 valid profiles, got %d / %d", stats.ProfileTotal, stats.ProfileValid)
	}
	if stats.RepoListTotal != 1 || stats.RepoListValid != 1 {
		t.Errorf("expected 1 total / 1 valid repo lists, got %d / %d", stats.RepoListTotal, stats.RepoListValid)
	}
}
