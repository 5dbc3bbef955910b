package cache

import (
	"time"

	"github.com/hal/devprofile/internal/model"
)

// Version should be incremented when the cache format changes to
// invalidate old entries.
const Version = 1

// ProfileEntry is a cached profile response.
type ProfileEntry struct {
	Profile  model.Profile `json:"profile"`
	CachedAt time.Time     `json:"cachedAt"`
	Version  int           `json:"version"`
}

// RepoListEntry is a cached repository list response. PageSize is part
// of the identity: a list fetched at a smaller page size must not
// satisfy a larger request.
type RepoListEntry struct {
	Repos    []model.Repository `json:"repos"`
	PageSize int                `json:"pageSize"`
	CachedAt time.Time          `json:"cachedAt"`
	Version  int                `json:"version"`
}

// Stats summarizes cache contents.
type Stats struct {
	ProfileTotal  int
	ProfileValid  int
	RepoListTotal int
	RepoListValid int
}
