// Package constants provides a centralized location for configuration
// values and magic numbers used throughout the devprofile application.
package constants

import "time"

// Search constants
const (
	// MaxHandleLength is the longest handle GitHub accepts.
	MaxHandleLength = 39

	// DefaultPageSize is the repository page size requested when the
	// config does not override it.
	DefaultPageSize = 100

	// MinPageSize and MaxPageSize bound the configurable repository
	// page size. The upstream API caps a single page at 100 items.
	MinPageSize = 1
	MaxPageSize = 100

	// MaxStatsRepos caps the per-repository commit/PR fan-out.
	MaxStatsRepos = 10

	// DefaultStatsRepos is the fan-out size used when activity stats
	// are enabled without an explicit repo count.
	DefaultStatsRepos = 5

	// ActivityPageSize is the page size for commit and pull request
	// list calls. Counts beyond one page are truncated.
	ActivityPageSize = 100

	// DefaultDisplayLimit caps the repositories rendered after
	// filtering and sorting. A display limit, not a data limit.
	DefaultDisplayLimit = 50
)

// History constants
const (
	// HistorySize is the number of handles retained in the search
	// history, most recent first.
	HistorySize = 5
)

// Pinned repositories
const (
	// PinnedRepos is the number of top-starred repositories surfaced
	// above the filtered list.
	PinnedRepos = 3
)

// Rate limiting constants
const (
	// RateLimitLowWatermark is the threshold below which rate limit
	// warnings are logged.
	RateLimitLowWatermark = 100
)

// Cache TTL constants
const (
	// ProfileCacheTTL is the maximum age of a cached profile before a
	// re-fetch is required.
	ProfileCacheTTL = 15 * time.Minute

	// RepoListCacheTTL is the TTL for cached repository lists (shorter
	// because star counts and update times change more frequently).
	RepoListCacheTTL = 5 * time.Minute
)
