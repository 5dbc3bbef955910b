// Package search drives the fetch-aggregate-derive pipeline: given a
// handle it fetches the profile and repository list, builds the
// language histogram, and optionally fans out per-repository activity
// requests.
package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hal/devprofile/internal/cache"
	"github.com/hal/devprofile/internal/constants"
	"github.com/hal/devprofile/internal/ghclient"
	"github.com/hal/devprofile/internal/log"
	"github.com/hal/devprofile/internal/model"
)

// Result is a fully assembled search outcome. A new search replaces
// all three fields atomically; callers never observe a mix of old and
// new data.
type Result struct {
	Profile model.Profile      `json:"profile"`
	Repos   []model.Repository `json:"repos"`
	Stats   model.DerivedStats `json:"stats"`
}

// Engine aggregates GitHub data for one handle at a time. It is
// stateless across searches and safe for sequential reuse.
type Engine struct {
	fetcher    ghclient.Fetcher
	cache      cache.Cacher
	pageSize   int
	statsRepos int
}

// Option is a functional option for configuring an Engine.
type Option func(*Engine)

// WithCache attaches a response cache consulted before the profile
// and repository fetches.
func WithCache(c cache.Cacher) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithPageSize sets the repository page size (clamped to [1,100]).
func WithPageSize(n int) Option {
	return func(e *Engine) {
		if n >= constants.MinPageSize && n <= constants.MaxPageSize {
			e.pageSize = n
		}
	}
}

// WithStatsRepos enables the per-repository activity fan-out over the
// first n fetched repositories. Zero disables it; values above the
// cap are clamped.
func WithStatsRepos(n int) Option {
	return func(e *Engine) {
		if n < 0 {
			n = 0
		}
		if n > constants.MaxStatsRepos {
			n = constants.MaxStatsRepos
		}
		e.statsRepos = n
	}
}

// NewEngine creates a search engine backed by the given fetcher.
func NewEngine(fetcher ghclient.Fetcher, opts ...Option) *Engine {
	e := &Engine{
		fetcher:  fetcher,
		pageSize: constants.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search runs the full pipeline for a handle. Validation and the
// profile/repository fetches are all-or-nothing; activity sub-fetches
// degrade gracefully and never fail the search.
func (e *Engine) Search(ctx context.Context, handle string) (*Result, error) {
	if err := ValidateHandle(handle); err != nil {
		return nil, err
	}

	profile, err := e.fetchProfile(ctx, handle)
	if err != nil {
		return nil, err
	}

	repos, err := e.fetchRepositories(ctx, handle)
	if err != nil {
		return nil, err
	}

	stats := model.DerivedStats{
		Languages: languageHistogram(repos),
	}
	if e.statsRepos > 0 {
		e.collectActivity(ctx, handle, repos, &stats)
	}

	return &Result{
		Profile: profile,
		Repos:   repos,
		Stats:   stats,
	}, nil
}

func (e *Engine) fetchProfile(ctx context.Context, handle string) (model.Profile, error) {
	if e.cache != nil {
		if p, ok := e.cache.GetProfile(handle); ok {
			log.Debug("profile cache hit", "handle", handle)
			return *p, nil
		}
	}

	profile, err := e.fetcher.FetchProfile(ctx, handle)
	if err != nil {
		return model.Profile{}, err
	}

	if e.cache != nil {
		if err := e.cache.SetProfile(handle, profile); err != nil {
			log.Debug("could not cache profile", "handle", handle, "error", err)
		}
	}
	return profile, nil
}

func (e *Engine) fetchRepositories(ctx context.Context, handle string) ([]model.Repository, error) {
	if e.cache != nil {
		if repos, ok := e.cache.GetRepoList(handle, e.pageSize); ok {
			log.Debug("repo list cache hit", "handle", handle, "count", len(repos))
			return repos, nil
		}
	}

	repos, err := e.fetcher.FetchRepositories(ctx, handle, e.pageSize)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.SetRepoList(handle, e.pageSize, repos); err != nil {
			log.Debug("could not cache repo list", "handle", handle, "error", err)
		}
	}
	return repos, nil
}

// languageHistogram counts one occurrence per repository with a
// non-empty primary language.
func languageHistogram(repos []model.Repository) map[string]int {
	hist := make(map[string]int)
	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		hist[r.Language]++
	}
	return hist
}

// repoActivity holds one repository's contribution to the totals.
type repoActivity struct {
	commits int
	prs     int
	openPRs int
}

// collectActivity fans out commit and PR count requests for the first
// statsRepos repositories and folds the results into stats. The batch
// is launched together and joined together; a failed sub-fetch is
// logged and contributes zero without affecting its siblings, and the
// fold is independent of completion order.
func (e *Engine) collectActivity(ctx context.Context, handle string, repos []model.Repository, stats *model.DerivedStats) {
	n := e.statsRepos
	if n > len(repos) {
		n = len(repos)
	}
	if n == 0 {
		return
	}

	results := make([]repoActivity, n)
	var eg errgroup.Group

	for i := 0; i < n; i++ {
		i := i
		repo := repos[i]
		eg.Go(func() error {
			commits, err := e.fetcher.CountCommits(ctx, repo.FullName, handle)
			if err != nil {
				log.Warn("could not count commits", "repo", repo.FullName, "error", err)
			} else {
				results[i].commits = commits
			}

			prs, err := e.fetcher.FetchPullRequests(ctx, repo.FullName)
			if err != nil {
				log.Warn("could not fetch pull requests", "repo", repo.FullName, "error", err)
				return nil
			}
			for _, pr := range prs {
				if pr.Author != handle {
					continue
				}
				results[i].prs++
				if pr.State == model.PRStateOpen {
					results[i].openPRs++
				}
			}
			return nil
		})
	}

	// Join-all barrier: the errors are swallowed above, so Wait only
	// serves as the completion point for the whole batch.
	_ = eg.Wait()

	for _, r := range results {
		stats.TotalCommits += r.commits
		stats.TotalPRs += r.prs
		stats.OpenPRs += r.openPRs
	}
	stats.StatsRepos = n

	log.Info("activity stats collected",
		"repos", n,
		"commits", stats.TotalCommits,
		"prs", stats.TotalPRs)
}
