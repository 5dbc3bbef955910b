package ghclient

import (
	"context"

	"github.com/hal/devprofile/internal/model"
)

// Fetcher defines the GitHub read operations the aggregator depends
// on. This interface enables mocking the API in unit tests.
type Fetcher interface {
	FetchProfile(ctx context.Context, handle string) (model.Profile, error)
	FetchRepositories(ctx context.Context, handle string, pageSize int) ([]model.Repository, error)
	CountCommits(ctx context.Context, fullName, authorHandle string) (int, error)
	FetchPullRequests(ctx context.Context, fullName string) ([]model.PullRequest, error)
}

// Ensure Client implements Fetcher.
var _ Fetcher = (*Client)(nil)
