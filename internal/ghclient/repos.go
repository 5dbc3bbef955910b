package ghclient

import (
	"context"

	gh "github.com/google/go-github/v57/github"

	"github.com/hal/devprofile/internal/constants"
	"github.com/hal/devprofile/internal/log"
	"github.com/hal/devprofile/internal/model"
)

// FetchRepositories fetches one page of a user's repositories sorted
// by last update. The upstream API caps a page at 100 items; results
// beyond the first page are not fetched.
func (c *Client) FetchRepositories(ctx context.Context, handle string, pageSize int) ([]model.Repository, error) {
	if pageSize < constants.MinPageSize || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	log.Debug("fetching repositories", "handle", handle, "pageSize", pageSize)

	opts := &gh.RepositoryListByUserOptions{
		Sort: "updated",
		ListOptions: gh.ListOptions{
			PerPage: pageSize,
		},
	}

	ghRepos, _, err := c.client.Repositories.ListByUser(ctx, handle, opts)
	if err != nil {
		return nil, mapError("repos", "", err)
	}

	repos := make([]model.Repository, 0, len(ghRepos))
	for _, r := range ghRepos {
		repos = append(repos, convertRepo(r))
	}
	return repos, nil
}

func convertRepo(r *gh.Repository) model.Repository {
	return model.Repository{
		ID:          r.GetID(),
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		Watchers:    r.GetWatchersCount(),
		OpenIssues:  r.GetOpenIssuesCount(),
		CreatedAt:   r.GetCreatedAt().Time,
		UpdatedAt:   r.GetUpdatedAt().Time,
		Topics:      r.Topics,
		HTMLURL:     r.GetHTMLURL(),
	}
}
