package ghclient

import (
	"context"
	"strings"

	gh "github.com/google/go-github/v57/github"

	"github.com/hal/devprofile/internal/constants"
	"github.com/hal/devprofile/internal/log"
	"github.com/hal/devprofile/internal/model"
)

// splitFullName splits "owner/repo" into its parts. The second return
// is empty when the name is not fully qualified.
func splitFullName(fullName string) (owner, repo string) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok {
		return fullName, ""
	}
	return owner, repo
}

// CountCommits returns the number of commits authored by authorHandle
// in the repository, capped at one page (100). Used for best-effort
// activity totals, not an exact count.
func (c *Client) CountCommits(ctx context.Context, fullName, authorHandle string) (int, error) {
	owner, repo := splitFullName(fullName)
	log.Trace("counting commits", "repo", fullName, "author", authorHandle)

	opts := &gh.CommitsListOptions{
		Author: authorHandle,
		ListOptions: gh.ListOptions{
			PerPage: constants.ActivityPageSize,
		},
	}

	commits, _, err := c.client.Repositories.ListCommits(ctx, owner, repo, opts)
	if err != nil {
		return 0, mapError("commits", "", err)
	}
	return len(commits), nil
}

// FetchPullRequests returns one page of pull requests in any state for
// the repository. Author filtering happens client-side; the upstream
// endpoint has no author parameter.
func (c *Client) FetchPullRequests(ctx context.Context, fullName string) ([]model.PullRequest, error) {
	owner, repo := splitFullName(fullName)
	log.Trace("fetching pull requests", "repo", fullName)

	opts := &gh.PullRequestListOptions{
		State: "all",
		ListOptions: gh.ListOptions{
			PerPage: constants.ActivityPageSize,
		},
	}

	ghPRs, _, err := c.client.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return nil, mapError("pulls", "", err)
	}

	prs := make([]model.PullRequest, 0, len(ghPRs))
	for _, pr := range ghPRs {
		prs = append(prs, model.PullRequest{
			Number: pr.GetNumber(),
			Author: pr.GetUser().GetLogin(),
			State:  pr.GetState(),
		})
	}
	return prs, nil
}
