// Package ghclient wraps the GitHub REST API for profile and
// repository reads. All calls are GETs against public endpoints; a
// token is optional and only raises the rate limit.
package ghclient

import (
	"context"
	"net/http"
	"strconv"
	"time"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/hal/devprofile/internal/constants"
	"github.com/hal/devprofile/internal/log"
	"github.com/hal/devprofile/internal/model"
)

// rateLimitTransport wraps an http.RoundTripper to track GitHub rate
// limit headers and short-circuit requests while limited.
type rateLimitTransport struct {
	base http.RoundTripper
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if globalRateLimitState.IsLimited() {
		return nil, ErrRateLimited
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	remaining, limit, resetAt := parseRateLimitHeaders(resp)
	if remaining >= 0 && limit > 0 {
		globalRateLimitState.Update(remaining, limit, resetAt)
	}

	if remaining <= constants.RateLimitLowWatermark && remaining > 0 {
		log.Debug("rate limit low", "remaining", remaining, "resets_at", resetAt.Format(time.RFC3339))
	}

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		if resp.Header.Get("X-RateLimit-Remaining") == "0" || resp.StatusCode == http.StatusTooManyRequests {
			globalRateLimitState.SetLimited(true, resetAt)
			_ = resp.Body.Close()
			return nil, ErrRateLimited
		}
	}

	return resp, err
}

// parseRateLimitHeaders extracts rate limit info from response headers.
func parseRateLimitHeaders(resp *http.Response) (remaining, limit int, resetAt time.Time) {
	remaining = -1
	limit = -1

	if remainingStr := resp.Header.Get("X-RateLimit-Remaining"); remainingStr != "" {
		if rem, err := strconv.Atoi(remainingStr); err == nil {
			remaining = rem
		}
	}

	if limitStr := resp.Header.Get("X-RateLimit-Limit"); limitStr != "" {
		if lim, err := strconv.Atoi(limitStr); err == nil {
			limit = lim
		}
	}

	if resetStr := resp.Header.Get("X-RateLimit-Reset"); resetStr != "" {
		if resetTime, err := strconv.ParseInt(resetStr, 10, 64); err == nil {
			resetAt = time.Unix(resetTime, 0)
		}
	}

	return remaining, limit, resetAt
}

// Client wraps the GitHub API client.
type Client struct {
	client *gh.Client
}

// NewClient creates a GitHub client. An empty token means
// unauthenticated access against the public API.
func NewClient(ctx context.Context, token string) *Client {
	var tc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		tc = oauth2.NewClient(ctx, ts)
		tc.Transport = &rateLimitTransport{base: tc.Transport}
	} else {
		tc = &http.Client{Transport: &rateLimitTransport{}}
	}

	return &Client{client: gh.NewClient(tc)}
}

// FetchProfile fetches the account metadata for a handle. A 404 maps
// to NotFoundError carrying the handle.
func (c *Client) FetchProfile(ctx context.Context, handle string) (model.Profile, error) {
	log.Debug("fetching profile", "handle", handle)

	user, _, err := c.client.Users.Get(ctx, handle)
	if err != nil {
		return model.Profile{}, mapError("users", handle, err)
	}

	return model.Profile{
		Handle:      user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		Bio:         user.GetBio(),
		Company:     user.GetCompany(),
		Location:    user.GetLocation(),
		Blog:        user.GetBlog(),
		Email:       user.GetEmail(),
		CreatedAt:   user.GetCreatedAt().Time,
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		HTMLURL:     user.GetHTMLURL(),
	}, nil
}

// RateLimits fetches the current GitHub API rate limit status.
func (c *Client) RateLimits(ctx context.Context) (*gh.RateLimits, error) {
	limits, _, err := c.client.RateLimit.Get(ctx)
	if err != nil {
		return nil, mapError("rate_limit", "", err)
	}
	return limits, nil
}
