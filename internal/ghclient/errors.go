package ghclient

import (
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v57/github"
)

// ErrRateLimited is returned when the GitHub API rate limit has been
// exceeded (HTTP 403 or 429 on any call).
var ErrRateLimited = errors.New("GitHub API rate limit exceeded")

// NotFoundError is returned when the profile endpoint answers 404 for
// a handle.
type NotFoundError struct {
	Handle string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.Handle)
}

// UpstreamError is returned for any other non-2xx status.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("GitHub %s request failed with status %d", e.Endpoint, e.StatusCode)
}

// UnreachableError is returned when no HTTP response was received at
// all (DNS failure, refused connection, timeout).
type UnreachableError struct {
	Endpoint string
	Err      error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("GitHub %s request failed: %v", e.Endpoint, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// mapError translates a go-github error into this package's taxonomy.
// The handle is only used for 404s on the users endpoint; every other
// endpoint reports 404 as an upstream failure.
func mapError(endpoint, handle string, err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return ErrRateLimited
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return ErrRateLimited
	}
	if errors.Is(err, ErrRateLimited) {
		return ErrRateLimited
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			if handle != "" {
				return &NotFoundError{Handle: handle}
			}
			return &UpstreamError{Endpoint: endpoint, StatusCode: http.StatusNotFound}
		case http.StatusForbidden, http.StatusTooManyRequests:
			return ErrRateLimited
		default:
			return &UpstreamError{Endpoint: endpoint, StatusCode: respErr.Response.StatusCode}
		}
	}

	return &UnreachableError{Endpoint: endpoint, Err: err}
}
