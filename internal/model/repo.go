package model

import "time"

// Repository is one entry in an account's repository list.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"fullName"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Watchers    int       `json:"watchers"`
	OpenIssues  int       `json:"openIssues"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Topics      []string  `json:"topics,omitempty"`
	HTMLURL     string    `json:"htmlUrl"`
}

// PullRequest is a minimal view of a pull request, enough to attribute
// it to an author and partition by state.
type PullRequest struct {
	Number int    `json:"number"`
	Author string `json:"author"`
	State  string `json:"state"` // open, closed
}

// Pull request states as reported by the upstream API.
const (
	PRStateOpen   = "open"
	PRStateClosed = "closed"
)
