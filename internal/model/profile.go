// Package model contains domain types for the devprofile application.
// These types are independent of any external GitHub library.
package model

import "time"

// Profile is an immutable snapshot of a GitHub account. It is created
// by one successful fetch and replaced wholesale on a new search.
type Profile struct {
	Handle      string    `json:"handle"`
	Name        string    `json:"name,omitempty"`
	AvatarURL   string    `json:"avatarUrl"`
	Bio         string    `json:"bio,omitempty"`
	Company     string    `json:"company,omitempty"`
	Location    string    `json:"location,omitempty"`
	Blog        string    `json:"blog,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	PublicRepos int       `json:"publicRepos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	HTMLURL     string    `json:"htmlUrl"`
}

// DisplayName returns the display name, falling back to the handle
// when the account has none set.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Handle
}
