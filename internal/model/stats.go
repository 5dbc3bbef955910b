package model

// DerivedStats holds statistics computed from a fetched repository set.
// It is recomputed in full on every successful search and discarded on
// the next search or on error.
type DerivedStats struct {
	// Languages maps a primary language label to the number of
	// repositories using it. Null-language repositories contribute
	// nothing.
	Languages map[string]int `json:"languages"`

	// Activity totals from the per-repository fan-out. Zero when
	// activity stats are disabled.
	TotalCommits int `json:"totalCommits"`
	TotalPRs     int `json:"totalPrs"`
	OpenPRs      int `json:"openPrs"`

	// StatsRepos is the number of repositories the activity totals
	// were computed over.
	StatsRepos int `json:"statsRepos,omitempty"`
}

// Theme is the persisted display mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
