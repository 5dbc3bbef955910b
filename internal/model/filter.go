package model

// SortKey selects the repository attribute to sort by.
type SortKey string

const (
	SortByStars   SortKey = "stars"
	SortByForks   SortKey = "forks"
	SortByUpdated SortKey = "updated"
)

// AllSortKeys lists the valid sort keys in cycle order.
var AllSortKeys = []SortKey{SortByStars, SortByForks, SortByUpdated}

// Valid reports whether k is one of the known sort keys.
func (k SortKey) Valid() bool {
	switch k {
	case SortByStars, SortByForks, SortByUpdated:
		return true
	}
	return false
}

// SortOrder is the sort direction.
type SortOrder string

const (
	OrderDesc SortOrder = "desc"
	OrderAsc  SortOrder = "asc"
)

// Flip returns the opposite direction.
func (o SortOrder) Flip() SortOrder {
	if o == OrderAsc {
		return OrderDesc
	}
	return OrderAsc
}

// FilterSpec describes how the repository list should be restricted
// and ordered. The zero value means no language restriction, sorted by
// stars descending.
type FilterSpec struct {
	// Language restricts the list to repositories whose primary
	// language equals it exactly. Empty means no restriction.
	Language string `json:"language,omitempty"`

	SortBy SortKey   `json:"sortBy,omitempty"`
	Order  SortOrder `json:"order,omitempty"`
}

// Normalize fills unset fields with their defaults.
func (s FilterSpec) Normalize() FilterSpec {
	if !s.SortBy.Valid() {
		s.SortBy = SortByStars
	}
	if s.Order != OrderAsc {
		s.Order = OrderDesc
	}
	return s
}
