package search

import (
	"sort"

	"github.com/hal/devprofile/internal/model"
)

// Apply filters and sorts a repository set according to spec and
// truncates the result to limit (no truncation when limit <= 0). It
// is a pure function: the input slice is never mutated, and the sort
// is stable so equal keys keep their original fetch order.
func Apply(repos []model.Repository, spec model.FilterSpec, limit int) []model.Repository {
	spec = spec.Normalize()

	out := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		if spec.Language != "" && r.Language != spec.Language {
			continue
		}
		out = append(out, r)
	}

	less := lessFunc(spec.SortBy)
	sort.SliceStable(out, func(i, j int) bool {
		if spec.Order == model.OrderAsc {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// lessFunc returns a non-strict ascending comparator for the key.
func lessFunc(key model.SortKey) func(a, b model.Repository) bool {
	switch key {
	case model.SortByForks:
		return func(a, b model.Repository) bool { return a.Forks < b.Forks }
	case model.SortByUpdated:
		return func(a, b model.Repository) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return func(a, b model.Repository) bool { return a.Stars < b.Stars }
	}
}

// Languages returns the distinct non-empty language labels across the
// full repository set, sorted. Derived from the untruncated set so
// filter options never disappear when the view is capped.
func Languages(repos []model.Repository) []string {
	seen := make(map[string]struct{})
	var langs []string
	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		if _, ok := seen[r.Language]; ok {
			continue
		}
		seen[r.Language] = struct{}{}
		langs = append(langs, r.Language)
	}
	sort.Strings(langs)
	return langs
}

// Pinned returns the top n repositories by star count, ties broken by
// fetch order.
func Pinned(repos []model.Repository, n int) []model.Repository {
	out := make([]model.Repository, len(repos))
	copy(out, repos)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stars > out[j].Stars
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
