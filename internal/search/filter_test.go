package search

import (
	"reflect"
	"testing"
	"time"

	"github.com/hal/devprofile/internal/model"
)

func sampleRepos() []model.Repository {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []model.Repository{
		{ID: 1, Name: "alpha", Language: "Go", Stars: 5, Forks: 2, UpdatedAt: t0.AddDate(0, 2, 0)},
		{ID: 2, Name: "beta", Language: "Rust", Stars: 1, Forks: 9, UpdatedAt: t0.AddDate(0, 1, 0)},
		{ID: 3, Name: "gamma", Language: "Go", Stars: 5, Forks: 4, UpdatedAt: t0},
		{ID: 4, Name: "delta", Stars: 7, Forks: 0, UpdatedAt: t0.AddDate(0, 3, 0)},
	}
}

func names(repos []model.Repository) []string {
	out := make([]string, len(repos))
	for i, r := range repos {
		out[i] = r.Name
	}
	return out
}

func TestApplySortsByStarsDescByDefault(t *testing.T) {
	got := Apply(sampleRepos(), model.FilterSpec{}, 0)
	want := []string{"delta", "alpha", "gamma", "beta"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("expected %v, got %v", want, names(got))
	}
}

func TestApplyIsStableOnEqualKeys(t *testing.T) {
	// alpha and gamma both have 5 stars; alpha was fetched first and
	// must stay first.
	repos := []model.Repository{
		{Name: "alpha", Stars: 5},
		{Name: "beta", Stars: 1},
		{Name: "gamma", Stars: 5},
	}
	got := Apply(repos, model.FilterSpec{SortBy: model.SortByStars, Order: model.OrderDesc}, 0)
	want := []string{"alpha", "gamma", "beta"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("expected %v, got %v", want, names(got))
	}
}

func TestApplyLanguageFilterIsExact(t *testing.T) {
	spec := model.FilterSpec{Language: "Go"}
	got := Apply(sampleRepos(), spec, 0)
	if len(got) != 2 {
		t.Fatalf("expected 2 Go repos, got %d", len(got))
	}
	for _, r := range got {
		if r.Language != "Go" {
			t.Errorf("expected only Go repos, got %q", r.Language)
		}
	}

	// Case-sensitive: upstream labels are canonical
	if got := Apply(sampleRepos(), model.FilterSpec{Language: "go"}, 0); len(got) != 0 {
		t.Errorf("expected no repos for lowercase label, got %d", len(got))
	}
}

func TestApplyAscendingFlipsOrder(t *testing.T) {
	spec := model.FilterSpec{SortBy: model.SortByForks, Order: model.OrderAsc}
	got := Apply(sampleRepos(), spec, 0)
	want := []string{"delta", "alpha", "gamma", "beta"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("expected %v, got %v", want, names(got))
	}
}

func TestApplySortsByUpdated(t *testing.T) {
	spec := model.FilterSpec{SortBy: model.SortByUpdated}
	got := Apply(sampleRepos(), spec, 0)
	want := []string{"delta", "alpha", "beta", "gamma"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("expected %v, got %v", want, names(got))
	}
}

func TestApplyTruncates(t *testing.T) {
	got := Apply(sampleRepos(), model.FilterSpec{}, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 repos, got %d", len(got))
	}
	if got[0].Name != "delta" || got[1].Name != "alpha" {
		t.Errorf("unexpected order after truncation: %v", names(got))
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	spec := model.FilterSpec{Language: "Go", SortBy: model.SortByStars}
	once := Apply(sampleRepos(), spec, 0)
	twice := Apply(once, spec, 0)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected apply to be idempotent:\nonce:  %v\ntwice: %v", names(once), names(twice))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	repos := sampleRepos()
	before := names(repos)
	_ = Apply(repos, model.FilterSpec{SortBy: model.SortByForks}, 0)
	if !reflect.DeepEqual(names(repos), before) {
		t.Errorf("input slice was reordered: %v", names(repos))
	}
}

func TestLanguages(t *testing.T) {
	got := Languages(sampleRepos())
	want := []string{"Go", "Rust"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPinned(t *testing.T) {
	got := Pinned(sampleRepos(), 3)
	want := []string{"delta", "alpha", "gamma"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("expected %v, got %v", want, names(got))
	}

	// Asking for more than available returns everything
	if got := Pinned(sampleRepos()[:2], 3); len(got) != 2 {
		t.Errorf("expected 2 repos, got %d", len(got))
	}
}
