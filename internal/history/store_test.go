package history

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreWithPath(filepath.Join(t.TempDir(), "history.json"))
}

func TestRecordAndLoad(t *testing.T) {
	s := newTestStore(t)

	if got := s.Load(); len(got) != 0 {
		t.Fatalf("expected empty history, got %v", got)
	}

	if err := s.Record("octocat"); err != nil {
		t.Fatal(err)
	}
	if err := s.Record("torvalds"); err != nil {
		t.Fatal(err)
	}

	want := []string{"torvalds", "octocat"}
	if got := s.Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRecordMovesExistingToFront(t *testing.T) {
	s := newTestStore(t)
	for _, h := range []string{"e", "d", "c", "b", "a"} {
		if err := s.Record(h); err != nil {
			t.Fatal(err)
		}
	}
	// History is now [a b c d e]; re-recording c moves it to front
	// without duplication or truncation.
	if err := s.Record("c"); err != nil {
		t.Fatal(err)
	}

	want := []string{"c", "a", "b", "d", "e"}
	if got := s.Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRecordDropsOldestWhenFull(t *testing.T) {
	s := newTestStore(t)
	for _, h := range []string{"e", "d", "c", "b", "a"} {
		if err := s.Record(h); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Record("new"); err != nil {
		t.Fatal(err)
	}

	want := []string{"new", "a", "b", "c", "d"}
	if got := s.Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRecordIsCaseSensitive(t *testing.T) {
	s := newTestStore(t)
	_ = s.Record("Octocat")
	_ = s.Record("octocat")

	want := []string{"octocat", "Octocat"}
	if got := s.Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected distinct entries %v, got %v", want, got)
	}
}

func TestRecordIgnoresEmptyHandle(t *testing.T) {
	s := newTestStore(t)
	if err := s.Record(""); err != nil {
		t.Fatal(err)
	}
	if got := s.Load(); len(got) != 0 {
		t.Errorf("expected empty history, got %v", got)
	}
}

func TestPersistenceAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	s1 := NewStoreWithPath(path)
	if err := s1.Record("octocat"); err != nil {
		t.Fatal(err)
	}

	s2 := NewStoreWithPath(path)
	if got := s2.Load(); len(got) != 1 || got[0] != "octocat" {
		t.Errorf("expected persisted history, got %v", got)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	_ = s.Record("octocat")

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if got := s.Load(); len(got) != 0 {
		t.Errorf("expected empty history after clear, got %v", got)
	}

	// Clearing an already-empty store is fine
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadToleratesMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	s := NewStoreWithPath(path)
	if got := s.Load(); got != nil {
		t.Errorf("expected nil for malformed file, got %v", got)
	}

	// Recording over a malformed file starts fresh
	if err := s.Record("octocat"); err != nil {
		t.Fatal(err)
	}
	if got := s.Load(); len(got) != 1 {
		t.Errorf("expected fresh history, got %v", got)
	}
}
