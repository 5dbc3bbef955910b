package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/hal/devprofile/internal/model"
)

func sampleReport() Report {
	now := time.Now()
	return Report{
		Profile: model.Profile{
			Handle:      "octocat",
			Name:        "The Octocat",
			Bio:         "Building things",
			Location:    "San Francisco",
			PublicRepos: 8,
			Followers:   4200,
			Following:   9,
			CreatedAt:   time.Date(2011, time.January, 25, 0, 0, 0, 0, time.UTC),
			HTMLURL:     "https://github.com/octocat",
		},
		Repos: []model.Repository{
			{
				Name:        "hello-world",
				FullName:    "octocat/hello-world",
				Description: "My first repository",
				Language:    "Go",
				Stars:       1500,
				Forks:       42,
				UpdatedAt:   now.Add(-48 * time.Hour),
				HTMLURL:     "https://github.com/octocat/hello-world",
			},
			{
				Name:      "spoon-knife",
				FullName:  "octocat/spoon-knife",
				Stars:     12,
				UpdatedAt: now.Add(-30 * 24 * time.Hour),
				HTMLURL:   "https://github.com/octocat/spoon-knife",
			},
		},
		Stats: model.DerivedStats{
			Languages:    map[string]int{"Go": 1},
			TotalCommits: 120,
			TotalPRs:     14,
			OpenPRs:      3,
			StatsRepos:   2,
		},
	}
}

func TestTableFormat(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	if err := f.Format(sampleReport(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stripAnsi(buf.String())

	for _, want := range []string{
		"The Octocat",
		"@octocat",
		"Building things",
		"4.2k followers",
		"120 commits",
		"Languages: Go (1)",
		"hello-world",
		"1.5k",
		"spoon-knife",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q\n%s", want, out)
		}
	}
}

func TestTableFormatNoRepos(t *testing.T) {
	report := sampleReport()
	report.Repos = nil

	var buf bytes.Buffer
	f := &TableFormatter{}
	if err := f.Format(report, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No repositories found.") {
		t.Errorf("expected empty-repo message, got:\n%s", buf.String())
	}
}

func TestTableMissingLanguageRendersDash(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	if err := f.Format(sampleReport(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found bool
	for _, line := range strings.Split(stripAnsi(buf.String()), "\n") {
		if strings.Contains(line, "spoon-knife") {
			found = true
			if !strings.Contains(line, "-") {
				t.Errorf("expected dash for missing language: %q", line)
			}
		}
	}
	if !found {
		t.Fatal("spoon-knife row not rendered")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	if err := f.Format(sampleReport(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Profile.Handle != "octocat" {
		t.Errorf("expected handle octocat, got %q", decoded.Profile.Handle)
	}
	if len(decoded.Repos) != 2 {
		t.Errorf("expected 2 repos, got %d", len(decoded.Repos))
	}
	if decoded.Stats.TotalCommits != 120 {
		t.Errorf("expected 120 commits, got %d", decoded.Stats.TotalCommits)
	}
}

func TestMarkdownFormat(t *testing.T) {
	var buf bytes.Buffer
	f := &MarkdownFormatter{}
	if err := f.Format(sampleReport(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# [The Octocat](https://github.com/octocat)",
		"> Building things",
		"| Commits | 120 |",
		"| Go | 1 |",
		"[hello-world](https://github.com/octocat/hello-world)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\n%s", want, out)
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "1234567890", 10, "1234567890"},
		{"truncated", "a very long repository name", 10, "a very ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, width := truncateToWidth(tt.input, tt.maxWidth)
			if got != tt.expected {
				t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.expected)
			}
			if width > tt.maxWidth {
				t.Errorf("reported width %d exceeds max %d", width, tt.maxWidth)
			}
		})
	}
}

func TestFormatValid(t *testing.T) {
	for _, f := range []Format{FormatTable, FormatJSON, FormatMarkdown} {
		if !f.Valid() {
			t.Errorf("expected %q to be valid", f)
		}
	}
	if Format("yaml").Valid() {
		t.Error("expected yaml to be invalid")
	}
}
