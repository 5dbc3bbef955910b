package output

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/hal/devprofile/internal/format"
	"github.com/hal/devprofile/internal/model"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct{}

// Format outputs the report as a Markdown document
func (f *MarkdownFormatter) Format(report Report, w io.Writer) error {
	p := report.Profile

	fmt.Fprintf(w, "# [%s](%s)\n\n", p.DisplayName(), p.HTMLURL)
	if p.Bio != "" {
		fmt.Fprintf(w, "> %s\n\n", p.Bio)
	}

	fmt.Fprintf(w, "- **Handle:** @%s\n", p.Handle)
	if p.Company != "" {
		fmt.Fprintf(w, "- **Company:** %s\n", p.Company)
	}
	if p.Location != "" {
		fmt.Fprintf(w, "- **Location:** %s\n", p.Location)
	}
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(w, "- **Joined:** %s\n", p.CreatedAt.Format("January 2006"))
	}
	fmt.Fprintf(w, "- **Public repos:** %d\n", p.PublicRepos)
	fmt.Fprintf(w, "- **Followers:** %d / **Following:** %d\n\n", p.Followers, p.Following)

	f.formatStats(report.Stats, w)
	f.formatRepos(report.Repos, w)
	return nil
}

func (f *MarkdownFormatter) formatStats(s model.DerivedStats, w io.Writer) {
	if s.StatsRepos > 0 {
		fmt.Fprintf(w, "## Activity\n\n")
		fmt.Fprintf(w, "Across the %d most recently updated repositories:\n\n", s.StatsRepos)
		fmt.Fprintln(w, "| Metric | Count |")
		fmt.Fprintln(w, "|--------|-------|")
		fmt.Fprintf(w, "| Commits | %d |\n", s.TotalCommits)
		fmt.Fprintf(w, "| Pull requests | %d |\n", s.TotalPRs)
		fmt.Fprintf(w, "| Open pull requests | %d |\n\n", s.OpenPRs)
	}

	if len(s.Languages) == 0 {
		return
	}

	names := make([]string, 0, len(s.Languages))
	for name := range s.Languages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if s.Languages[names[i]] != s.Languages[names[j]] {
			return s.Languages[names[i]] > s.Languages[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Fprintln(w, "## Languages")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Language | Repos |")
	fmt.Fprintln(w, "|----------|-------|")
	for _, name := range names {
		fmt.Fprintf(w, "| %s | %d |\n", name, s.Languages[name])
	}
	fmt.Fprintln(w)
}

func (f *MarkdownFormatter) formatRepos(repos []model.Repository, w io.Writer) {
	fmt.Fprintf(w, "## Repositories (%d)\n\n", len(repos))
	if len(repos) == 0 {
		fmt.Fprintln(w, "No repositories found.")
		return
	}

	fmt.Fprintln(w, "| Repository | Language | Stars | Forks | Updated |")
	fmt.Fprintln(w, "|------------|----------|-------|-------|---------|")
	for _, r := range repos {
		lang := r.Language
		if lang == "" {
			lang = "-"
		}
		updated := "-"
		if !r.UpdatedAt.IsZero() {
			updated = format.Age(time.Since(r.UpdatedAt))
		}
		fmt.Fprintf(w, "| [%s](%s) | %s | %d | %d | %s |\n",
			r.Name, r.HTMLURL, lang, r.Stars, r.Forks, updated)
	}
	fmt.Fprintln(w)
}
