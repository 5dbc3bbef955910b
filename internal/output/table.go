package output

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/hal/devprofile/internal/format"
	"github.com/hal/devprofile/internal/model"
)

// ansiRegex matches ANSI escape sequences
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// TableFormatter formats output as a terminal table
type TableFormatter struct{}

// hyperlink creates a clickable terminal hyperlink using OSC 8
// Format: \033]8;;URL\033\\TEXT\033]8;;\033\\
func hyperlink(text, url string) string {
	// Only use hyperlinks if stdout is a terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// displayWidth returns the visible width of a string in terminal columns
// accounting for wide characters and stripping ANSI escape sequences
func displayWidth(s string) int {
	return runewidth.StringWidth(stripAnsi(s))
}

// truncateToWidth truncates a string to fit within maxWidth display columns
func truncateToWidth(s string, maxWidth int) (string, int) {
	plain := stripAnsi(s)
	width := runewidth.StringWidth(plain)
	if width <= maxWidth {
		return s, width
	}

	cutWidth := 0
	cutIndex := 0
	for i, r := range plain {
		rw := runewidth.RuneWidth(r)
		if cutWidth+rw > maxWidth-3 { // Leave room for "..."
			cutIndex = i
			break
		}
		cutWidth += rw
	}
	if cutIndex > 0 && cutIndex < len(plain) {
		return plain[:cutIndex] + "...", maxWidth
	}
	return plain[:maxWidth-3] + "...", maxWidth
}

// padRight pads a string with spaces to reach the target visible width
func padRight(s string, visibleWidth, targetWidth int) string {
	if visibleWidth >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-visibleWidth)
}

// Format renders the profile header, derived stats, and a repository table.
func (f *TableFormatter) Format(report Report, w io.Writer) error {
	f.formatProfile(report.Profile, w)
	f.formatStats(report.Stats, w)
	f.formatRepos(report.Repos, w)
	return nil
}

func (f *TableFormatter) formatProfile(p model.Profile, w io.Writer) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	fmt.Fprintf(w, "%s (@%s)\n", bold.Sprint(p.DisplayName()), hyperlink(p.Handle, p.HTMLURL))
	if p.Bio != "" {
		fmt.Fprintln(w, p.Bio)
	}

	var meta []string
	if p.Company != "" {
		meta = append(meta, p.Company)
	}
	if p.Location != "" {
		meta = append(meta, p.Location)
	}
	if p.Blog != "" {
		meta = append(meta, p.Blog)
	}
	if !p.CreatedAt.IsZero() {
		meta = append(meta, "joined "+p.CreatedAt.Format("Jan 2006"))
	}
	if len(meta) > 0 {
		fmt.Fprintln(w, faint.Sprint(strings.Join(meta, " · ")))
	}

	fmt.Fprintf(w, "%s repos · %s followers · %s following\n\n",
		format.Count(p.PublicRepos),
		format.Count(p.Followers),
		format.Count(p.Following))
}

func (f *TableFormatter) formatStats(s model.DerivedStats, w io.Writer) {
	if s.StatsRepos > 0 {
		fmt.Fprintf(w, "Activity (last %d repos): %d commits · %d PRs (%d open)\n",
			s.StatsRepos, s.TotalCommits, s.TotalPRs, s.OpenPRs)
	}
	if len(s.Languages) == 0 {
		fmt.Fprintln(w)
		return
	}

	// Languages sorted by repo count, ties alphabetical.
	type langCount struct {
		name  string
		count int
	}
	langs := make([]langCount, 0, len(s.Languages))
	for name, count := range s.Languages {
		langs = append(langs, langCount{name, count})
	}
	sort.Slice(langs, func(i, j int) bool {
		if langs[i].count != langs[j].count {
			return langs[i].count > langs[j].count
		}
		return langs[i].name < langs[j].name
	})

	parts := make([]string, len(langs))
	for i, lc := range langs {
		parts[i] = fmt.Sprintf("%s (%d)", lc.name, lc.count)
	}
	fmt.Fprintf(w, "Languages: %s\n\n", strings.Join(parts, ", "))
}

func (f *TableFormatter) formatRepos(repos []model.Repository, w io.Writer) {
	if len(repos) == 0 {
		fmt.Fprintln(w, "No repositories found.")
		return
	}

	// Column widths
	const (
		colName     = 30
		colLanguage = 12
		colStars    = 6
		colForks    = 6
		colUpdated  = 7
	)

	bold := color.New(color.Bold)
	fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s\n",
		padRight(bold.Sprint("Repository"), displayWidth("Repository"), colName),
		padRight(bold.Sprint("Language"), displayWidth("Language"), colLanguage),
		padRight(bold.Sprint("Stars"), displayWidth("Stars"), colStars),
		padRight(bold.Sprint("Forks"), displayWidth("Forks"), colForks),
		padRight(bold.Sprint("Updated"), displayWidth("Updated"), colUpdated),
		bold.Sprint("Description"))
	fmt.Fprintln(w, strings.Repeat("-", colName+colLanguage+colStars+colForks+colUpdated+40))

	for _, r := range repos {
		name, nameWidth := truncateToWidth(hyperlink(r.Name, r.HTMLURL), colName)
		lang := r.Language
		if lang == "" {
			lang = "-"
		}
		lang, langWidth := truncateToWidth(lang, colLanguage)

		updated := "-"
		if !r.UpdatedAt.IsZero() {
			updated = format.Age(time.Since(r.UpdatedAt))
		}

		desc, _ := truncateToWidth(r.Description, 60)

		fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s\n",
			padRight(name, nameWidth, colName),
			padRight(lang, langWidth, colLanguage),
			padRight(format.Count(r.Stars), displayWidth(format.Count(r.Stars)), colStars),
			padRight(format.Count(r.Forks), displayWidth(format.Count(r.Forks)), colForks),
			padRight(updated, displayWidth(updated), colUpdated),
			desc)
	}
}
