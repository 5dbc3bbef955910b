package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/hal/devprofile/internal/constants"
	"github.com/hal/devprofile/internal/format"
	"github.com/hal/devprofile/internal/model"
	"github.com/hal/devprofile/internal/search"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	switch m.mode {
	case modeInput:
		m.renderInput(&b)
	case modeLoading:
		m.renderLoading(&b)
	case modeResults:
		m.renderResults(&b)
	case modeError:
		m.renderError(&b)
	case modeHistory:
		m.renderHistory(&b)
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString("  " + m.styles.status.Render(m.statusMsg))
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) renderInput(b *strings.Builder) {
	b.WriteString("  " + m.styles.prompt.Render("Search GitHub profile") + "\n\n")
	b.WriteString("  " + m.input.View() + "\n")

	help := "enter search"
	if len(m.recent) > 0 {
		help += " · tab history"
	}
	if m.result != nil {
		help += " · esc back"
	}
	b.WriteString(m.styles.footer.Render("  " + help + " · ctrl+t theme · ctrl+c quit"))
}

func (m Model) renderLoading(b *strings.Builder) {
	b.WriteString(fmt.Sprintf("  %s Looking up %s...\n",
		m.styles.spinner.Render(m.spinner.View()),
		m.styles.handle.Render("@"+m.handle)))
	b.WriteString(m.styles.footer.Render("  / new search · ctrl+c quit"))
}

func (m Model) renderError(b *strings.Builder) {
	b.WriteString("  " + m.styles.errText.Render(errorMessage(m.err)) + "\n")
	b.WriteString(m.styles.footer.Render("  enter new search · q quit"))
}

func (m Model) renderResults(b *strings.Builder) {
	if m.result == nil {
		return
	}
	m.renderProfile(b)
	m.renderStats(b)
	m.renderPinned(b)
	m.renderFilterBar(b)
	m.renderRepos(b)
	b.WriteString(m.styles.footer.Render("  j/k move · enter open · l language · s sort · o order · / search · h history · ctrl+t theme · q quit"))
}

func (m Model) renderProfile(b *strings.Builder) {
	p := m.result.Profile

	b.WriteString(fmt.Sprintf("  %s %s\n",
		m.styles.title.Render(p.DisplayName()),
		m.styles.handle.Render("@"+p.Handle)))
	if p.Bio != "" {
		b.WriteString("  " + m.styles.bio.Render(p.Bio) + "\n")
	}

	var meta []string
	if p.Company != "" {
		meta = append(meta, p.Company)
	}
	if p.Location != "" {
		meta = append(meta, p.Location)
	}
	if !p.CreatedAt.IsZero() {
		meta = append(meta, "joined "+p.CreatedAt.Format("Jan 2006"))
	}
	if len(meta) > 0 {
		b.WriteString("  " + m.styles.meta.Render(strings.Join(meta, " · ")) + "\n")
	}

	b.WriteString(fmt.Sprintf("  %s %s  %s %s  %s %s\n\n",
		m.styles.statValue.Render(format.Count(p.PublicRepos)),
		m.styles.statLabel.Render("repos"),
		m.styles.statValue.Render(format.Count(p.Followers)),
		m.styles.statLabel.Render("followers"),
		m.styles.statValue.Render(format.Count(p.Following)),
		m.styles.statLabel.Render("following")))
}

func (m Model) renderStats(b *strings.Builder) {
	s := m.result.Stats
	if s.StatsRepos > 0 {
		b.WriteString(fmt.Sprintf("  %s %s commits · %s PRs (%s open) %s\n\n",
			m.styles.statLabel.Render("Activity:"),
			m.styles.statValue.Render(fmt.Sprintf("%d", s.TotalCommits)),
			m.styles.statValue.Render(fmt.Sprintf("%d", s.TotalPRs)),
			m.styles.statValue.Render(fmt.Sprintf("%d", s.OpenPRs)),
			m.styles.meta.Render(fmt.Sprintf("(last %d repos)", s.StatsRepos))))
	}
}

func (m Model) renderPinned(b *strings.Builder) {
	pinned := search.Pinned(m.result.Repos, constants.PinnedRepos)
	if len(pinned) == 0 {
		return
	}
	b.WriteString("  " + m.styles.sectionTitle.Render("Popular") + "\n")
	for _, r := range pinned {
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			m.styles.pin.Render("★"),
			m.styles.repoName.Render(r.Name),
			m.styles.meta.Render(format.Count(r.Stars)),
			languageDot(r.Language)))
	}
	b.WriteString("\n")
}

func (m Model) renderFilterBar(b *strings.Builder) {
	lang := "all"
	if m.filter.Language != "" {
		lang = m.filter.Language
	}

	b.WriteString(fmt.Sprintf("  %s %s  %s %s %s\n\n",
		m.styles.filterBar.Render("language:"),
		m.styles.filterActive.Render(lang),
		m.styles.filterBar.Render("sort:"),
		m.styles.filterActive.Render(string(m.filter.SortBy)),
		m.styles.filterActive.Render(string(m.filter.Order))))
}

func (m Model) renderRepos(b *strings.Builder) {
	if len(m.visible) == 0 {
		b.WriteString("  " + m.styles.meta.Render("No repositories match.") + "\n")
		return
	}

	start, end := m.scrollWindow()
	for i := start; i < end; i++ {
		m.renderRepoRow(b, m.visible[i], i == m.cursor)
	}

	if len(m.visible) > end-start {
		b.WriteString("  " + m.styles.meta.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(m.visible))) + "\n")
	}
}

func (m Model) renderRepoRow(b *strings.Builder, r model.Repository, selected bool) {
	name := truncate(r.Name, 34)
	age := ""
	if !r.UpdatedAt.IsZero() {
		age = format.Age(time.Since(r.UpdatedAt))
	}

	line := fmt.Sprintf("%s %s ★%s %s",
		languageDot(r.Language),
		padTo(name, 34),
		padTo(format.Count(r.Stars), 6),
		padTo(age, 4))

	cursor := "  "
	if selected {
		cursor = m.styles.selected.Render("›") + " "
		line = m.styles.selected.Render(line)
	} else {
		line = m.styles.repoName.Render(line)
	}
	b.WriteString(cursor + line + "\n")

	if r.Description != "" {
		b.WriteString("     " + m.styles.repoDesc.Render(truncate(r.Description, 70)) + "\n")
	}
}

// scrollWindow returns the visible slice bounds so the cursor stays on
// screen for long repository lists.
func (m Model) scrollWindow() (int, int) {
	// Each repo takes up to two lines; leave room for the header blocks.
	rows := (m.windowHeight - 16) / 2
	if rows < 5 {
		rows = 5
	}
	if len(m.visible) <= rows {
		return 0, len(m.visible)
	}

	start := m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	end := start + rows
	if end > len(m.visible) {
		end = len(m.visible)
		start = end - rows
	}
	return start, end
}

func (m Model) renderHistory(b *strings.Builder) {
	b.WriteString("  " + m.styles.sectionTitle.Render("Recent searches") + "\n\n")
	for i, h := range m.recent {
		line := fmt.Sprintf("%d. @%s", i+1, h)
		if i == m.historyCursor {
			b.WriteString("  " + m.styles.selected.Render("› "+line) + "\n")
		} else {
			b.WriteString("    " + m.styles.repoName.Render(line) + "\n")
		}
	}
	b.WriteString(m.styles.footer.Render("  enter search · 1-5 quick pick · esc back"))
}

func truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

func padTo(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
