package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hal/devprofile/internal/format"
	"github.com/hal/devprofile/internal/model"
)

// styleSet holds the lipgloss styles for one theme.
type styleSet struct {
	title     lipgloss.Style
	handle    lipgloss.Style
	bio       lipgloss.Style
	meta      lipgloss.Style
	statLabel lipgloss.Style
	statValue lipgloss.Style

	sectionTitle lipgloss.Style
	repoName     lipgloss.Style
	repoDesc     lipgloss.Style
	selected     lipgloss.Style
	pin          lipgloss.Style

	filterBar    lipgloss.Style
	filterActive lipgloss.Style

	spinner lipgloss.Style
	errText lipgloss.Style
	status  lipgloss.Style
	footer  lipgloss.Style
	prompt  lipgloss.Style
}

// newStyles builds the style set for a theme. The dark palette leans on
// bright ANSI-256 colors; the light palette uses darker foregrounds that
// stay readable on white terminals.
func newStyles(theme model.Theme) styleSet {
	if theme == model.ThemeLight {
		return styleSet{
			title:     lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Bold(true),
			handle:    lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
			bio:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			statLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			statValue: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Bold(true),

			sectionTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Bold(true),
			repoName:     lipgloss.NewStyle().Foreground(lipgloss.Color("19")),
			repoDesc:     lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("254")).Bold(true),
			pin:          lipgloss.NewStyle().Foreground(lipgloss.Color("130")),

			filterBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			filterActive: lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Bold(true),

			spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
			errText: lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
			status:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			footer:  lipgloss.NewStyle().Foreground(lipgloss.Color("248")).MarginTop(1),
			prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Bold(true),
		}
	}

	return styleSet{
		title:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		handle:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		bio:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		statLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		statValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),

		sectionTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		repoName:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		repoDesc:     lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("237")).Bold(true),
		pin:          lipgloss.NewStyle().Foreground(lipgloss.Color("220")),

		filterBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		filterActive: lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),

		spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		footer:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
		prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
	}
}

// languageDot renders the colored bullet shown next to a repository language.
func languageDot(language string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(format.LanguageColor(language))).
		Render("●")
}
