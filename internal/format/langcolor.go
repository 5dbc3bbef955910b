package format

// languageColors maps the most common repository languages to their
// conventional GitHub hex colors. Anything not listed falls back to
// DefaultLanguageColor.
var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"TypeScript": "#2b7489",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"C++":        "#f34b7d",
	"C":          "#555555",
	"PHP":        "#4F5D95",
	"Ruby":       "#701516",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Swift":      "#ffac45",
	"Kotlin":     "#F18E33",
	"Dart":       "#00B4AB",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Shell":      "#89e051",
	"Vue":        "#4FC08D",
	"React":      "#61DAFB",
}

// DefaultLanguageColor is used for languages without a known color.
const DefaultLanguageColor = "#6366f1"

// LanguageColor returns the hex color associated with a language name.
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return DefaultLanguageColor
}
