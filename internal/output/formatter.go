package output

import (
	"io"

	"github.com/hal/devprofile/internal/model"
)

// Format represents the output format
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Valid reports whether the format is one we know how to render.
func (f Format) Valid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatMarkdown:
		return true
	}
	return false
}

// Report is what formatters render: the fetched profile together with
// the repositories that survived filtering and the derived stats.
type Report struct {
	Profile model.Profile      `json:"profile"`
	Repos   []model.Repository `json:"repos"`
	Stats   model.DerivedStats `json:"stats"`
}

// Formatter defines the interface for output formatters
type Formatter interface {
	Format(report Report, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}
