package cmd

// Options holds the shared command-line options for the devprofile CLI.
type Options struct {
	Format     string
	Language   string
	SortBy     string
	Order      string
	Limit      int
	PageSize   int
	StatsRepos int
	NoStats    bool
	NoCache    bool
	Verbosity  int
	TUI        *bool // nil = auto-detect, true = force TUI, false = disable TUI
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		SortBy: "stars",
		Order:  "desc",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFormat sets the output format (table, json, markdown).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithLanguage restricts the repository list to one language.
func WithLanguage(language string) Option {
	return func(o *Options) {
		o.Language = language
	}
}

// WithLimit caps how many repositories are shown.
func WithLimit(limit int) Option {
	return func(o *Options) {
		o.Limit = limit
	}
}

// WithStatsRepos sets how many repositories the activity pass inspects.
func WithStatsRepos(n int) Option {
	return func(o *Options) {
		o.StatsRepos = n
	}
}
