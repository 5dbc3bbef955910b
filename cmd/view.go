package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hal/devprofile/config"
	"github.com/hal/devprofile/internal/cache"
	"github.com/hal/devprofile/internal/history"
	"github.com/hal/devprofile/internal/log"
	"github.com/hal/devprofile/internal/model"
	"github.com/hal/devprofile/internal/output"
	"github.com/hal/devprofile/internal/prefs"
	"github.com/hal/devprofile/internal/search"
	"github.com/hal/devprofile/internal/tui"

	"github.com/hal/devprofile/internal/ghclient"
)

// addViewFlags adds the profile-view flags to a command.
func addViewFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json, markdown")
	cmd.Flags().StringVarP(&opts.Language, "language", "l", "", "Only show repositories with this primary language")
	cmd.Flags().StringVar(&opts.SortBy, "sort", "", "Sort repositories by: stars, forks, updated")
	cmd.Flags().StringVar(&opts.Order, "order", "", "Sort direction: desc, asc")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "Maximum repositories to show")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "Repositories fetched per page (1-100)")
	cmd.Flags().IntVar(&opts.StatsRepos, "stats-repos", 0, "Repositories inspected for commit/PR activity (max 10)")
	cmd.Flags().BoolVar(&opts.NoStats, "no-stats", false, "Skip the per-repository activity pass")
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "Bypass the response cache")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
	cmd.Flags().Var(newTUIFlag(opts), "tui", "Use interactive TUI: true, false, or auto")
	cmd.Flags().Lookup("tui").NoOptDefVal = "true"
}

// runView is the main entry point: look up a handle and render the profile.
func runView(cmd *cobra.Command, args []string, opts *Options) error {
	useTUI := shouldUseTUI(opts)
	if useTUI {
		// Logs would corrupt the TUI frame
		log.Initialize(opts.Verbosity, io.Discard)
	} else {
		log.Initialize(opts.Verbosity, os.Stderr)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pageSize := cfg.PageSize
	if opts.PageSize > 0 {
		pageSize = opts.PageSize
	}
	limit := cfg.DisplayLimit
	if opts.Limit > 0 {
		limit = opts.Limit
	}

	statsRepos := cfg.GetStatsSettings().Repos
	if opts.StatsRepos > 0 {
		statsRepos = opts.StatsRepos
	}
	if opts.NoStats {
		statsRepos = 0
	}

	formatName := cfg.DefaultFormat
	if opts.Format != "" {
		formatName = opts.Format
	}
	outFormat := output.Format(formatName)
	if !outFormat.Valid() {
		return fmt.Errorf("invalid format %q: use table, json, or markdown", formatName)
	}

	spec, err := filterSpecFromOptions(opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client := ghclient.NewClient(ctx, cfg.GetToken())

	engineOpts := []search.Option{
		search.WithPageSize(pageSize),
		search.WithStatsRepos(statsRepos),
	}
	if !opts.NoCache {
		if c, err := cache.NewCache(); err == nil {
			engineOpts = append(engineOpts, search.WithCache(c))
		} else {
			log.Warn("response cache unavailable", "error", err)
		}
	}
	engine := search.NewEngine(client, engineOpts...)

	hist, err := history.NewStore()
	if err != nil {
		log.Warn("search history unavailable", "error", err)
	}
	prefStore, err := prefs.NewStore()
	if err != nil {
		log.Warn("preferences unavailable", "error", err)
	}

	handle := ""
	if len(args) > 0 {
		handle = args[0]
	}

	if useTUI {
		tuiOpts := []tui.ModelOption{tui.WithDisplayLimit(limit)}
		if handle != "" {
			tuiOpts = append(tuiOpts, tui.WithInitialHandle(handle))
		}
		return tui.Run(engine, hist, prefStore, tuiOpts...)
	}

	if handle == "" && prefStore != nil {
		handle = prefStore.LastHandle()
		if handle != "" {
			log.Info("no handle given, using last searched", "handle", handle)
		}
	}
	if handle == "" {
		return fmt.Errorf("a GitHub handle is required (usage: devprofile <handle>)")
	}

	result, err := engine.Search(ctx, handle)
	if err != nil {
		return err
	}

	if hist != nil {
		if err := hist.Record(handle); err != nil {
			log.Warn("failed to record history", "error", err)
		}
	}
	if prefStore != nil {
		if err := prefStore.SetLastHandle(handle); err != nil {
			log.Warn("failed to save last handle", "error", err)
		}
	}

	report := output.Report{
		Profile: result.Profile,
		Repos:   search.Apply(result.Repos, spec, limit),
		Stats:   result.Stats,
	}
	return output.NewFormatter(outFormat).Format(report, os.Stdout)
}

// filterSpecFromOptions validates the sort flags and builds the filter spec.
func filterSpecFromOptions(opts *Options) (model.FilterSpec, error) {
	spec := model.FilterSpec{Language: opts.Language}

	if opts.SortBy != "" {
		key := model.SortKey(opts.SortBy)
		if !key.Valid() {
			return spec, fmt.Errorf("invalid sort key %q: use stars, forks, or updated", opts.SortBy)
		}
		spec.SortBy = key
	}

	switch opts.Order {
	case "", string(model.OrderDesc):
		spec.Order = model.OrderDesc
	case string(model.OrderAsc):
		spec.Order = model.OrderAsc
	default:
		return spec, fmt.Errorf("invalid sort order %q: use desc or asc", opts.Order)
	}

	return spec.Normalize(), nil
}
