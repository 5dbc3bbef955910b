package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hal/devprofile/internal/model"
	"github.com/hal/devprofile/internal/prefs"
)

// NewCmdTheme creates the theme command with subcommands.
func NewCmdTheme() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the TUI color theme",
		RunE:  runThemeShow,
	}

	cmd.AddCommand(newCmdThemeSet())

	return cmd
}

// newCmdThemeSet creates the theme set subcommand.
func newCmdThemeSet() *cobra.Command {
	return &cobra.Command{
		Use:   "set <light|dark>",
		Short: "Set the TUI color theme",
		Args:  cobra.ExactArgs(1),
		RunE:  runThemeSet,
	}
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	store, err := prefs.NewStore()
	if err != nil {
		return fmt.Errorf("failed to access preferences: %w", err)
	}

	fmt.Println(store.Theme())
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	theme := model.Theme(args[0])
	if !theme.Valid() {
		return fmt.Errorf("invalid theme %q: use light or dark", args[0])
	}

	store, err := prefs.NewStore()
	if err != nil {
		return fmt.Errorf("failed to access preferences: %w", err)
	}

	if err := store.SetTheme(theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	fmt.Printf("Theme set to %s.\n", theme)
	return nil
}
