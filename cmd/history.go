package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hal/devprofile/internal/history"
)

// NewCmdHistory creates the history command with subcommands.
func NewCmdHistory() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent profile searches",
		RunE:  runHistoryList,
	}

	cmd.AddCommand(newCmdHistoryClear())

	return cmd
}

// newCmdHistoryClear creates the history clear subcommand.
func newCmdHistoryClear() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the search history",
		RunE:  runHistoryClear,
	}
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore()
	if err != nil {
		return fmt.Errorf("failed to access history: %w", err)
	}

	handles := store.Load()
	if len(handles) == 0 {
		fmt.Println("No recent searches.")
		return nil
	}

	for i, h := range handles {
		fmt.Printf("%d. %s\n", i+1, h)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore()
	if err != nil {
		return fmt.Errorf("failed to access history: %w", err)
	}

	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	fmt.Println("History cleared.")
	return nil
}
