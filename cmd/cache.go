package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hal/devprofile/internal/cache"
	"github.com/hal/devprofile/internal/constants"
)

// NewCmdCache creates the cache command with subcommands.
func NewCmdCache() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the API response cache",
	}

	cmd.AddCommand(newCmdCacheClear())
	cmd.AddCommand(newCmdCacheStats())

	return cmd
}

// newCmdCacheClear creates the cache clear subcommand.
func newCmdCacheClear() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the API response cache",
		RunE:  runCacheClear,
	}
}

// newCmdCacheStats creates the cache stats subcommand.
func newCmdCacheStats() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		RunE:  runCacheStats,
	}
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	c, err := cache.NewCache()
	if err != nil {
		return fmt.Errorf("failed to access cache: %w", err)
	}

	if err := c.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	fmt.Println("Cache cleared.")
	return nil
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	c, err := cache.NewCache()
	if err != nil {
		return fmt.Errorf("failed to access cache: %w", err)
	}

	stats, err := c.Stats()
	if err != nil {
		return fmt.Errorf("failed to get cache stats: %w", err)
	}

	fmt.Printf("Cache statistics:\n")
	fmt.Printf("  Profiles (TTL: %s):\n", constants.ProfileCacheTTL)
	fmt.Printf("    Total: %d\n", stats.ProfileTotal)
	fmt.Printf("    Valid: %d\n", stats.ProfileValid)
	fmt.Printf("    Expired: %d\n", stats.ProfileTotal-stats.ProfileValid)
	fmt.Printf("  Repository lists (TTL: %s):\n", constants.RepoListCacheTTL)
	fmt.Printf("    Total: %d\n", stats.RepoListTotal)
	fmt.Printf("    Valid: %d\n", stats.RepoListValid)
	fmt.Printf("    Expired: %d\n", stats.RepoListTotal-stats.RepoListValid)
	return nil
}
