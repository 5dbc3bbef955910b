package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "devprofile [handle]",
		Short: "GitHub developer profile viewer",
		Long: `A CLI tool that looks up a GitHub user and shows their profile,
repositories, language breakdown, and recent activity.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	addViewFlags(rootCmd, opts)

	// Register subcommands
	rootCmd.AddCommand(NewCmdHistory())
	rootCmd.AddCommand(NewCmdTheme())
	rootCmd.AddCommand(NewCmdCache())
	rootCmd.AddCommand(NewCmdRateLimit())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}
