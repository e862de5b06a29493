package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/sweep/internal/logging"
)

var (
	// Global flags
	debug bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Reclaim disk space with cleanup profiles",
	Long: `Sweep - profile-driven disk cleanup.

Deletes the files, directories, and pattern-matched path sets described
by a JSON cleanup profile, reclaiming space left behind by applications
that do not clean up after themselves.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(debug)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")

	// Register all subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
