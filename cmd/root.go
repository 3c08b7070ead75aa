package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mpetrov/caliber/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "caliber",
	Short: "Adaptive practice engine",
	Long: "Caliber estimates learner ability and per-concept mastery from graded\n" +
		"attempts, selects the next best practice item, and retunes a per-user\n" +
		"difficulty target.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CALIBER_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then CALIBER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
