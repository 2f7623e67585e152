package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RdoLimaJunior/cosmus/internal/kvstore"
)

var rootCmd = &cobra.Command{
	Use:   "cosmus",
	Short: "Gamified science learning in your terminal",
	Long:  "Cosmus — explore a galaxy of science modules, run practice quizzes, and earn XP, ranks and badges, with an AI study companion on board.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the progress database (overrides COSMUS_DB env var)")
	rootCmd.PersistentFlags().String("store", "", "Storage engine: sqlite (default) or json")

	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then COSMUS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, kvstore.EnsureDir(p)
	}
	return kvstore.DefaultDBPath()
}

// openStore resolves the path and engine flags and opens the store.
func openStore(cmd *cobra.Command) (kvstore.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	engine, _ := cmd.Flags().GetString("store")
	return kvstore.NewByEngine(engine, path)
}
