package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vgn96186/Guru-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "guru",
	Short: "Spaced-repetition study planner for medical PG exam prep",
	Long:  "Guru — scheduling core for NEET-PG/INI-CET preparation: spaced reviews, mood-aware sessions, and exam-date feasibility planning.",
}

func Execute() error {
	// Optional; API keys usually live in the environment already.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GURU_DB env var)")

	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(sprintCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then GURU_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
