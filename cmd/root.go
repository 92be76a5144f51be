package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nilay/quizcast/internal/locale"
	"github.com/nilay/quizcast/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizcast",
	Short: "Interactive video quizzes in the terminal",
	Long:  "Quizcast — plays a video deck with question checkpoints that pause playback until answered correctly.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		locale.SetLanguage(locale.Detect())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZCAST_DB env var)")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZCAST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
