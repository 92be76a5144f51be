package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nilay/quizcast/internal/progress"
	"github.com/nilay/quizcast/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved checkpoint progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := progress.NewStore(st).Clear(); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}
		fmt.Println("Saved progress cleared")
		return nil
	},
}
