package cmd

import (
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <deck.json>",
	Short: "Play a deck with its question checkpoints",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetFloat64("duration")
		return runApp(cmd, args[0], duration)
	},
}

func init() {
	watchCmd.Flags().Float64("duration", 0, "Video length in seconds (default: 30s past the last checkpoint)")
}
