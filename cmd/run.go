package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nilay/quizcast/internal/app"
	"github.com/nilay/quizcast/internal/deck"
	"github.com/nilay/quizcast/internal/locale"
	"github.com/nilay/quizcast/internal/player"
	"github.com/nilay/quizcast/internal/progress"
	"github.com/nilay/quizcast/internal/store"
)

// trailingSeconds pads the simulated video past the last checkpoint so
// the final question isn't flush with the end of playback.
const trailingSeconds = 30

// runApp loads the deck, opens the store, builds dependencies, and
// launches the TUI. A zero duration defaults to 30 seconds past the
// last checkpoint.
func runApp(cmd *cobra.Command, deckPath string, duration float64) error {
	d, err := deck.Load(deckPath)
	if err != nil {
		return errors.New(locale.T("error.deck_load", err))
	}

	if duration <= 0 {
		duration = d.LastTime() + trailingSeconds
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Deck:     d,
		Progress: progress.NewStore(st),
		NewPlayer: func() player.Player {
			return player.NewSim(duration, time.Now)
		},
	}

	return app.Run(opts)
}
