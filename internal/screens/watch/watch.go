package watch

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nilay/quizcast/internal/deck"
	"github.com/nilay/quizcast/internal/locale"
	"github.com/nilay/quizcast/internal/player"
	"github.com/nilay/quizcast/internal/progress"
	reviewpkg "github.com/nilay/quizcast/internal/review"
	"github.com/nilay/quizcast/internal/router"
	"github.com/nilay/quizcast/internal/screen"
	reviewscreen "github.com/nilay/quizcast/internal/screens/review"
	"github.com/nilay/quizcast/internal/session"
	"github.com/nilay/quizcast/internal/ui/components"
	"github.com/nilay/quizcast/internal/ui/layout"
	"github.com/nilay/quizcast/internal/ui/theme"
)

// syncer is implemented by playback backends that need a periodic nudge
// to notice end-of-media (the simulated player does).
type syncer interface {
	Sync()
}

// stater is implemented by backends that expose their playback state for
// display purposes.
type stater interface {
	State() player.State
}

// WatchScreen runs playback with the question overlay. It owns the
// session controller and drives its timing monitor from a tick chain.
type WatchScreen struct {
	deckData *deck.Deck
	backend  player.Player
	ctrl     *session.Controller

	choice components.Choice

	// seeking is true while the jump-to-time input is open.
	seeking bool
	seek    components.SeekInput

	// feedback is a locale key shown under the question or playbar,
	// cleared when the situation changes.
	feedback string
}

var _ screen.Screen = (*WatchScreen)(nil)
var _ screen.KeyHintProvider = (*WatchScreen)(nil)
var _ screen.StatusProvider = (*WatchScreen)(nil)

// New creates a watch screen over the given deck, playback backend, and
// progress store.
func New(d *deck.Deck, backend player.Player, prog *progress.Store) *WatchScreen {
	return &WatchScreen{
		deckData: d,
		backend:  backend,
		ctrl:     session.New(d, backend, prog),
	}
}

func (s *WatchScreen) Init() tea.Cmd {
	s.ctrl.Start()
	if s.ctrl.State().Phase == session.PhaseReviewing {
		// Every checkpoint was already resolved in a prior run.
		return s.reviewCmd()
	}
	return pollTickCmd()
}

func (s *WatchScreen) Title() string {
	return s.deckData.Title
}

// Status returns the header playback clock.
func (s *WatchScreen) Status() string {
	return layout.FormatClock(s.backend.CurrentTime()) + " / " + layout.FormatClock(s.backend.Duration())
}

func (s *WatchScreen) KeyHints() []layout.KeyHint {
	if s.ctrl.State().QuestionActive() {
		return []layout.KeyHint{
			{Key: "1-9/↑↓", Description: "Select"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.seeking {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Jump"},
			{Key: "G", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Play/Pause"},
		{Key: "G", Description: "Jump to time"},
		{Key: "R", Description: "Restart"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *WatchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pollTickMsg:
		return s.handlePollTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// handlePollTick samples the playhead: the controller checks the next
// checkpoint, and the chain reschedules while the screen is mounted.
func (s *WatchScreen) handlePollTick() (screen.Screen, tea.Cmd) {
	if sy, ok := s.backend.(syncer); ok {
		sy.Sync()
	}

	if s.ctrl.PollTick() {
		s.choice = components.NewChoice(s.ctrl.State().DisplayedAnswers())
		s.feedback = ""
	}

	if s.ctrl.State().Phase == session.PhaseReviewing {
		return s, s.reviewCmd()
	}

	return s, pollTickCmd()
}

func (s *WatchScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.ctrl.State().QuestionActive() {
		switch key {
		case "enter":
			return s.submit()
		default:
			var cmd tea.Cmd
			s.choice, cmd = s.choice.Update(msg)
			// Number keys select and submit in one stroke.
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' && s.choice.Selected >= 0 {
				return s.submit()
			}
			return s, cmd
		}
	}

	if s.seeking {
		switch key {
		case "enter":
			if secs, ok := s.seek.Seconds(); ok {
				s.backend.SeekTo(secs, true)
			}
			s.seeking = false
		case "g", "G":
			s.seeking = false
		default:
			var cmd tea.Cmd
			s.seek, cmd = s.seek.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch key {
	case "space", " ":
		s.togglePlayback()
	case "g", "G":
		s.seeking = true
		s.seek = components.NewSeekInput(locale.T("watch.seek_placeholder"))
		return s, s.seek.Init()
	case "r", "R":
		s.ctrl.Reset()
		s.feedback = ""
		s.choice = components.Choice{}
	}

	return s, nil
}

func (s *WatchScreen) togglePlayback() {
	st, ok := s.backend.(stater)
	if !ok {
		return
	}
	switch st.State() {
	case player.StatePlaying:
		s.backend.Pause()
	case player.StatePaused, player.StateCued:
		s.backend.Play()
	}
}

// submit scores the current selection through the controller.
func (s *WatchScreen) submit() (screen.Screen, tea.Cmd) {
	res := s.ctrl.SubmitAnswer(s.choice.Selected)

	switch res.Status {
	case session.SubmitNoSelection:
		s.feedback = "watch.must_select"

	case session.SubmitIncorrect:
		s.feedback = "watch.feedback.incorrect"

	case session.SubmitAdvanced:
		s.feedback = "watch.feedback.correct"
		s.choice = components.Choice{}

	case session.SubmitCompleted:
		return s, s.reviewCmd()
	}

	return s, nil
}

// reviewCmd hands the finished session off to the review screen,
// replacing this screen so Esc from review returns home.
func (s *WatchScreen) reviewCmd() tea.Cmd {
	st := s.ctrl.State()
	summary := reviewpkg.Build(st.Records, s.deckData.Len())
	scr := reviewscreen.New(summary, st.AttemptID, st.EndedEarly)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: scr}
	}
}

// feedbackLine resolves the pending feedback key, plus the persistence
// warning when the last save failed.
func (s *WatchScreen) feedbackLine() string {
	line := ""
	if s.feedback != "" {
		style := theme.Incorrect
		if s.feedback == "watch.feedback.correct" {
			style = theme.Correct
		}
		line = style.Render(locale.T(s.feedback))
	}
	if s.ctrl.PersistErr() != nil {
		if line != "" {
			line += "  ·  "
		}
		line += theme.Hint.Render(locale.T("watch.persist_warn"))
	}
	return line
}

// pollTickCmd schedules the next monitor sample.
func pollTickCmd() tea.Cmd {
	return tea.Tick(session.PollInterval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}
