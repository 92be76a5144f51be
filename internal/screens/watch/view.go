package watch

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nilay/quizcast/internal/locale"
	"github.com/nilay/quizcast/internal/player"
	"github.com/nilay/quizcast/internal/ui/components"
	"github.com/nilay/quizcast/internal/ui/layout"
	"github.com/nilay/quizcast/internal/ui/theme"
)

func (s *WatchScreen) View(width, height int) string {
	if s.ctrl.State().QuestionActive() {
		return s.questionView(width, height)
	}
	return s.playbackView(width, height)
}

func (s *WatchScreen) questionView(width, height int) string {
	st := s.ctrl.State()

	var b strings.Builder

	progressLn := locale.T("watch.question.progress", st.Index+1, s.deckData.Len())
	b.WriteString(theme.Hint.Render(progressLn))
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Render(st.Active.Question))
	b.WriteString("\n\n")

	b.WriteString(s.choice.View())
	b.WriteString("\n")

	if s.choice.Selected < 0 {
		b.WriteString(theme.Hint.Render(locale.T("watch.select_prompt")))
		b.WriteString("\n")
	}

	if line := s.feedbackLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *WatchScreen) playbackView(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(s.deckData.Title))
	b.WriteString("\n\n")

	barWidth := width - 12
	if barWidth > 64 {
		barWidth = 64
	}
	markers := make([]float64, 0, s.deckData.Len())
	for i := 0; i < s.deckData.Len(); i++ {
		markers = append(markers, s.deckData.At(i).Time)
	}
	bar := components.NewPlaybar(s.backend.CurrentTime(), s.backend.Duration(), markers, barWidth)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	clock := layout.FormatClock(s.backend.CurrentTime()) + " / " + layout.FormatClock(s.backend.Duration())
	b.WriteString(theme.Hint.Render(clock))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(locale.T(s.stateKey())))
	b.WriteString("\n")

	if s.seeking {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(locale.T("watch.seek_prompt")))
		b.WriteString(" ")
		b.WriteString(s.seek.View())
		b.WriteString("\n")
	}

	if line := s.feedbackLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// stateKey maps the backend playback state to its display string.
func (s *WatchScreen) stateKey() string {
	st, ok := s.backend.(stater)
	if !ok {
		return "watch.playing"
	}
	switch st.State() {
	case player.StatePaused:
		return "watch.paused"
	case player.StateEnded:
		return "watch.ended"
	case player.StateUnstarted, player.StateCued:
		return "watch.loading"
	default:
		return "watch.playing"
	}
}
