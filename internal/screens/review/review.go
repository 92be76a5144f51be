package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nilay/quizcast/internal/locale"
	reviewpkg "github.com/nilay/quizcast/internal/review"
	"github.com/nilay/quizcast/internal/router"
	"github.com/nilay/quizcast/internal/screen"
	"github.com/nilay/quizcast/internal/ui/layout"
	"github.com/nilay/quizcast/internal/ui/theme"
)

// ReviewScreen lists every answered checkpoint with the user's answer
// and the correct one.
type ReviewScreen struct {
	summary    reviewpkg.Summary
	attemptID  string
	endedEarly bool
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a review screen for a finished attempt.
func New(summary reviewpkg.Summary, attemptID string, endedEarly bool) *ReviewScreen {
	return &ReviewScreen{
		summary:    summary,
		attemptID:  attemptID,
		endedEarly: endedEarly,
	}
}

func (r *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (r *ReviewScreen) Title() string {
	return locale.T("review.title")
}

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Back"},
	}
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return r, nil
}

func (r *ReviewScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(locale.T("review.title")))
	b.WriteString("\n")
	if r.attemptID != "" {
		b.WriteString(theme.Hint.Render(locale.T("review.attempt", r.attemptID)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if r.summary.EmptyNotice != "" {
		b.WriteString(theme.Subtitle.Render(locale.T(r.summary.EmptyNotice)))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}

	b.WriteString(theme.Body.Render(locale.T("review.score", r.summary.CorrectCount, r.summary.Total)))
	b.WriteString("\n")
	if r.endedEarly {
		b.WriteString(theme.Hint.Render(locale.T("review.ended_early")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, row := range r.summary.Rows {
		outcome := theme.Correct.Render("✓ " + locale.T("review.row.correct"))
		if !row.IsCorrect {
			outcome = theme.Incorrect.Render("✗ " + locale.T("review.row.incorrect"))
		}
		b.WriteString(fmt.Sprintf("%d. %s  %s\n", i+1, theme.Body.Render(row.Question), outcome))
		b.WriteString(theme.Hint.Render(fmt.Sprintf("   %s: %s", locale.T("review.your_answer"), row.UserAnswer)))
		b.WriteString("\n")
		if !row.IsCorrect {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("   %s: %s", locale.T("review.correct_answer"), row.CorrectAnswer)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
