package review

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nilay/quizcast/internal/locale"
	"github.com/nilay/quizcast/internal/progress"
	reviewpkg "github.com/nilay/quizcast/internal/review"
	"github.com/nilay/quizcast/internal/router"
)

func testSummary() reviewpkg.Summary {
	return reviewpkg.Build([]progress.Record{
		{Question: "What is 2+2?", UserAnswer: "4", CorrectAnswer: "4", IsCorrect: true},
		{Question: "What is 3*3?", UserAnswer: "6", CorrectAnswer: "9", IsCorrect: false},
	}, 3)
}

func TestEnterPopsScreen(t *testing.T) {
	s := New(testSummary(), "attempt-1", false)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should produce a navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("enter should pop back to the previous screen")
	}
}

func TestViewListsRows(t *testing.T) {
	s := New(testSummary(), "attempt-1", false)
	view := s.View(80, 24)

	for _, want := range []string{"What is 2+2?", "What is 3*3?", "6", "9"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewShowsCorrectAnswerOnlyForMisses(t *testing.T) {
	s := New(reviewpkg.Build([]progress.Record{
		{Question: "Q", UserAnswer: "right", CorrectAnswer: "right", IsCorrect: true},
	}, 1), "", false)

	view := s.View(80, 24)
	if strings.Count(view, "right") != 1 {
		t.Error("correct rows should only show the user's answer")
	}
}

func TestEmptyNotice(t *testing.T) {
	locale.SetLanguage("en")
	s := New(reviewpkg.Build(nil, 0), "", false)
	view := s.View(80, 24)
	if !strings.Contains(view, "no question checkpoints") {
		t.Errorf("expected empty-deck notice, got:\n%s", view)
	}
}
