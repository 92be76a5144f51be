package session

import (
	"github.com/nilay/quizcast/internal/deck"
	"github.com/nilay/quizcast/internal/progress"
)

// Phase is the current phase of the checkpoint session.
type Phase int

const (
	PhaseIdle           Phase = iota // Before checkpoints are loaded and progress restored
	PhaseWatching                    // Playback running, monitor watching for the next checkpoint
	PhaseQuestionActive              // Playback paused on an unresolved question
	PhaseReviewing                   // All checkpoints resolved (or playback ended early)
)

// String returns the phase name for logs and tests.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWatching:
		return "watching"
	case PhaseQuestionActive:
		return "question-active"
	case PhaseReviewing:
		return "reviewing"
	default:
		return "unknown"
	}
}

// State tracks the runtime state of a checkpoint session.
//
// Index counts resolved checkpoints and doubles as the cursor into the
// deck: checkpoints[Index] is the next pending checkpoint. Active is
// non-nil exactly while a question is displayed and unresolved.
type State struct {
	// Phase is the current session phase.
	Phase Phase

	// Index is the count of resolved (correctly answered) checkpoints.
	Index int

	// Active is the checkpoint whose question is currently displayed,
	// nil outside PhaseQuestionActive.
	Active *deck.Checkpoint

	// ActiveIndex is the deck index of Active, -1 when no question is active.
	ActiveIndex int

	// DisplayOrder maps display positions to answer indices for the active
	// question. Identity order unless the checkpoint asks for randomization.
	DisplayOrder []int

	// Records holds one entry per resolved checkpoint, in resolution order.
	Records []progress.Record

	// AttemptID identifies this run for the review screen.
	AttemptID string

	// LastAnswerCorrect reports the outcome of the most recent submission.
	LastAnswerCorrect bool

	// EndedEarly is true when the Reviewing phase was forced by a
	// playback-ended signal before all checkpoints were resolved.
	EndedEarly bool
}

// QuestionActive reports whether a question is displayed and unresolved.
func (s *State) QuestionActive() bool {
	return s.Phase == PhaseQuestionActive
}

// DisplayedAnswers returns the active question's answer texts in display
// order, or nil when no question is active.
func (s *State) DisplayedAnswers() []string {
	if s.Active == nil {
		return nil
	}
	texts := make([]string, len(s.DisplayOrder))
	for pos, idx := range s.DisplayOrder {
		texts[pos] = s.Active.Answers[idx].Text
	}
	return texts
}
