package session

import (
	"fmt"

	"github.com/nilay/quizcast/internal/deck"
)

// Evaluation is the outcome of scoring one selected answer.
type Evaluation struct {
	Correct     bool
	AnswerText  string // the selected answer's display text
	CorrectText string // the unique correct answer's display text
}

// Evaluate scores the answer at answerIndex against the checkpoint. It is
// a pure function. The one-correct-answer invariant is enforced at deck
// load time; finding it violated here is a defect and returns an error
// rather than guessing.
func Evaluate(cp *deck.Checkpoint, answerIndex int) (Evaluation, error) {
	if cp == nil {
		return Evaluation{}, fmt.Errorf("evaluate: nil checkpoint")
	}
	if answerIndex < 0 || answerIndex >= len(cp.Answers) {
		return Evaluation{}, fmt.Errorf("evaluate: answer index %d out of range [0,%d)", answerIndex, len(cp.Answers))
	}

	correctIdx := cp.CorrectIndex()
	if correctIdx < 0 {
		return Evaluation{}, fmt.Errorf("evaluate: checkpoint %q does not have exactly one correct answer", cp.Question)
	}

	selected := cp.Answers[answerIndex]
	return Evaluation{
		Correct:     selected.Correct,
		AnswerText:  selected.Text,
		CorrectText: cp.Answers[correctIdx].Text,
	}, nil
}
