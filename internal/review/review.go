// Package review compiles a finished session's answer records into the
// rows the review screen displays.
package review

import "github.com/nilay/quizcast/internal/progress"

// Row is one review line: a checkpoint's question, the user's literal
// answer, the correct answer, and the outcome.
type Row struct {
	Question      string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
}

// Summary is the review output for one attempt.
type Summary struct {
	Rows         []Row
	Total        int // checkpoints in the deck
	Resolved     int // checkpoints resolved in this attempt
	CorrectCount int

	// EmptyNotice is a locale key set when there are no rows: the deck had
	// no checkpoints at all, or checkpoints existed but none were resolved.
	EmptyNotice string
}

// Locale keys for the empty-review notices.
const (
	NoticeNoCheckpoints = "review.empty.no_checkpoints"
	NoticeNoneResolved  = "review.empty.none_resolved"
)

// Build compiles answer records into review rows in resolution order.
func Build(records []progress.Record, totalCheckpoints int) Summary {
	s := Summary{
		Total:    totalCheckpoints,
		Resolved: len(records),
	}

	if len(records) == 0 {
		if totalCheckpoints == 0 {
			s.EmptyNotice = NoticeNoCheckpoints
		} else {
			s.EmptyNotice = NoticeNoneResolved
		}
		return s
	}

	s.Rows = make([]Row, len(records))
	for i, rec := range records {
		s.Rows[i] = Row{
			Question:      rec.Question,
			UserAnswer:    rec.UserAnswer,
			CorrectAnswer: rec.CorrectAnswer,
			IsCorrect:     rec.IsCorrect,
		}
		if rec.IsCorrect {
			s.CorrectCount++
		}
	}
	return s
}
