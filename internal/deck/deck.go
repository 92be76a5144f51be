package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Answer is one selectable option on a checkpoint question.
type Answer struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Checkpoint is a timestamp in the video at which playback pauses
// for a question. Immutable once loaded.
type Checkpoint struct {
	Time      float64  `json:"time"`
	Question  string   `json:"question"`
	Answers   []Answer `json:"answers"`
	Randomize bool     `json:"randomize"`
}

// CorrectIndex returns the index of the unique correct answer, or -1 if
// the one-correct-answer invariant does not hold. Load enforces the
// invariant, so callers holding a loaded Checkpoint always get a valid index.
func (c Checkpoint) CorrectIndex() int {
	found := -1
	for i, a := range c.Answers {
		if a.Correct {
			if found >= 0 {
				return -1
			}
			found = i
		}
	}
	return found
}

// Deck holds the ordered checkpoint list for one video.
type Deck struct {
	Title       string
	Checkpoints []Checkpoint
}

// Load reads a deck file, validates it against the embedded schema,
// enforces the one-correct-answer invariant, and sorts checkpoints
// ascending by time. The sorted order defines the checkpoint index.
func Load(path string) (*Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}

	d, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", filepath.Base(path), err)
	}

	if d.Title == "" {
		d.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

// Parse decodes and validates raw deck JSON.
func Parse(raw []byte) (*Deck, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var cps []Checkpoint
	if err := json.Unmarshal(raw, &cps); err != nil {
		return nil, fmt.Errorf("decode checkpoints: %w", err)
	}

	for i, cp := range cps {
		if cp.CorrectIndex() < 0 {
			return nil, fmt.Errorf("checkpoint %d (%q): exactly one answer must be marked correct", i, cp.Question)
		}
	}

	sort.SliceStable(cps, func(i, j int) bool {
		return cps[i].Time < cps[j].Time
	})

	return &Deck{Checkpoints: cps}, nil
}

// Len returns the number of checkpoints.
func (d *Deck) Len() int {
	return len(d.Checkpoints)
}

// At returns the checkpoint at index i, or nil if out of range.
func (d *Deck) At(i int) *Checkpoint {
	if i < 0 || i >= len(d.Checkpoints) {
		return nil
	}
	return &d.Checkpoints[i]
}

// LastTime returns the time of the final checkpoint, or 0 for an empty deck.
func (d *Deck) LastTime() float64 {
	if len(d.Checkpoints) == 0 {
		return 0
	}
	return d.Checkpoints[len(d.Checkpoints)-1].Time
}
