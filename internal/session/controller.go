package session

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/nilay/quizcast/internal/deck"
	"github.com/nilay/quizcast/internal/player"
	"github.com/nilay/quizcast/internal/progress"
)

// ProgressStore is the persistence collaborator the controller mirrors
// its state into. Failures are non-fatal: the controller records them and
// continues in memory.
type ProgressStore interface {
	Save(index int, records []progress.Record) error
	Load() (*progress.Snapshot, error)
	Clear() error
}

// SubmitStatus classifies the outcome of a SubmitAnswer call.
type SubmitStatus int

const (
	SubmitIgnored     SubmitStatus = iota // No question active; nothing happened
	SubmitNoSelection                     // No option selected; prompt the user, no state change
	SubmitIncorrect                       // Wrong answer; the question stays active for retry
	SubmitAdvanced                        // Correct; playback resumed toward the next checkpoint
	SubmitCompleted                       // Correct and final; the session is now reviewing
)

// SubmitResult is the outcome of one submission.
type SubmitResult struct {
	Status     SubmitStatus
	Evaluation Evaluation
}

// Controller is the checkpoint session state machine. It owns the session
// State exclusively and coordinates the playback collaborator, the timing
// monitor, and progress persistence.
//
// All methods must be called from a single goroutine (the UI event loop).
// The controller never blocks and never panics on contract misuse: invalid
// signals degrade to no-ops.
type Controller struct {
	deck    *deck.Deck
	player  player.Player
	store   ProgressStore
	monitor *Monitor
	state   *State

	// shuffle randomizes answer display order; injectable for tests.
	shuffle func(n int, swap func(i, j int))

	// selfPaused distinguishes a checkpoint-induced pause from the user
	// pausing playback, so the paused signal from our own Pause call does
	// not read as "stop watching".
	selfPaused bool

	persistErr error
}

// New creates a controller in the Idle phase.
func New(d *deck.Deck, p player.Player, store ProgressStore) *Controller {
	return &Controller{
		deck:    d,
		player:  p,
		store:   store,
		monitor: NewMonitor(),
		shuffle: rand.Shuffle,
		state: &State{
			Phase:       PhaseIdle,
			ActiveIndex: -1,
			AttemptID:   uuid.New().String(),
		},
	}
}

// State returns the session state. Callers read it; only the controller
// mutates it.
func (c *Controller) State() *State {
	return c.state
}

// Monitor returns the timing monitor, for polling loops to consult.
func (c *Controller) Monitor() *Monitor {
	return c.monitor
}

// PersistErr returns the most recent persistence failure, nil when the
// last persistence operation succeeded.
func (c *Controller) PersistErr() error {
	return c.persistErr
}

// Start restores persisted progress and transitions Idle into Watching,
// or directly into Reviewing when every checkpoint is already resolved.
// A corrupt or unreadable snapshot counts as no prior progress.
func (c *Controller) Start() {
	snap, err := c.store.Load()
	if err != nil {
		c.persistErr = err
	}
	if snap != nil {
		idx := snap.Index
		if idx > c.deck.Len() {
			idx = c.deck.Len()
		}
		c.state.Index = idx
		c.state.Records = append([]progress.Record(nil), snap.Records...)
	}

	c.player.Subscribe(c.handlePlayerState)

	if c.deck.Len() > 0 && c.state.Index >= c.deck.Len() {
		c.state.Phase = PhaseReviewing
		return
	}

	c.state.Phase = PhaseWatching
	c.player.Play()
	c.monitor.Arm()
}

// PollTick is the timing monitor's periodic check: it samples the
// playhead and fires checkpoint activation when the next unresolved
// checkpoint's time has been reached. Returns true when a question was
// activated by this tick.
func (c *Controller) PollTick() bool {
	if c.state.Phase != PhaseWatching || !c.monitor.Armed() {
		return false
	}
	next := c.deck.At(c.state.Index)
	if next == nil {
		c.monitor.Disarm()
		return false
	}
	if !c.monitor.Check(c.player.CurrentTime(), next.Time) {
		return false
	}
	return c.OnCheckpointReached(c.state.Index)
}

// OnCheckpointReached activates checkpoint i's question: pause playback,
// set the active question, stop the monitor. Duplicate or stale fires are
// silent no-ops: a question already active, a resolved index, or an index
// that is not the cursor all leave the state untouched.
func (c *Controller) OnCheckpointReached(i int) bool {
	if c.state.Phase != PhaseWatching || c.state.QuestionActive() {
		return false
	}
	if i != c.state.Index {
		return false
	}
	cp := c.deck.At(i)
	if cp == nil {
		return false
	}

	c.monitor.Disarm()
	c.selfPaused = true
	c.player.Pause()

	order := make([]int, len(cp.Answers))
	for j := range order {
		order[j] = j
	}
	if cp.Randomize {
		c.shuffle(len(order), func(a, b int) {
			order[a], order[b] = order[b], order[a]
		})
	}

	c.state.Active = cp
	c.state.ActiveIndex = i
	c.state.DisplayOrder = order
	c.state.Phase = PhaseQuestionActive
	return true
}

// SubmitAnswer scores the answer at the given display position. A
// negative or out-of-range position is the "must select an option"
// condition. Only a correct submission advances the checkpoint index;
// an incorrect one leaves the question active so the user may retry.
func (c *Controller) SubmitAnswer(displayPos int) SubmitResult {
	if !c.state.QuestionActive() {
		return SubmitResult{Status: SubmitIgnored}
	}
	if displayPos < 0 || displayPos >= len(c.state.DisplayOrder) {
		return SubmitResult{Status: SubmitNoSelection}
	}

	eval, err := Evaluate(c.state.Active, c.state.DisplayOrder[displayPos])
	if err != nil {
		// Unreachable on a deck that passed load validation.
		return SubmitResult{Status: SubmitIgnored}
	}
	c.state.LastAnswerCorrect = eval.Correct

	if !eval.Correct {
		c.persist()
		return SubmitResult{Status: SubmitIncorrect, Evaluation: eval}
	}

	c.state.Records = append(c.state.Records, progress.Record{
		Question:      c.state.Active.Question,
		UserAnswer:    eval.AnswerText,
		CorrectAnswer: eval.CorrectText,
		IsCorrect:     true,
	})
	c.state.Index++
	c.persist()

	c.state.Active = nil
	c.state.ActiveIndex = -1
	c.state.DisplayOrder = nil

	if c.state.Index < c.deck.Len() {
		c.state.Phase = PhaseWatching
		c.selfPaused = false
		c.player.Play()
		c.monitor.Arm()
		return SubmitResult{Status: SubmitAdvanced, Evaluation: eval}
	}

	c.state.Phase = PhaseReviewing
	c.monitor.Disarm()
	return SubmitResult{Status: SubmitCompleted, Evaluation: eval}
}

// Reset unconditionally restores the session to Watching at index 0:
// persisted slots removed, records cleared, playback rewound and playing.
func (c *Controller) Reset() {
	if err := c.store.Clear(); err != nil {
		c.persistErr = err
	} else {
		c.persistErr = nil
	}

	c.state.Index = 0
	c.state.Records = nil
	c.state.Active = nil
	c.state.ActiveIndex = -1
	c.state.DisplayOrder = nil
	c.state.LastAnswerCorrect = false
	c.state.EndedEarly = false
	c.state.Phase = PhaseWatching

	c.selfPaused = false
	c.player.SeekTo(0, true)
	c.player.Play()
	c.monitor.Arm()
}

// handlePlayerState consumes playback state-change signals.
func (c *Controller) handlePlayerState(st player.State) {
	switch st {
	case player.StatePlaying:
		// Any Playing signal resumes the watch while in Watching.
		if c.state.Phase == PhaseWatching {
			c.monitor.Arm()
		}

	case player.StatePaused, player.StateBuffering, player.StateCued:
		if c.selfPaused {
			return
		}
		c.monitor.Disarm()

	case player.StateEnded:
		c.monitor.Disarm()
		if c.state.Phase == PhaseWatching {
			if c.state.Index < c.deck.Len() {
				c.state.EndedEarly = true
			}
			c.state.Phase = PhaseReviewing
		}
	}
}

// persist mirrors the current index and records into storage. Failures
// are recorded and the session continues in memory only.
func (c *Controller) persist() {
	if err := c.store.Save(c.state.Index, c.state.Records); err != nil {
		c.persistErr = err
		return
	}
	c.persistErr = nil
}
