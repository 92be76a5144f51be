package watch

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nilay/quizcast/internal/deck"
	"github.com/nilay/quizcast/internal/player"
	"github.com/nilay/quizcast/internal/progress"
	"github.com/nilay/quizcast/internal/router"
	reviewscreen "github.com/nilay/quizcast/internal/screens/review"
)

// memKV is an in-memory progress.KV for testing.
type memKV struct {
	m map[string]string
}

func (kv *memKV) Get(key string) (string, bool, error) {
	v, ok := kv.m[key]
	return v, ok, nil
}

func (kv *memKV) Set(key, value string) error {
	kv.m[key] = value
	return nil
}

func (kv *memKV) Delete(key string) error {
	delete(kv.m, key)
	return nil
}

// manualClock drives the simulated player deterministically.
type manualClock struct {
	t time.Time
}

func (c *manualClock) now() time.Time { return c.t }

func (c *manualClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testDeck() *deck.Deck {
	return &deck.Deck{
		Title: "Test Video",
		Checkpoints: []deck.Checkpoint{
			{
				Time:     10,
				Question: "What is 2+2?",
				Answers: []deck.Answer{
					{Text: "4", Correct: true},
					{Text: "5", Correct: false},
				},
			},
			{
				Time:     30,
				Question: "What is 3*3?",
				Answers: []deck.Answer{
					{Text: "6", Correct: false},
					{Text: "9", Correct: true},
				},
			},
		},
	}
}

func newTestWatch(t *testing.T) (*WatchScreen, *manualClock, *player.Sim) {
	t.Helper()
	clk := &manualClock{t: time.Unix(0, 0)}
	sim := player.NewSim(60, clk.now)
	prog := progress.NewStore(&memKV{m: map[string]string{}})
	s := New(testDeck(), sim, prog)
	s.Init()
	return s, clk, sim
}

func tick(s *WatchScreen) tea.Cmd {
	_, cmd := s.Update(pollTickMsg(time.Time{}))
	return cmd
}

func TestCheckpointPausesAndShowsQuestion(t *testing.T) {
	s, clk, sim := newTestWatch(t)

	if sim.State() != player.StatePlaying {
		t.Fatalf("expected playback to start, state %v", sim.State())
	}

	clk.advance(5 * time.Second)
	tick(s)
	if s.ctrl.State().QuestionActive() {
		t.Fatal("question should not appear before the checkpoint time")
	}

	clk.advance(6 * time.Second)
	tick(s)
	if !s.ctrl.State().QuestionActive() {
		t.Fatal("question should appear once the playhead passes the checkpoint")
	}
	if sim.State() != player.StatePaused {
		t.Errorf("expected paused playback, state %v", sim.State())
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "What is 2+2?") {
		t.Error("view should show the checkpoint question")
	}
}

func TestWrongAnswerKeepsQuestionOpen(t *testing.T) {
	s, clk, sim := newTestWatch(t)
	clk.advance(11 * time.Second)
	tick(s)

	s.Update(keyPress('2'))

	if !s.ctrl.State().QuestionActive() {
		t.Error("wrong answer should keep the question open")
	}
	if sim.State() != player.StatePaused {
		t.Errorf("expected playback to stay paused, state %v", sim.State())
	}
	if s.feedback != "watch.feedback.incorrect" {
		t.Errorf("expected incorrect feedback, got %q", s.feedback)
	}
}

func TestCorrectAnswerResumesPlayback(t *testing.T) {
	s, clk, sim := newTestWatch(t)
	clk.advance(11 * time.Second)
	tick(s)

	s.Update(keyPress('1'))

	if s.ctrl.State().QuestionActive() {
		t.Error("correct answer should close the question")
	}
	if sim.State() != player.StatePlaying {
		t.Errorf("expected playback to resume, state %v", sim.State())
	}
	if s.feedback != "watch.feedback.correct" {
		t.Errorf("expected correct feedback, got %q", s.feedback)
	}
}

func TestSubmitWithoutSelection(t *testing.T) {
	s, clk, _ := newTestWatch(t)
	clk.advance(11 * time.Second)
	tick(s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.feedback != "watch.must_select" {
		t.Errorf("expected selection prompt feedback, got %q", s.feedback)
	}
	if !s.ctrl.State().QuestionActive() {
		t.Error("empty submit should leave the question open")
	}
}

func TestFinalAnswerHandsOffToReview(t *testing.T) {
	s, clk, _ := newTestWatch(t)

	clk.advance(11 * time.Second)
	tick(s)
	s.Update(keyPress('1'))

	clk.advance(20 * time.Second)
	tick(s)
	_, cmd := s.Update(keyPress('2'))
	if cmd == nil {
		t.Fatal("final answer should produce a navigation command")
	}

	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replace.Screen.(*reviewscreen.ReviewScreen); !ok {
		t.Errorf("expected review screen, got %T", replace.Screen)
	}
}

func TestSeekInputJumpsPlayhead(t *testing.T) {
	s, _, sim := newTestWatch(t)

	s.Update(keyPress('g'))
	if !s.seeking {
		t.Fatal("g should open the seek input")
	}

	s.Update(keyPress('2'))
	s.Update(keyPress('5'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.seeking {
		t.Error("enter should close the seek input")
	}
	if got := sim.CurrentTime(); got != 25 {
		t.Errorf("expected playhead at 25s, got %v", got)
	}
}

func TestSeekInputCancel(t *testing.T) {
	s, _, sim := newTestWatch(t)

	s.Update(keyPress('g'))
	s.Update(keyPress('9'))
	s.Update(keyPress('g'))

	if s.seeking {
		t.Error("g should cancel the seek input")
	}
	if got := sim.CurrentTime(); got != 0 {
		t.Errorf("cancel should not move the playhead, got %v", got)
	}
}

func TestSpaceTogglesPlayback(t *testing.T) {
	s, _, sim := newTestWatch(t)

	s.Update(tea.KeyPressMsg{Code: ' '})
	if sim.State() != player.StatePaused {
		t.Errorf("space should pause, state %v", sim.State())
	}

	s.Update(tea.KeyPressMsg{Code: ' '})
	if sim.State() != player.StatePlaying {
		t.Errorf("space should resume, state %v", sim.State())
	}
}

func TestResumeCompletedSessionGoesToReview(t *testing.T) {
	kv := &memKV{m: map[string]string{}}
	prog := progress.NewStore(kv)
	if err := prog.Save(2, []progress.Record{
		{Question: "What is 2+2?", UserAnswer: "4", CorrectAnswer: "4", IsCorrect: true},
		{Question: "What is 3*3?", UserAnswer: "9", CorrectAnswer: "9", IsCorrect: true},
	}); err != nil {
		t.Fatal(err)
	}

	clk := &manualClock{t: time.Unix(0, 0)}
	sim := player.NewSim(60, clk.now)
	s := New(testDeck(), sim, prog)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("a fully resolved session should navigate on init")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
}
