package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nilay/quizcast/internal/deck"
	"github.com/nilay/quizcast/internal/locale"
	"github.com/nilay/quizcast/internal/player"
	"github.com/nilay/quizcast/internal/progress"
	"github.com/nilay/quizcast/internal/router"
	"github.com/nilay/quizcast/internal/screens/watch"
)

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
		},
	}
}

func newTestHome(prog *progress.Store) *HomeScreen {
	return New(testDeck(), prog, func() player.Player {
		return player.NewSim(60, nil)
	})
}

func TestReviewDisabledWithoutProgress(t *testing.T) {
	locale.SetLanguage("en")
	h := newTestHome(progress.NewStore(&memKV{m: map[string]string{}}))

	for _, item := range h.menu.Items {
		if item.Label == locale.T("home.menu.review") && !item.Disabled {
			t.Error("review should be disabled without saved progress")
		}
	}
	if !strings.Contains(h.View(80, 24), locale.T("home.fresh")) {
		t.Error("view should show the fresh-start line")
	}
}

func TestReviewEnabledWithProgress(t *testing.T) {
	locale.SetLanguage("en")
	prog := progress.NewStore(&memKV{m: map[string]string{}})
	if err := prog.Save(1, []progress.Record{
		{Question: "What is 2+2?", UserAnswer: "4", CorrectAnswer: "4", IsCorrect: true},
	}); err != nil {
		t.Fatal(err)
	}

	h := newTestHome(prog)
	for _, item := range h.menu.Items {
		if item.Label == locale.T("home.menu.review") && item.Disabled {
			t.Error("review should be enabled with saved progress")
		}
	}
	if !strings.Contains(h.View(80, 24), "1 of 1") {
		t.Error("view should show the saved progress count")
	}
}

func TestWatchPushesWatchScreen(t *testing.T) {
	h := newTestHome(progress.NewStore(&memKV{m: map[string]string{}}))

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on watch should produce a navigation command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*watch.WatchScreen); !ok {
		t.Errorf("expected watch screen, got %T", push.Screen)
	}
}

func TestInitRefreshesProgressLine(t *testing.T) {
	locale.SetLanguage("en")
	prog := progress.NewStore(&memKV{m: map[string]string{}})
	h := newTestHome(prog)

	if err := prog.Save(1, nil); err != nil {
		t.Fatal(err)
	}
	h.Init()

	if !strings.Contains(h.progressLn, "1 of 1") {
		t.Errorf("init should reload the snapshot, got %q", h.progressLn)
	}
}
