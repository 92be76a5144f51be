package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nilay/quizcast/internal/deck"
	"github.com/nilay/quizcast/internal/locale"
	"github.com/nilay/quizcast/internal/player"
	"github.com/nilay/quizcast/internal/progress"
	reviewpkg "github.com/nilay/quizcast/internal/review"
	"github.com/nilay/quizcast/internal/router"
	"github.com/nilay/quizcast/internal/screen"
	reviewscreen "github.com/nilay/quizcast/internal/screens/review"
	"github.com/nilay/quizcast/internal/screens/watch"
	"github.com/nilay/quizcast/internal/ui/components"
	"github.com/nilay/quizcast/internal/ui/theme"
)

// HomeScreen is the deck landing screen: watch, review saved progress,
// start over, or quit.
type HomeScreen struct {
	menu       components.Menu
	deckData   *deck.Deck
	prog       *progress.Store
	newPlayer  func() player.Player
	progressLn string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(d *deck.Deck, prog *progress.Store, newPlayer func() player.Player) *HomeScreen {
	h := &HomeScreen{
		deckData:  d,
		prog:      prog,
		newPlayer: newPlayer,
	}
	h.refresh()
	return h
}

// refresh rebuilds the menu and progress line from the saved snapshot.
// The snapshot decides whether the review entry is enabled and what the
// progress line says.
func (h *HomeScreen) refresh() {
	d, prog, newPlayer := h.deckData, h.prog, h.newPlayer

	snap, _ := prog.Load()

	h.progressLn = locale.T("home.fresh")
	if snap != nil {
		h.progressLn = locale.T("home.resume", snap.Index, d.Len())
	}

	items := []components.MenuItem{
		{Label: locale.T("home.menu.watch"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: watch.New(d, newPlayer(), prog)}
			}
		}},
		{Label: locale.T("home.menu.review"), Disabled: snap == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				cur, _ := prog.Load()
				var records []progress.Record
				if cur != nil {
					records = cur.Records
				}
				summary := reviewpkg.Build(records, d.Len())
				return router.PushScreenMsg{Screen: reviewscreen.New(summary, "", false)}
			}
		}},
		{Label: locale.T("home.menu.reset"), Action: func() tea.Cmd {
			return func() tea.Msg {
				_ = prog.Clear()
				return router.PushScreenMsg{Screen: watch.New(d, newPlayer(), prog)}
			}
		}},
		{Label: locale.T("home.menu.quit"), Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
}

func (h *HomeScreen) Init() tea.Cmd {
	h.refresh()
	return h.menu.Init()
}

func (h *HomeScreen) Title() string {
	return h.deckData.Title
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	title := theme.Title.Width(width).Render(h.deckData.Title)
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")

	sub := theme.Subtitle.Width(width).Render(h.progressLn)
	b.WriteString(sub)
	b.WriteString("\n\n")

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	b.WriteString(menu)

	return b.String()
}
