package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nilay/quizcast/internal/ui/theme"
)

// Choice is the answer selector for a checkpoint question. Selected is -1
// until the user picks an option; submitting with no selection is the
// caller's "must select" condition.
type Choice struct {
	Options  []string
	Selected int
}

// NewChoice creates a selector with no option selected yet.
func NewChoice(options []string) Choice {
	return Choice{
		Options:  options,
		Selected: -1,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Number keys select directly.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		} else if c.Selected < 0 && len(c.Options) > 0 {
			c.Selected = 0
		}
	case "down", "j":
		if c.Selected < 0 && len(c.Options) > 0 {
			c.Selected = 0
		} else if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(c.Options) {
				c.Selected = i
			}
		}
	}

	return c, nil
}

// View renders the option list.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
