package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// SeekInput wraps bubbles/textinput for entering a playback position in
// seconds. Only digits are accepted.
type SeekInput struct {
	Model textinput.Model
}

// NewSeekInput creates a focused seek input.
func NewSeekInput(placeholder string) SeekInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 6
	ti.Focus()
	return SeekInput{Model: ti}
}

func (s SeekInput) Init() tea.Cmd {
	return s.Model.Focus()
}

// Update handles messages, dropping non-digit character input.
func (s SeekInput) Update(msg tea.Msg) (SeekInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

func (s SeekInput) View() string {
	return s.Model.View()
}

// Seconds returns the entered position. ok is false when the input is
// empty or not a number.
func (s SeekInput) Seconds() (float64, bool) {
	v, err := strconv.Atoi(s.Model.Value())
	if err != nil {
		return 0, false
	}
	return float64(v), true
}
