package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nilay/quizcast/internal/ui/theme"
)

// Playbar displays the playback position with checkpoint markers.
type Playbar struct {
	Position float64   // seconds
	Duration float64   // seconds
	Markers  []float64 // checkpoint times, in seconds
	Width    int
}

// NewPlaybar creates a playback position bar.
func NewPlaybar(position, duration float64, markers []float64, width int) Playbar {
	return Playbar{
		Position: position,
		Duration: duration,
		Markers:  markers,
		Width:    width,
	}
}

// View renders the bar. Checkpoint markers in the unplayed region show
// where the video will pause next.
func (p Playbar) View() string {
	barWidth := p.Width
	if barWidth < 8 {
		barWidth = 8
	}

	filled := 0
	if p.Duration > 0 {
		filled = int(float64(barWidth) * (p.Position / p.Duration))
	}
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	cells := make([]rune, barWidth)
	for i := range cells {
		cells[i] = ' '
	}

	markerAt := make(map[int]bool)
	if p.Duration > 0 {
		for _, m := range p.Markers {
			i := int(float64(barWidth) * (m / p.Duration))
			if i >= barWidth {
				i = barWidth - 1
			}
			if i >= 0 {
				markerAt[i] = true
			}
		}
	}

	var b strings.Builder
	for i := 0; i < barWidth; i++ {
		switch {
		case markerAt[i] && i >= filled:
			b.WriteString(theme.PlaybarMarker.Render(" "))
		case i < filled:
			b.WriteString(theme.PlaybarFilled.Render(" "))
		default:
			b.WriteString(theme.PlaybarEmpty.Render(" "))
		}
	}

	return lipgloss.NewStyle().Render(b.String())
}
