// Package player defines the playback capability the session controller
// depends on. The controller never sees a concrete playback backend, only
// this interface and its state-change signals.
package player

// State is a playback state reported by the backend.
type State int

const (
	StateUnstarted State = iota
	StateEnded
	StatePlaying
	StatePaused
	StateBuffering
	StateCued
)

// String returns the state name for logs and tests.
func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateEnded:
		return "ended"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateBuffering:
		return "buffering"
	case StateCued:
		return "cued"
	default:
		return "unknown"
	}
}

// Player is the capability contract for a playback backend.
type Player interface {
	// Play starts or resumes playback.
	Play()

	// Pause suspends playback at the current position.
	Pause()

	// SeekTo moves the playhead to the given position in seconds. When
	// exact is false the backend may snap to the nearest keyframe.
	SeekTo(seconds float64, exact bool)

	// CurrentTime returns the playhead position in seconds.
	CurrentTime() float64

	// Duration returns the media length in seconds.
	Duration() float64

	// Subscribe registers a handler for state-change signals. Handlers
	// are invoked synchronously in registration order.
	Subscribe(fn func(State))
}
