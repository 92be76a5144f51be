package player

import "time"

// Sim is a clock-driven simulated playback backend. The terminal has no
// real video surface, so playback is a position that advances with wall
// time while playing. It honors the full Player contract including
// state-change signals, which makes it interchangeable with a real backend.
type Sim struct {
	now      func() time.Time
	duration float64

	state    State
	base     float64   // position at the last play/pause/seek
	playedAt time.Time // when playback last started
	handlers []func(State)
}

// NewSim creates a simulated player for media of the given length.
// now is injectable for tests; pass nil for wall-clock time.
func NewSim(duration float64, now func() time.Time) *Sim {
	if now == nil {
		now = time.Now
	}
	return &Sim{
		now:      now,
		duration: duration,
		state:    StateCued,
	}
}

var _ Player = (*Sim)(nil)

// Play starts or resumes playback. No-op when already playing or ended.
func (s *Sim) Play() {
	if s.state == StatePlaying || s.state == StateEnded {
		return
	}
	s.playedAt = s.now()
	s.setState(StatePlaying)
}

// Pause suspends playback at the current position.
func (s *Sim) Pause() {
	if s.state != StatePlaying {
		return
	}
	s.base = s.position()
	s.setState(StatePaused)
}

// SeekTo moves the playhead. Seeking an ended player re-cues it.
func (s *Sim) SeekTo(seconds float64, _ bool) {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > s.duration {
		seconds = s.duration
	}
	s.base = seconds
	s.playedAt = s.now()
	if s.state == StateEnded {
		s.setState(StateCued)
	}
}

// CurrentTime returns the playhead position in seconds.
func (s *Sim) CurrentTime() float64 {
	return s.position()
}

// Duration returns the media length in seconds.
func (s *Sim) Duration() float64 {
	return s.duration
}

// Subscribe registers a state-change handler.
func (s *Sim) Subscribe(fn func(State)) {
	s.handlers = append(s.handlers, fn)
}

// State returns the current playback state.
func (s *Sim) State() State {
	return s.state
}

// Sync checks whether the playhead has run past the end of the media and
// emits the Ended signal once. Callers poll it alongside CurrentTime.
func (s *Sim) Sync() {
	if s.state == StatePlaying && s.position() >= s.duration {
		s.base = s.duration
		s.setState(StateEnded)
	}
}

func (s *Sim) position() float64 {
	pos := s.base
	if s.state == StatePlaying {
		pos += s.now().Sub(s.playedAt).Seconds()
	}
	if pos > s.duration {
		pos = s.duration
	}
	return pos
}

func (s *Sim) setState(st State) {
	s.state = st
	for _, fn := range s.handlers {
		fn(st)
	}
}
