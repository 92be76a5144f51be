package session

import "time"

// PollInterval is how often the timing monitor samples the playhead.
const PollInterval = 500 * time.Millisecond

// Monitor watches the playback position for the next unresolved
// checkpoint. It is not self-perpetuating: firing disarms it, and it must
// be rearmed after the checkpoint resolves.
//
// At most one polling task may drive a Monitor at a time. Arming bumps a
// generation counter; a polling loop started under an older generation
// checks Generation and stops itself, so rearming replaces the previous
// task without overlap and a checkpoint can never fire twice.
type Monitor struct {
	armed bool
	gen   int
}

// NewMonitor returns a disarmed Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// Arm starts (or replaces) the watch and returns the new generation.
func (m *Monitor) Arm() int {
	m.armed = true
	m.gen++
	return m.gen
}

// Disarm stops the watch.
func (m *Monitor) Disarm() {
	m.armed = false
}

// Armed reports whether the monitor is watching.
func (m *Monitor) Armed() bool {
	return m.armed
}

// Generation returns the current arm generation. Polling loops compare it
// against the generation they were started with.
func (m *Monitor) Generation() int {
	return m.gen
}

// Check samples the playhead against the next checkpoint time. When the
// position has reached it, the monitor disarms itself and reports the hit.
func (m *Monitor) Check(position, checkpointTime float64) bool {
	if !m.armed {
		return false
	}
	if position < checkpointTime {
		return false
	}
	m.armed = false
	return true
}
