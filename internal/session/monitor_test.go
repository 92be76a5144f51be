package session

import "testing"

func TestMonitor_FiresOnceThenDisarms(t *testing.T) {
	m := NewMonitor()
	m.Arm()

	if m.Check(5, 10) {
		t.Error("fired before the checkpoint time")
	}
	if !m.Check(10, 10) {
		t.Error("expected fire at exactly the checkpoint time")
	}
	if m.Armed() {
		t.Error("monitor should disarm after firing")
	}
	if m.Check(11, 10) {
		t.Error("a disarmed monitor must never fire")
	}
}

func TestMonitor_DisarmedByDefault(t *testing.T) {
	m := NewMonitor()
	if m.Armed() {
		t.Error("new monitor should be disarmed")
	}
	if m.Check(100, 10) {
		t.Error("disarmed monitor fired")
	}
}

func TestMonitor_RearmBumpsGeneration(t *testing.T) {
	m := NewMonitor()

	g1 := m.Arm()
	g2 := m.Arm()
	if g2 <= g1 {
		t.Errorf("generations %d then %d, want strictly increasing", g1, g2)
	}
	if m.Generation() != g2 {
		t.Errorf("Generation = %d, want %d", m.Generation(), g2)
	}

	// A stale polling loop holding g1 can detect it was replaced.
	if g1 == m.Generation() {
		t.Error("stale generation should not match after rearm")
	}
}

func TestMonitor_DisarmStopsWatch(t *testing.T) {
	m := NewMonitor()
	m.Arm()
	m.Disarm()

	if m.Armed() {
		t.Error("Disarm should stop the watch")
	}
	if m.Check(100, 10) {
		t.Error("disarmed monitor fired")
	}
}
