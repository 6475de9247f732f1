package sim

import "testing"

func TestTimerQueueOrder(t *testing.T) {
	var q TimerQueue
	var fired []string
	q.After(100, 1, func() { fired = append(fired, "late") })
	q.After(50, 1, func() { fired = append(fired, "early") })

	if n := q.Advance(49, 1); n != 0 {
		t.Fatalf("fired %d timers before they were due", n)
	}
	if n := q.Advance(60, 1); n != 1 {
		t.Fatalf("fired %d timers, want 1", n)
	}
	if len(fired) != 1 || fired[0] != "early" {
		t.Errorf("fired = %v, want [early]", fired)
	}
	q.Advance(100, 1)
	if len(fired) != 2 || fired[1] != "late" {
		t.Errorf("fired = %v, want [early late]", fired)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}

func TestTimerQueueDropsStaleEpoch(t *testing.T) {
	var q TimerQueue
	called := false
	q.After(10, 1, func() { called = true })

	if n := q.Advance(20, 2); n != 0 {
		t.Errorf("fired %d stale timers", n)
	}
	if called {
		t.Error("timer from an earlier epoch fired")
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, stale timer should be discarded", q.Len())
	}
}
