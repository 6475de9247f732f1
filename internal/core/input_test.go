package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)

	if !f.Has(ActionJump) {
		t.Error("Has(Jump) should be true after Set")
	}
	if f.Has(ActionLeft) {
		t.Error("Has(Left) should be false")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should not share storage with the original")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should report nothing")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(ActionRight, t0)
	if !h.Held(ActionRight, t0.Add(50*time.Millisecond)) {
		t.Error("action should be held inside the window")
	}
	if h.Held(ActionRight, t0.Add(150*time.Millisecond)) {
		t.Error("action should expire after the window")
	}

	h.Press(ActionJump, t0)
	h.Release(ActionJump)
	if h.Held(ActionJump, t0) {
		t.Error("Release should drop the action")
	}
}

func TestHoldTrackerOppositeDirections(t *testing.T) {
	h := NewHoldTracker(time.Second)
	t0 := time.Unix(0, 0)

	h.Press(ActionLeft, t0)
	h.Press(ActionRight, t0.Add(10*time.Millisecond))

	if h.Held(ActionLeft, t0.Add(20*time.Millisecond)) {
		t.Error("pressing right should release left")
	}

	f := NewInputFrame()
	h.Fill(&f, t0.Add(20*time.Millisecond))
	if !f.Has(ActionRight) || f.Has(ActionLeft) {
		t.Errorf("Fill produced %v", f.Actions)
	}

	h.Reset()
	if h.Held(ActionRight, t0.Add(20*time.Millisecond)) {
		t.Error("Reset should release everything")
	}
}
