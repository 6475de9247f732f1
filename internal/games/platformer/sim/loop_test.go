package sim

import "testing"

func TestLoopFixedSteps(t *testing.T) {
	l := NewLoop(testStep)
	steps := 0
	update := func(dt float64) {
		if dt != testStep {
			t.Errorf("dt = %v, want %v", dt, testStep)
		}
		steps++
	}

	if n := l.Frame(1000, update); n != 0 {
		t.Fatalf("first frame ran %d steps, want 0", n)
	}

	if n := l.Frame(1000+2.5*testStep, update); n != 2 {
		t.Errorf("ran %d steps for 2.5 steps of time, want 2", n)
	}
	if !approx(l.Carry(), 0.5*testStep) {
		t.Errorf("carry = %v, want %v", l.Carry(), 0.5*testStep)
	}

	// The carried half step completes once more time arrives
	if n := l.Frame(1000+3.2*testStep, update); n != 1 {
		t.Errorf("ran %d steps, want the carried half to complete one", n)
	}
	if steps != 3 {
		t.Errorf("update called %d times, want 3", steps)
	}
}

func TestLoopClockGoingBackwards(t *testing.T) {
	l := NewLoop(testStep)
	l.Frame(1000, func(float64) {})
	if n := l.Frame(900, func(float64) {}); n != 0 {
		t.Errorf("ran %d steps for negative elapsed time", n)
	}
	if l.Carry() != 0 {
		t.Errorf("carry = %v, want 0", l.Carry())
	}
}

func TestLoopRestart(t *testing.T) {
	l := NewLoop(testStep)
	l.Frame(0, func(float64) {})
	l.Frame(testStep*0.9, func(float64) {})
	l.Restart()

	if n := l.Frame(10000, func(float64) {}); n != 0 {
		t.Errorf("first frame after restart ran %d steps", n)
	}
	if l.Carry() != 0 {
		t.Errorf("carry = %v after restart, want 0", l.Carry())
	}
}
