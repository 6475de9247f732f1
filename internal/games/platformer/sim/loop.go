package sim

// Loop converts wall-clock frame callbacks into fixed-size simulation
// steps. Leftover time carries into the next frame.
type Loop struct {
	StepMs  float64
	acc     float64
	last    float64
	started bool
}

// NewLoop creates a loop running steps of stepMs.
func NewLoop(stepMs float64) *Loop {
	return &Loop{StepMs: stepMs}
}

// Frame accounts the time since the previous frame and calls update once
// per whole step. The first frame only records its timestamp. Returns the
// number of steps run.
func (l *Loop) Frame(nowMs float64, update func(stepMs float64)) int {
	if !l.started {
		l.started = true
		l.last = nowMs
		return 0
	}
	elapsed := nowMs - l.last
	l.last = nowMs
	if elapsed < 0 {
		elapsed = 0
	}
	l.acc += elapsed

	steps := 0
	for l.acc >= l.StepMs {
		update(l.StepMs)
		l.acc -= l.StepMs
		steps++
	}
	return steps
}

// Carry returns the time accumulated toward the next step.
func (l *Loop) Carry() float64 { return l.acc }

// Restart forgets the previous frame timestamp and any carried time.
func (l *Loop) Restart() {
	l.acc = 0
	l.started = false
}
