package sim

import "sort"

// timer is a one-shot callback due at a wall-clock instant.
type timer struct {
	due   float64
	epoch uint64
	fire  func()
}

// TimerQueue holds real-time one-shot timers. Timers are fired from the
// frame callback on the simulation goroutine, never concurrently with a
// tick. Each timer carries the run epoch it was armed in; timers from an
// earlier run are dropped instead of fired.
type TimerQueue struct {
	pending []timer
}

// After arms fn to fire at dueMs for the given epoch.
func (q *TimerQueue) After(dueMs float64, epoch uint64, fn func()) {
	q.pending = append(q.pending, timer{due: dueMs, epoch: epoch, fire: fn})
	sort.SliceStable(q.pending, func(i, j int) bool {
		return q.pending[i].due < q.pending[j].due
	})
}

// Advance fires every timer due at or before nowMs whose epoch matches
// current, and discards due timers of other epochs. Returns how many fired.
func (q *TimerQueue) Advance(nowMs float64, current uint64) int {
	fired := 0
	for len(q.pending) > 0 && q.pending[0].due <= nowMs {
		t := q.pending[0]
		q.pending = q.pending[1:]
		if t.epoch != current {
			continue
		}
		t.fire()
		fired++
	}
	return fired
}

// Len returns the number of pending timers.
func (q *TimerQueue) Len() int { return len(q.pending) }

// Clear drops every pending timer.
func (q *TimerQueue) Clear() { q.pending = nil }
