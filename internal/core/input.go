package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - walk left (held)
	ActionRight          // D, Right arrow - walk right (held)
	ActionJump           // Space, W, Up - jump (held)
	ActionUp             // Up - menu navigation
	ActionDown           // Down - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one host frame.
// Held actions (Left, Right, Jump) are present for as long as the key is
// considered held; discrete actions (Pause, Restart) are present only on the
// frame they were pressed.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// HoldTracker turns a stream of key presses into "is held" state.
//
// Terminals report key presses (and auto-repeats) but not releases, so an
// action counts as held until Window has passed since its last press.
// Pressing one horizontal direction releases the opposite one immediately.
type HoldTracker struct {
	Window time.Duration
	last   map[Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		Window: window,
		last:   make(map[Action]time.Time),
	}
}

// Press records a key press for a held action at the given time.
func (h *HoldTracker) Press(a Action, now time.Time) {
	switch a {
	case ActionLeft:
		delete(h.last, ActionRight)
	case ActionRight:
		delete(h.last, ActionLeft)
	}
	h.last[a] = now
}

// Release drops an action regardless of its hold window.
func (h *HoldTracker) Release(a Action) {
	delete(h.last, a)
}

// Reset forgets every held action.
func (h *HoldTracker) Reset() {
	for a := range h.last {
		delete(h.last, a)
	}
}

// Held reports whether an action is held at the given time.
func (h *HoldTracker) Held(a Action, now time.Time) bool {
	t, ok := h.last[a]
	if !ok {
		return false
	}
	if now.Sub(t) > h.Window {
		delete(h.last, a)
		return false
	}
	return true
}

// Fill adds every currently held action to the frame.
func (h *HoldTracker) Fill(frame *InputFrame, now time.Time) {
	for _, a := range []Action{ActionLeft, ActionRight, ActionJump} {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
}
