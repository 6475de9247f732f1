package sim

// Action is a control the simulation samples once per tick.
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionJump
)

// Input reports which actions are currently held.
type Input interface {
	IsActionHeld(a Action) bool
}

// InputFunc adapts a function to Input.
type InputFunc func(a Action) bool

// IsActionHeld implements Input.
func (f InputFunc) IsActionHeld(a Action) bool { return f(a) }

// NoInput holds nothing.
var NoInput Input = InputFunc(func(Action) bool { return false })

// HeldSet is an Input backed by a fixed set of held actions.
type HeldSet map[Action]bool

// IsActionHeld implements Input.
func (h HeldSet) IsActionHeld(a Action) bool { return h[a] }
