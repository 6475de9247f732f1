package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Host frame callbacks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score       int  // Current score
	Lives       int  // Remaining lives
	GameOver    bool // Whether the game has ended
	Victory     bool // Whether the game ended by reaching the goal
	DeathByFall bool // Whether the game ended by falling into a gap
	Paused      bool // Whether the game is paused
	Loading     bool // Whether the game is still loading its level
}

// Outcome names how a finished game ended: "victory", "fall" or "defeat".
// Returns "" while the game is still running.
func (s GameState) Outcome() string {
	switch {
	case !s.GameOver:
		return ""
	case s.Victory:
		return "victory"
	case s.DeathByFall:
		return "fall"
	default:
		return "defeat"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
