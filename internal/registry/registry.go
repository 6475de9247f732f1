// Package registry provides a global registry for game factories.
// Each playable level registers a factory at startup, allowing the platform
// to discover and instantiate levels without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game is the core interface every playable level implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "meadow").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Meadow").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// A failed reset leaves the previous state in place.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Jump, Pause, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Framed is implemented by games that consume wall-clock frames and
// run as many fixed ticks as the elapsed time allows.
type Framed interface {
	Game
	Frame(now time.Time, in core.InputFrame) core.StepResult
}

// Loader is implemented by games that load resources before the first tick.
// Load blocks until loading finishes; Progress reports a fraction in [0, 1]
// and is safe to call from another goroutine while Load runs.
type Loader interface {
	Load(ctx context.Context) error
	Progress() float64
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
