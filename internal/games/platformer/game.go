// Package platformer adapts the platformer simulation to the arcade host:
// every level becomes a registered game that maps input frames to held
// actions, drives the fixed-timestep loop from frame callbacks and renders
// the world into a screen buffer.
package platformer

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/assets"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Options configures the games built for each level.
type Options struct {
	Config config.PlatformerConfig
	Assets assets.Source // Defaults to the embedded atlas
	Logger *log.Logger   // Defaults to discarding output
}

func (o Options) withDefaults() Options {
	if o.Assets == nil {
		o.Assets = assets.DefaultAtlas()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Game runs one level.
type Game struct {
	level  levels.Level
	cfg    config.PlatformerConfig
	logger *log.Logger

	sim    *sim.Simulation
	loop   *sim.Loop
	assets *assets.Manager

	runtime core.RuntimeConfig
	held    core.InputFrame
	origin  time.Time // Wall-clock zero of the frame clock
	stepMs  float64   // Clock advanced by Step

	loadOnce sync.Once
	loadErr  error
	ready    atomic.Bool
}

// New creates a game for level. Call Load before the first tick.
func New(level levels.Level, opts Options) *Game {
	opts = opts.withDefaults()
	cfg := level.Config(opts.Config)
	logger := opts.Logger.With("level", level.ID)

	g := &Game{
		level:   level,
		cfg:     cfg,
		logger:  logger,
		loop:    sim.NewLoop(cfg.Physics.FixedStepMs),
		assets:  assets.NewManager(opts.Assets, assets.Keys, logger),
		runtime: core.DefaultConfig(),
		held:    core.NewInputFrame(),
	}
	g.sim = sim.New(cfg, level.Source(cfg), sim.InputFunc(g.isHeld))
	return g
}

// Register registers one game per level.
// Panics if two levels share an ID.
func Register(lvls []levels.Level, opts Options) {
	for _, lvl := range lvls {
		registry.Register(lvl.ID, func() registry.Game {
			return New(lvl, opts)
		})
	}
}

// isHeld maps the simulation's actions onto the current input frame.
func (g *Game) isHeld(a sim.Action) bool {
	switch a {
	case sim.ActionMoveLeft:
		return g.held.Has(core.ActionLeft)
	case sim.ActionMoveRight:
		return g.held.Has(core.ActionRight)
	case sim.ActionJump:
		return g.held.Has(core.ActionJump)
	}
	return false
}

// ID returns the level ID.
func (g *Game) ID() string { return g.level.ID }

// Title returns the level name.
func (g *Game) Title() string { return g.level.Name }

// Level returns the level this game plays.
func (g *Game) Level() levels.Level { return g.level }

// Load loads the sprites and builds the first run. It blocks until both
// are done and is safe to call from a goroutine other than the one
// driving the game; only the first call does any work.
func (g *Game) Load(ctx context.Context) error {
	g.loadOnce.Do(func() {
		g.assets.LoadAll(ctx)
		if n := g.assets.Failed(); n > 0 {
			g.logger.Warn("some sprites are missing", "count", n)
		}
		if err := g.sim.Init(); err != nil {
			g.loadErr = fmt.Errorf("platformer: loading %s: %w", g.level.ID, err)
			g.logger.Error("level failed to load", "err", err)
		}
		g.ready.Store(true)
	})
	return g.loadErr
}

// Err returns the error that stopped the level from loading, if any.
func (g *Game) Err() error {
	if !g.ready.Load() {
		return nil
	}
	return g.loadErr
}

// Progress reports sprite loading progress in [0, 1].
func (g *Game) Progress() float64 { return g.assets.Progress() }

// running reports whether the simulation may be touched by the host.
func (g *Game) running() bool {
	return g.ready.Load() && g.loadErr == nil
}

// Reset starts a new run. Before loading finishes only the runtime
// config is recorded.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime
	if !g.running() {
		return nil
	}
	if err := g.sim.Reset(); err != nil {
		g.logger.Error("reset failed", "err", err)
		return fmt.Errorf("platformer: resetting %s: %w", g.level.ID, err)
	}
	g.loop.Restart()
	g.held = core.NewInputFrame()
	return nil
}

// handleDiscrete applies the edge-triggered actions of a frame.
func (g *Game) handleDiscrete(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.sim.TogglePause()
	}
}

// Step advances the simulation by exactly one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.running() {
		return core.StepResult{State: g.State()}
	}
	g.held = in
	g.handleDiscrete(in)

	step := g.cfg.Physics.FixedStepMs
	g.sim.Update(step)
	g.stepMs += step
	g.sim.AdvanceClock(g.stepMs)

	return core.StepResult{State: g.State()}
}

// Frame runs as many fixed ticks as the wall-clock time since the
// previous frame allows, then delivers the time to the run's timers.
func (g *Game) Frame(now time.Time, in core.InputFrame) core.StepResult {
	if !g.running() {
		return core.StepResult{State: g.State()}
	}
	g.held = in
	g.handleDiscrete(in)

	if g.origin.IsZero() {
		g.origin = now
	}
	nowMs := float64(now.Sub(g.origin)) / float64(time.Millisecond)
	// Timers armed during the drain count from this frame's time.
	g.sim.AdvanceClock(nowMs)
	g.loop.Frame(nowMs, g.sim.Update)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if !g.running() {
		return core.GameState{Loading: true}
	}
	return core.GameState{
		Score:       g.sim.Score(),
		Lives:       g.sim.Lives(),
		GameOver:    g.sim.GameOver(),
		Victory:     g.sim.Victory(),
		DeathByFall: g.sim.DeathByFall(),
		Paused:      g.sim.Paused(),
		Loading:     g.sim.Loading(),
	}
}

// Sim exposes the underlying simulation. It must not be used before
// Load returns.
func (g *Game) Sim() *sim.Simulation { return g.sim }
