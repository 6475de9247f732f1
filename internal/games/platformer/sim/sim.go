package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Simulation owns one platformer run: the world, score, lives, the
// power-up overlay, the camera and the hazard timers.
//
// A Simulation is not safe for concurrent use. All calls, including timer
// delivery through AdvanceClock, must come from the same goroutine.
type Simulation struct {
	cfg   config.PlatformerConfig
	level LevelSource
	input Input

	world  World
	camera Camera
	mods   ModifierState
	timers TimerQueue

	epoch   uint64
	clockMs float64
	ticks   uint64

	score       int
	gameOver    bool
	victory     bool
	deathByFall bool
	paused      bool
	loading     bool
}

// New creates a simulation in the loading state. Call Init once resources
// are ready.
func New(cfg config.PlatformerConfig, level LevelSource, input Input) *Simulation {
	if input == nil {
		input = NoInput
	}
	return &Simulation{
		cfg:     cfg,
		level:   level,
		input:   input,
		mods:    NewModifierState(BaseTuning(cfg.Physics)),
		loading: true,
	}
}

// Init builds the first run and leaves the loading state.
func (s *Simulation) Init() error {
	if err := s.Reset(); err != nil {
		return err
	}
	s.loading = false
	return nil
}

// Reset starts a new run from a freshly generated level. On failure the
// current run is left as it was.
func (s *Simulation) Reset() error {
	data, err := s.level.GenerateLevel()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLevelGeneration, err)
	}
	if err := data.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrLevelGeneration, err)
	}
	data = data.Clone()

	pc := s.cfg.Player
	s.world = World{
		Player:      NewPlayer(pc.StartX, pc.StartY, pc.Width, pc.Height, pc.Lives),
		Platforms:   data.Platforms,
		Enemies:     data.Enemies,
		Coins:       data.Coins,
		PowerUps:    data.PowerUps,
		Checkpoints: data.Checkpoints,
		Backgrounds: data.Backgrounds,
		Hazards:     data.Hazards,
		GoalX:       s.cfg.World.GoalX,
	}
	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		if pl := s.world.Platform(e.OnPlatform); pl != nil {
			e.X = pl.X + e.PlatformOffsetX
			e.Y = pl.Y - e.H
		}
	}

	s.epoch++
	s.timers.Clear()
	s.camera = Camera{}
	s.mods = NewModifierState(BaseTuning(s.cfg.Physics))
	s.ticks = 0
	s.score = 0
	s.gameOver = false
	s.victory = false
	s.deathByFall = false
	s.paused = false
	return nil
}

// Update advances the run by one fixed step of dtMs. It does nothing while
// loading, paused or after the run has ended.
func (s *Simulation) Update(dtMs float64) {
	if s.loading || s.gameOver || s.paused {
		return
	}
	s.ticks++
	p := &s.world.Player

	s.checkHazards()

	if p.X >= s.world.GoalX {
		s.endRun(true)
		return
	}

	markVisibility(&s.world, s.camera.X, s.cfg.World.ViewportWidth)
	s.tickPowerUp(dtMs)

	if p.IsFallingIntoHole {
		if p.fall(dtMs, &s.cfg) {
			s.fallDeath()
		}
	} else {
		p.applyInput(s.input, s.mods.Tuning())
		p.integrate(dtMs, &s.cfg)
	}

	stepWorld(&s.world, &s.cfg, s.camera.X)

	if !p.IsFallingIntoHole {
		s.resolveCollisions()
	}

	s.camera.Follow(p.X, s.cfg.World.ViewportWidth, s.cfg.Camera.LeadFraction, s.cfg.Camera.Smoothing)
}

// AdvanceClock delivers wall-clock time to the real-time timers. Timers
// armed in an earlier run are discarded.
func (s *Simulation) AdvanceClock(nowMs float64) {
	s.clockMs = nowMs
	s.timers.Advance(nowMs, s.epoch)
}

// TogglePause pauses or resumes a run in progress.
func (s *Simulation) TogglePause() {
	if s.gameOver || s.loading {
		return
	}
	s.paused = !s.paused
}

func (s *Simulation) endRun(victory bool) {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.victory = victory
}

// SetInput replaces the input collaborator.
func (s *Simulation) SetInput(in Input) {
	if in == nil {
		in = NoInput
	}
	s.input = in
}

// Config returns the configuration the run was built with.
func (s *Simulation) Config() config.PlatformerConfig { return s.cfg }

// World exposes the arena. Callers must treat it as read-only.
func (s *Simulation) World() *World { return &s.world }

// Player returns the player entity.
func (s *Simulation) Player() *Player { return &s.world.Player }

// Camera returns the camera.
func (s *Simulation) Camera() Camera { return s.camera }

// Score returns the current score.
func (s *Simulation) Score() int { return s.score }

// Lives returns the player's remaining lives.
func (s *Simulation) Lives() int { return s.world.Player.Lives }

// GameOver reports whether the run has ended.
func (s *Simulation) GameOver() bool { return s.gameOver }

// Victory reports whether the run ended by reaching the goal.
func (s *Simulation) Victory() bool { return s.victory }

// DeathByFall reports whether the run ended in a gap.
func (s *Simulation) DeathByFall() bool { return s.deathByFall }

// Paused reports whether updates are suspended.
func (s *Simulation) Paused() bool { return s.paused }

// Loading reports whether Init has not yet completed.
func (s *Simulation) Loading() bool { return s.loading }

// Ticks returns the number of steps run since the last reset.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Epoch identifies the current run. It changes on every successful reset.
func (s *Simulation) Epoch() uint64 { return s.epoch }

// PowerUp returns the active modifier and its remaining time.
func (s *Simulation) PowerUp() (PowerUpType, float64) {
	return s.mods.Active, s.mods.RemainingMs
}

// Tuning returns the effective move speed and jump force.
func (s *Simulation) Tuning() Tuning { return s.mods.Tuning() }

// PendingTimers returns the number of armed real-time timers.
func (s *Simulation) PendingTimers() int { return s.timers.Len() }
