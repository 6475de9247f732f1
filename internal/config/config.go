// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains every tunable of the platformer simulation.
type PlatformerConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	World     WorldConfig     `yaml:"world"`
	Enemies   EnemyConfig     `yaml:"enemies"`
	Collision CollisionConfig `yaml:"collision"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	PowerUps  PowerUpConfig   `yaml:"power_ups"`
	Hazard    HazardConfig    `yaml:"hazard"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
	Input     InputConfig     `yaml:"input"`
}

// PhysicsConfig defines the kinematic model. Velocities are in pixels per tick.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpForce    float64 `yaml:"jump_force"` // Negative: Y grows downward
	MoveSpeed    float64 `yaml:"move_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	FixedStepMs  float64 `yaml:"fixed_step_ms"`
}

// PlayerConfig defines the player body and damage rules.
type PlayerConfig struct {
	Width                   float64 `yaml:"width"`
	Height                  float64 `yaml:"height"`
	StartX                  float64 `yaml:"start_x"`
	StartY                  float64 `yaml:"start_y"`
	Lives                   int     `yaml:"lives"`
	DamageInvulnerabilityMs float64 `yaml:"damage_invulnerability_ms"`
	Knockback               float64 `yaml:"knockback"`
}

// WorldConfig defines the visible window and the ground line.
type WorldConfig struct {
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
	GroundHeight   float64 `yaml:"ground_height"` // Y of the ground surface
	PlatformHeight float64 `yaml:"platform_height"`
	WorldWidth     float64 `yaml:"world_width"` // Extent of the drawn ground
	GoalX          float64 `yaml:"goal_x"`      // Reaching this x wins the run
}

// EnemyConfig defines patrolling enemies.
type EnemyConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Speed             float64 `yaml:"speed"`
	TurnCooldownTicks int     `yaml:"turn_cooldown_ticks"`
	AnimationTicks    int     `yaml:"animation_ticks"`
}

// CollisionConfig defines overlap margins and stomp classification.
type CollisionConfig struct {
	Margin               float64 `yaml:"margin"`
	StompMargin          float64 `yaml:"stomp_margin"`
	MinHorizontalOverlap float64 `yaml:"min_horizontal_overlap"`
	StompBounce          float64 `yaml:"stomp_bounce"` // Fraction of jump force
	StompLift            float64 `yaml:"stomp_lift"`   // Overlap kept after a stomp
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	Coin        int `yaml:"coin"`
	EnemyDefeat int `yaml:"enemy_defeat"`
}

// PowerUpConfig defines the timed overlay modifiers.
type PowerUpConfig struct {
	DurationMs      float64 `yaml:"duration_ms"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	JumpMultiplier  float64 `yaml:"jump_multiplier"`
	InvincibilityMs float64 `yaml:"invincibility_ms"`
}

// HazardConfig defines the gap fall sequence.
type HazardConfig struct {
	DeathDelayMs      float64 `yaml:"death_delay_ms"`
	FadeRate          float64 `yaml:"fade_rate"` // fallScale lost per elapsed ms
	EntryVelocity     float64 `yaml:"entry_velocity"`
	GravityMultiplier float64 `yaml:"gravity_multiplier"`
	GroundTolerance   float64 `yaml:"ground_tolerance"`
}

// CameraConfig defines horizontal follow smoothing.
type CameraConfig struct {
	LeadFraction float64 `yaml:"lead_fraction"` // Player sits this far into the viewport
	Smoothing    float64 `yaml:"smoothing"`     // Share of remaining distance per tick
}

// AnimationConfig defines animation cadences in ticks.
type AnimationConfig struct {
	FrameTicks  int `yaml:"frame_ticks"`
	CoinTicks   int `yaml:"coin_ticks"`
	PowerUpBob  int `yaml:"power_up_bob_ticks"`
	BlinkPeriod int `yaml:"blink_period_ms"` // Invulnerability blink half-period
}

// InputConfig defines how terminal key presses become held actions.
type InputConfig struct {
	HoldMs int `yaml:"hold_ms"`
}

// ErrInvalidConfig is returned when a loaded configuration cannot drive a simulation.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the values the simulation divides by or loops on.
func (c PlatformerConfig) Validate() error {
	switch {
	case c.Physics.FixedStepMs <= 0:
		return fmt.Errorf("%w: physics.fixed_step_ms must be positive", ErrInvalidConfig)
	case c.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: physics.max_fall_speed must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.World.ViewportWidth <= 0 || c.World.ViewportHeight <= 0:
		return fmt.Errorf("%w: world viewport must be positive", ErrInvalidConfig)
	case c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1:
		return fmt.Errorf("%w: camera.smoothing must be in (0, 1]", ErrInvalidConfig)
	case c.Animation.FrameTicks <= 0:
		return fmt.Errorf("%w: animation.frame_ticks must be positive", ErrInvalidConfig)
	}
	return nil
}
