package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:      0.5,
			JumpForce:    -12,
			MoveSpeed:    5,
			MaxFallSpeed: 15,
			FixedStepMs:  1000.0 / 60.0,
		},
		Player: PlayerConfig{
			Width:                   60,
			Height:                  90,
			StartX:                  100,
			StartY:                  300,
			Lives:                   1,
			DamageInvulnerabilityMs: 2000,
			Knockback:               10,
		},
		World: WorldConfig{
			ViewportWidth:  800,
			ViewportHeight: 600,
			GroundHeight:   500,
			PlatformHeight: 20,
			WorldWidth:     5000,
			GoalX:          3800,
		},
		Enemies: EnemyConfig{
			Width:             60,
			Height:            60,
			Speed:             0.8,
			TurnCooldownTicks: 30,
			AnimationTicks:    30,
		},
		Collision: CollisionConfig{
			Margin:               2,
			StompMargin:          15,
			MinHorizontalOverlap: 10,
			StompBounce:          0.6,
			StompLift:            2,
		},
		Scoring: ScoringConfig{
			Coin:        50,
			EnemyDefeat: 100,
		},
		PowerUps: PowerUpConfig{
			DurationMs:      5000,
			SpeedMultiplier: 1.5,
			JumpMultiplier:  1.3,
			InvincibilityMs: 5000,
		},
		Hazard: HazardConfig{
			DeathDelayMs:      1500,
			FadeRate:          0.002,
			EntryVelocity:     -5,
			GravityMultiplier: 1.5,
			GroundTolerance:   5,
		},
		Camera: CameraConfig{
			LeadFraction: 1.0 / 3.0,
			Smoothing:    0.1,
		},
		Animation: AnimationConfig{
			FrameTicks:  10,
			CoinTicks:   10,
			PowerUpBob:  5,
			BlinkPeriod: 100,
		},
		Input: InputConfig{
			HoldMs: 200,
		},
	}
}
