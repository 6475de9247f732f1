package sim

import "github.com/vovakirdan/tui-platformer/internal/config"

// Tuning holds the player values power-ups modify. Base tuning comes from
// config and is never mutated; modifiers derive new values from it.
type Tuning struct {
	MoveSpeed float64
	JumpForce float64
}

// BaseTuning extracts the unmodified tuning from physics config.
func BaseTuning(p config.PhysicsConfig) Tuning {
	return Tuning{MoveSpeed: p.MoveSpeed, JumpForce: p.JumpForce}
}

// applyInput sets horizontal velocity and starts jumps from held actions.
func (p *Player) applyInput(in Input, t Tuning) {
	switch {
	case in.IsActionHeld(ActionMoveLeft):
		p.VX = -t.MoveSpeed
		p.Facing = -1
	case in.IsActionHeld(ActionMoveRight):
		p.VX = t.MoveSpeed
		p.Facing = 1
	default:
		p.VX = 0
	}

	if in.IsActionHeld(ActionJump) && !p.IsJumping {
		p.VY = t.JumpForce
		p.IsJumping = true
		p.Y-- // Lift off so the support surface no longer overlaps
	}
}

// integrate advances the player one tick: gravity, terminal velocity,
// position, world bounds, ground, invulnerability and animation.
func (p *Player) integrate(dtMs float64, cfg *config.PlatformerConfig) {
	p.VY += cfg.Physics.Gravity
	if p.VY > cfg.Physics.MaxFallSpeed {
		p.VY = cfg.Physics.MaxFallSpeed
	}

	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 {
		p.X = 0
		p.VX = 0
	}
	if p.Bottom() > cfg.World.GroundHeight {
		p.Y = cfg.World.GroundHeight - p.H
		p.VY = 0
		p.IsJumping = false
	}

	if p.Invulnerable {
		p.InvulnerableMs -= dtMs
		if p.InvulnerableMs <= 0 {
			p.InvulnerableMs = 0
			p.Invulnerable = false
		}
	}

	p.setState(movementState(p.IsJumping, p.VX))
	p.advanceAnimation(cfg.Animation.FrameTicks)
}

// enterFall starts the terminal hole sequence centered over gap h.
func (p *Player) enterFall(h Hazard, entryVelocity float64) {
	p.IsFallingIntoHole = true
	p.FallScale = 1
	p.X = h.Center() - p.W/2
	p.VX = 0
	p.VY = entryVelocity
	p.setState(AnimFallingIntoHole)
}

// fall advances the hole sequence. Reports true once the fade completes.
func (p *Player) fall(dtMs float64, cfg *config.PlatformerConfig) bool {
	p.VY += cfg.Physics.Gravity * cfg.Hazard.GravityMultiplier
	p.Y += p.VY
	p.FallScale -= cfg.Hazard.FadeRate * dtMs
	if p.FallScale <= 0 {
		p.FallScale = 0
		return true
	}
	return false
}
