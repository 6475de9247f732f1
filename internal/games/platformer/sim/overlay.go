package sim

import "github.com/vovakirdan/tui-platformer/internal/config"

// ModifierState is the power-up overlay of one run: which modifier is
// active, how long it has left and the tuning derived from the base.
type ModifierState struct {
	Active      PowerUpType
	RemainingMs float64
	base        Tuning
	current     Tuning
}

// NewModifierState returns an overlay with nothing active.
func NewModifierState(base Tuning) ModifierState {
	return ModifierState{base: base, current: base}
}

// Tuning returns the effective tuning.
func (m *ModifierState) Tuning() Tuning { return m.current }

// Base returns the unmodified tuning.
func (m *ModifierState) Base() Tuning { return m.base }

// ApplyModifier derives the tuning a power-up installs over base.
func ApplyModifier(base Tuning, t PowerUpType, cfg config.PowerUpConfig) Tuning {
	switch t {
	case PowerUpSpeed:
		base.MoveSpeed *= cfg.SpeedMultiplier
	case PowerUpJump:
		base.JumpForce *= cfg.JumpMultiplier
	}
	return base
}

func (m *ModifierState) apply(t PowerUpType, cfg config.PowerUpConfig) {
	m.Active = t
	m.RemainingMs = cfg.DurationMs
	m.current = ApplyModifier(m.base, t, cfg)
}

func (m *ModifierState) revert() {
	m.Active = PowerUpNone
	m.RemainingMs = 0
	m.current = m.base
}

// powerUpLook maps a power-up to the frame shown in every state and the
// marker drawn around the player.
var powerUpLook = map[PowerUpType]struct {
	frame  string
	marker Marker
}{
	PowerUpSpeed:         {"player_speed", MarkerWarm},
	PowerUpJump:          {"player_jump_power", MarkerCool},
	PowerUpInvincibility: {"player_invincible", MarkerGold},
}

// activatePowerUp installs a modifier. A modifier still active is fully
// reverted first, so expiry always returns to the base values and frames.
func (s *Simulation) activatePowerUp(t PowerUpType) {
	look, ok := powerUpLook[t]
	if !ok {
		return
	}
	if s.mods.Active != PowerUpNone {
		s.expirePowerUp()
	}

	p := &s.world.Player
	snap := p.Frames.Snapshot()
	p.Snapshot = &snap

	s.mods.apply(t, s.cfg.PowerUps)
	if t == PowerUpInvincibility {
		p.MakeInvulnerable(s.cfg.PowerUps.InvincibilityMs)
	}
	p.Frames = UniformFrames(look.frame)
	p.Marker = look.marker
	p.restartAnimation()
}

// expirePowerUp restores base tuning, the snapshot frames and the marker.
func (s *Simulation) expirePowerUp() {
	p := &s.world.Player
	s.mods.revert()
	if p.Snapshot != nil {
		p.Frames = *p.Snapshot
		p.Snapshot = nil
		p.restartAnimation()
	}
	p.Marker = MarkerNone
}

// tickPowerUp counts down the active modifier.
func (s *Simulation) tickPowerUp(dtMs float64) {
	if s.mods.Active == PowerUpNone {
		return
	}
	s.mods.RemainingMs -= dtMs
	if s.mods.RemainingMs <= 0 {
		s.expirePowerUp()
	}
}
