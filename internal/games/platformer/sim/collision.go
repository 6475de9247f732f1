package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Overlaps reports whether a and b intersect after both are shrunk by
// margin on every side.
func Overlaps(a, b Box, margin float64) bool {
	a, b = a.Shrink(margin), b.Shrink(margin)
	return a.Left() < b.Right() &&
		a.Right() > b.Left() &&
		a.Top() < b.Bottom() &&
		a.Bottom() > b.Top()
}

// Side is the face of a platform a collision was resolved against.
type Side uint8

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// ResolvePlatform pushes the player out of an overlapping platform along
// the axis of minimum penetration. Sides are tried in the order top,
// bottom, left, right; a side applies only when its penetration is the
// minimum and the player moves toward it. Returns the resolved side.
func ResolvePlatform(p *Player, pl *Platform) Side {
	top := p.Bottom() - pl.Top()
	bottom := pl.Bottom() - p.Top()
	left := p.Right() - pl.Left()
	right := pl.Right() - p.Left()
	least := math.Min(math.Min(top, bottom), math.Min(left, right))

	switch {
	case top == least && p.VY >= 0:
		p.Y = pl.Top() - p.H
		p.VY = 0
		p.IsJumping = false
		return SideTop
	case bottom == least && p.VY < 0:
		p.Y = pl.Bottom()
		p.VY = 0
		return SideBottom
	case left == least && p.VX > 0:
		p.X = pl.Left() - p.W
		p.VX = 0
		return SideLeft
	case right == least && p.VX < 0:
		p.X = pl.Right()
		p.VX = 0
		return SideRight
	}
	return SideNone
}

// Contact is the outcome of touching an enemy.
type Contact uint8

const (
	ContactDamage Contact = iota
	ContactStomp
)

// ClassifyEnemyContact decides whether a touching player stomps the enemy
// or takes damage. A stomp needs the player's feet within the stomp margin
// of the enemy's top, a non-rising player and enough horizontal overlap on
// both sides.
func ClassifyEnemyContact(player, enemy Box, vy float64, c config.CollisionConfig) Contact {
	if player.Bottom() <= enemy.Top()+c.StompMargin &&
		vy >= 0 &&
		player.Right()-enemy.Left() > c.MinHorizontalOverlap &&
		enemy.Right()-player.Left() > c.MinHorizontalOverlap {
		return ContactStomp
	}
	return ContactDamage
}

// resolveCollisions runs every player contact for one tick. Landing on a
// moving platform attaches the player as its rider.
func (s *Simulation) resolveCollisions() {
	w := &s.world
	p := &w.Player
	margin := s.cfg.Collision.Margin

	for i := range w.Platforms {
		pl := &w.Platforms[i]
		if !pl.Active || !Overlaps(p.Box, pl.Box, margin) {
			continue
		}
		if ResolvePlatform(p, pl) != SideTop || !pl.Moving() {
			continue
		}
		if !pl.carried {
			p.X += pl.DX
			p.Y += pl.DY
		}
		pl.Rider = PlayerHandle
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Active || !Overlaps(p.Box, e.Box, margin) {
			continue
		}
		switch ClassifyEnemyContact(p.Box, e.Box, p.VY, s.cfg.Collision) {
		case ContactStomp:
			e.Active = false
			p.VY = s.mods.Tuning().JumpForce * s.cfg.Collision.StompBounce
			p.Y = e.Top() - p.H + s.cfg.Collision.StompLift
			s.score += s.cfg.Scoring.EnemyDefeat
		case ContactDamage:
			if p.Invulnerable {
				continue
			}
			kb := s.cfg.Player.Knockback
			if p.X < e.X {
				p.X -= kb
				p.VX = -kb
			} else {
				p.X += kb
				p.VX = kb
			}
			if p.LoseLife(s.cfg.Player.DamageInvulnerabilityMs) {
				s.endRun(false)
			}
		}
	}

	for i := range w.Coins {
		c := &w.Coins[i]
		if c.Active && Overlaps(p.Box, c.Box, margin) {
			c.Active = false
			s.score += s.cfg.Scoring.Coin
		}
	}

	for i := range w.PowerUps {
		pu := &w.PowerUps[i]
		if pu.Active && Overlaps(p.Box, pu.Box, margin) {
			pu.Active = false
			s.activatePowerUp(pu.Type)
		}
	}

	for i := range w.Checkpoints {
		c := &w.Checkpoints[i]
		if c.Active && !c.Activated && Overlaps(p.Box, c.Box, margin) {
			c.Activated = true
			s.endRun(true)
		}
	}
}
