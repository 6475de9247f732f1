package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// step oscillates the platform around its anchor and carries its rider.
func (pl *Platform) step(w *World, supportTolerance float64) {
	prevX, prevY := pl.X, pl.Y
	pl.carried = false

	if pl.MoveHorizontal {
		pl.X += pl.Speed * pl.Direction
		if math.Abs(pl.X-pl.OriginX) > pl.Range {
			pl.Direction = -pl.Direction
		}
	}
	if pl.MoveVertical {
		pl.Y += pl.Speed * pl.Direction
		if math.Abs(pl.Y-pl.OriginY) > pl.Range {
			pl.Direction = -pl.Direction
		}
	}
	pl.DX = pl.X - prevX
	pl.DY = pl.Y - prevY

	if pl.Rider != PlayerHandle {
		return
	}
	p := &w.Player
	if !pl.supports(p, prevX, prevY, supportTolerance) {
		pl.Rider = NoHandle
		return
	}
	p.X += pl.DX
	p.Y += pl.DY
	pl.carried = true
}

// supports reports whether the player still stands on the platform as it
// was positioned at (x, y) before this tick's move.
func (pl *Platform) supports(p *Player, x, y, tolerance float64) bool {
	if p.IsFallingIntoHole || p.VY < 0 {
		return false
	}
	if p.Right() <= x || p.Left() >= x+pl.W {
		return false
	}
	return math.Abs(p.Bottom()-y) <= tolerance
}

// step moves the enemy along its patrol.
func (e *Enemy) step(w *World, cfg *config.EnemyConfig) {
	if pl := w.Platform(e.OnPlatform); pl != nil {
		rel := e.PlatformOffsetX + e.VX
		if rel < 0 || rel+e.W > pl.W {
			e.VX = -e.VX
			rel = e.PlatformOffsetX + e.VX
		}
		e.PlatformOffsetX = rel
		e.X = pl.X + rel
		e.Y = pl.Y - e.H
	} else {
		e.X += e.VX
		outside := e.X < e.StartX-e.PatrolArea || e.X > e.StartX+e.PatrolArea
		if outside && e.turnCooldown <= 0 {
			e.VX = -e.VX
			e.turnCooldown = cfg.TurnCooldownTicks
		}
		if e.turnCooldown > 0 {
			e.turnCooldown--
		}
	}

	e.frameCounter++
	if e.frameCounter >= cfg.AnimationTicks {
		e.frameCounter = 0
		e.AnimFrame = (e.AnimFrame + 1) % 2
	}
}

// step spins the coin.
func (c *Coin) step(ticks int) {
	c.counter++
	if c.counter >= ticks {
		c.counter = 0
		c.Phase = (c.Phase + 1) % 4
	}
}

// step bobs the power-up.
func (pu *PowerUp) step(ticks int) {
	pu.counter++
	if pu.counter >= ticks {
		pu.counter = 0
		pu.bobFrame++
		pu.Y += math.Sin(float64(pu.bobFrame)*0.2) * 0.5
	}
}

// step drifts scenery against the player's horizontal velocity. Scenery
// left behind the camera re-enters at the right edge of the viewport.
func (b *Background) step(playerVX, cameraX, viewportW float64) {
	b.X -= playerVX * b.Parallax
	if b.Right() < cameraX {
		b.X = cameraX + viewportW
	}
}

// stepWorld runs one physics pass over every non-player entity. Cosmetic
// animation is skipped for entities flagged off-screen.
func stepWorld(w *World, cfg *config.PlatformerConfig, cameraX float64) {
	tolerance := 2*cfg.Collision.Margin + cfg.Physics.MaxFallSpeed
	for i := range w.Platforms {
		if w.Platforms[i].Active && w.Platforms[i].Moving() {
			w.Platforms[i].step(w, tolerance)
		}
	}
	for i := range w.Enemies {
		if w.Enemies[i].Active {
			w.Enemies[i].step(w, &cfg.Enemies)
		}
	}
	for i := range w.Coins {
		if w.Coins[i].Active && !w.Coins[i].Offscreen {
			w.Coins[i].step(cfg.Animation.CoinTicks)
		}
	}
	for i := range w.Backgrounds {
		w.Backgrounds[i].step(w.Player.VX, cameraX, cfg.World.ViewportWidth)
	}
	for i := range w.PowerUps {
		if w.PowerUps[i].Active && !w.PowerUps[i].Offscreen {
			w.PowerUps[i].step(cfg.Animation.PowerUpBob)
		}
	}
}

// markVisibility flags entities outside the camera window so renderers can
// skip them. Purely cosmetic: gameplay never reads the flag.
func markVisibility(w *World, cameraX, viewportW float64) {
	left, right := cameraX, cameraX+viewportW
	off := func(b *Body) {
		b.Offscreen = b.Right() < left || b.Left() > right
	}
	for i := range w.Platforms {
		off(&w.Platforms[i].Body)
	}
	for i := range w.Enemies {
		off(&w.Enemies[i].Body)
	}
	for i := range w.Coins {
		off(&w.Coins[i].Body)
	}
	for i := range w.PowerUps {
		off(&w.PowerUps[i].Body)
	}
	for i := range w.Checkpoints {
		off(&w.Checkpoints[i].Body)
	}
}
