package platformer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// Minimum screen size the world is drawn at.
const (
	minScreenW = 40
	minScreenH = 12
)

// Ground glyphs
const (
	GrassChar = '▀'
	EarthChar = '░'
)

// fallback describes the primitive shape drawn when a sprite is missing.
type fallback struct {
	fill  rune
	color core.Color
}

var fallbacks = map[sim.Kind]fallback{
	sim.KindPlayer:     {'█', core.ColorBrightCyan},
	sim.KindEnemy:      {'▓', core.ColorRed},
	sim.KindPlatform:   {'▬', core.ColorBrown},
	sim.KindCoin:       {'●', core.ColorGold},
	sim.KindPowerUp:    {'◆', core.ColorMagenta},
	sim.KindCheckpoint: {'▌', core.ColorYellow},
	sim.KindBackground: {'░', core.ColorGray},
}

var markerColors = map[sim.Marker]core.Color{
	sim.MarkerWarm: core.ColorOrange,
	sim.MarkerCool: core.ColorBrightBlue,
	sim.MarkerGold: core.ColorGold,
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if err := g.Err(); err != nil {
		g.drawCenteredBox(dst, "Level failed to load", err.Error())
		return
	}
	if !g.running() {
		msg := fmt.Sprintf("Loading... %d%%", int(g.Progress()*100))
		dst.DrawTextCentered(dst.Height()/2, msg, core.ColorDefault)
		return
	}
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorDefault)
		return
	}

	vp := g.viewport(dst)
	g.renderGround(dst, vp)
	g.renderWorld(dst, vp)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// viewport projects the camera window below the HUD row.
func (g *Game) viewport(dst *core.Screen) core.Viewport {
	return core.Viewport{
		WorldW:    g.cfg.World.ViewportWidth,
		WorldH:    g.cfg.World.ViewportHeight,
		Cols:      dst.Width(),
		Rows:      dst.Height() - 1,
		OriginX:   g.sim.Camera().X,
		OffsetRow: 1,
	}
}

// renderGround draws the ground strip with holes where the hazards are.
func (g *Game) renderGround(dst *core.Screen, vp core.Viewport) {
	w := g.sim.World()
	_, top := vp.ToCell(0, g.cfg.World.GroundHeight)

	for col := range dst.Width() {
		x := vp.OriginX + (float64(col)+0.5)*vp.CellW()
		if x < 0 || x >= g.cfg.World.WorldWidth || inHazard(w.Hazards, x) {
			continue
		}
		dst.SetColored(col, top, GrassChar, core.ColorGreen)
		for row := top + 1; row < dst.Height(); row++ {
			dst.SetColored(col, row, EarthChar, core.ColorBrown)
		}
	}
}

func inHazard(hazards []sim.Hazard, x float64) bool {
	for _, h := range hazards {
		if h.Contains(x) {
			return true
		}
	}
	return false
}

// renderWorld draws every active entity in draw order.
func (g *Game) renderWorld(dst *core.Screen, vp core.Viewport) {
	blinkOff := g.blinkOff()
	g.sim.World().Each(func(e sim.Entity) {
		d := e.Draw()
		if d.Blink && blinkOff {
			return
		}
		g.drawEntity(dst, vp, d)
	})
}

// blinkOff reports whether invulnerable sprites are hidden this tick.
func (g *Game) blinkOff() bool {
	period := float64(g.cfg.Animation.BlinkPeriod)
	if period <= 0 {
		return false
	}
	elapsed := float64(g.sim.Ticks()) * g.cfg.Physics.FixedStepMs
	return int(elapsed/period)%2 == 1
}

// drawEntity draws one entity, shrunk by its alpha while it fades.
func (g *Game) drawEntity(dst *core.Screen, vp core.Viewport, d sim.Drawable) {
	if d.Alpha <= 0 {
		return
	}
	box := d.Box
	if d.Alpha < 1 {
		cx := box.CenterX()
		box.W *= d.Alpha
		box.H *= d.Alpha
		box.X = cx - box.W/2
	}

	r := vp.Project(box.X, box.Y, box.W, box.H)
	if r.Right() <= 0 || r.X >= dst.Width() {
		return
	}

	if img, ok := g.assets.Image(d.Key); ok {
		for row := range r.H {
			for col := range r.W {
				ch := img.Sample(col, row, r.W, r.H, d.FlipX)
				if ch != ' ' {
					dst.SetColored(r.X+col, r.Y+row, ch, img.Color)
				}
			}
		}
	} else {
		drawFallback(dst, r, d)
	}

	if c, ok := markerColors[d.Marker]; ok {
		mid := r.Y + r.H/2
		dst.SetColored(r.X-1, mid, '[', c)
		dst.SetColored(r.Right(), mid, ']', c)
	}
}

// drawFallback draws the primitive shape for an entity without a sprite.
func drawFallback(dst *core.Screen, r core.Rect, d sim.Drawable) {
	fb, ok := fallbacks[d.Kind]
	if !ok {
		fb = fallback{'?', core.ColorDefault}
	}
	if d.Kind == sim.KindCheckpoint {
		// Pole with a flag at the top
		color := fb.color
		if d.Key == "checkpoint_active" {
			color = core.ColorBrightGreen
		}
		for row := range r.H {
			dst.SetColored(r.X, r.Y+row, '│', core.ColorWhite)
		}
		dst.DrawHLine(r.X+1, r.Y, core.Max(r.W-1, 1), fb.fill, color)
		return
	}
	dst.DrawRect(r, fb.fill, fb.color)
}

// renderHUD draws score, lives and the active power-up on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.sim.Score())
	dst.DrawText(1, 0, scoreText)

	lives := max(g.sim.Lives(), 0)
	livesText := "Lives: " + strings.Repeat("♥", lives)
	dst.DrawTextCentered(0, livesText, core.ColorBrightRed)

	right := g.level.Name
	color := core.ColorGray
	if typ, ms := g.sim.PowerUp(); typ != sim.PowerUpNone {
		right = fmt.Sprintf("%s %.1fs", strings.ToUpper(typ.String()), math.Max(ms, 0)/1000)
		color = markerColors[powerUpMarker(typ)]
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, color)
}

func powerUpMarker(t sim.PowerUpType) sim.Marker {
	switch t {
	case sim.PowerUpSpeed:
		return sim.MarkerWarm
	case sim.PowerUpJump:
		return sim.MarkerCool
	case sim.PowerUpInvincibility:
		return sim.MarkerGold
	}
	return sim.MarkerNone
}

// Overlay titles by how the run ended.
const (
	TitleVictory  = "Victory!"
	TitleFell     = "Fatal Fall!"
	TitleGameOver = "Game Over"
)

// OutcomeTitle returns the game-over headline for a finished run.
func OutcomeTitle(st core.GameState) string {
	switch {
	case st.Victory:
		return TitleVictory
	case st.DeathByFall:
		return TitleFell
	default:
		return TitleGameOver
	}
}

// renderOverlay draws pause and game-over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	st := g.State()
	switch {
	case st.GameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", st.Score)
		g.drawCenteredBox(dst, OutcomeTitle(st), subtitle)
	case st.Paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
