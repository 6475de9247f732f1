package levels

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// ErrInvalidLevel is returned when a level description fails validation.
var ErrInvalidLevel = errors.New("invalid level")

// Pickup and flag sizes in world pixels.
const (
	coinSize         = 40
	powerUpSize      = 40
	checkpointWidth  = 30
	checkpointHeight = 50
)

var enemyTypes = map[string]bool{"enemy1": true, "enemy2": true, "enemy3": true}

// Problems lists everything wrong with a level description.
func Problems(l formats.Level, cfg config.PlatformerConfig) []error {
	var problems []error
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if l.ID == "" {
		add("missing id")
	}
	if len(l.Checkpoints) == 0 {
		add("no checkpoint: the level has no goal")
	}

	for i, p := range l.Platforms {
		if p.W <= 0 {
			add("platform %d: width %g must be positive", i, p.W)
		}
		switch p.Move {
		case "":
		case "horizontal", "vertical":
			if p.Range <= 0 || p.Speed <= 0 {
				add("platform %d: moving platform needs positive range and speed", i)
			}
		default:
			add("platform %d: unknown move %q", i, p.Move)
		}
	}

	for i, e := range l.Enemies {
		if !enemyTypes[e.Type] {
			add("enemy %d: unknown type %q", i, e.Type)
		}
		if e.Platform != nil {
			idx := *e.Platform
			if idx < 0 || idx >= len(l.Platforms) {
				add("enemy %d: platform %d does not exist", i, idx)
				continue
			}
			if e.Offset < 0 || e.Offset+cfg.Enemies.Width > l.Platforms[idx].W {
				add("enemy %d: offset %g does not fit on platform %d", i, e.Offset, idx)
			}
		} else if e.Patrol < 0 {
			add("enemy %d: negative patrol %g", i, e.Patrol)
		}
	}

	for i, pu := range l.PowerUps {
		if _, ok := sim.ParsePowerUpType(pu.Type); !ok {
			add("power-up %d: unknown type %q", i, pu.Type)
		}
	}

	hazards := append([]formats.Hazard(nil), l.Hazards...)
	sort.Slice(hazards, func(i, j int) bool { return hazards[i].X < hazards[j].X })
	for i, h := range hazards {
		if h.Width <= 0 {
			add("hazard at x=%g: width %g must be positive", h.X, h.Width)
		}
		if i > 0 && hazards[i-1].X+hazards[i-1].Width > h.X {
			add("hazard at x=%g overlaps hazard at x=%g", h.X, hazards[i-1].X)
		}
	}

	start := cfg.Player.StartX + cfg.Player.Width/2
	for _, h := range l.Hazards {
		if start >= h.X && start < h.X+h.Width {
			add("hazard at x=%g swallows the player start", h.X)
		}
	}

	return problems
}

// Validate returns ErrInvalidLevel wrapping every problem found.
func Validate(l formats.Level, cfg config.PlatformerConfig) error {
	problems := Problems(l, cfg)
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %w", ErrInvalidLevel, l.ID, errors.Join(problems...))
}

// Build turns a level description into simulation entities sized by cfg.
func Build(l formats.Level, cfg config.PlatformerConfig) (sim.LevelData, error) {
	if err := Validate(l, cfg); err != nil {
		return sim.LevelData{}, err
	}

	ground := cfg.World.GroundHeight
	ec := cfg.Enemies
	var d sim.LevelData

	for _, p := range l.Platforms {
		d.Platforms = append(d.Platforms, sim.NewPlatform(p.X, p.Y, p.W, cfg.World.PlatformHeight,
			p.Move == "horizontal", p.Move == "vertical", p.Range, p.Speed))
	}

	for _, e := range l.Enemies {
		if e.Platform != nil {
			d.Enemies = append(d.Enemies, sim.NewPlatformEnemy(sim.Handle(*e.Platform), e.Offset, ec.Width, ec.Height, ec.Speed, e.Type))
			continue
		}
		y := ground - ec.Height
		if e.Y != nil {
			y = *e.Y
		}
		d.Enemies = append(d.Enemies, sim.NewGroundEnemy(e.X, y, ec.Width, ec.Height, e.Patrol, ec.Speed, e.Type))
	}

	for _, c := range l.Coins {
		d.Coins = append(d.Coins, sim.NewCoin(c.X, c.Y, coinSize))
	}
	for _, pu := range l.PowerUps {
		typ, _ := sim.ParsePowerUpType(pu.Type)
		d.PowerUps = append(d.PowerUps, sim.NewPowerUp(pu.X, pu.Y, powerUpSize, typ))
	}
	for _, c := range l.Checkpoints {
		d.Checkpoints = append(d.Checkpoints, sim.NewCheckpoint(c.X, c.Y, checkpointWidth, checkpointHeight))
	}
	for _, b := range l.Backgrounds {
		d.Backgrounds = append(d.Backgrounds, sim.NewBackground(b.X, b.Y, b.W, b.H, b.Type, b.Parallax))
	}
	for _, h := range l.Hazards {
		d.Hazards = append(d.Hazards, sim.Hazard{X: h.X, Width: h.Width})
	}

	return d, nil
}
