package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

const testStep = 1000.0 / 60.0

func testConfig() config.PlatformerConfig {
	return config.DefaultPlatformerConfig()
}

func staticLevel(d LevelData) LevelSource {
	return LevelSourceFunc(func() (LevelData, error) {
		return d.Clone(), nil
	})
}

func newTestSim(t *testing.T, cfg config.PlatformerConfig, d LevelData, in Input) *Simulation {
	t.Helper()
	s := New(cfg, staticLevel(d), in)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

func runTicks(s *Simulation, n int) {
	for range n {
		s.Update(testStep)
	}
}

// groundPlayer puts the player at rest on the ground at x.
func groundPlayer(s *Simulation, x float64) {
	p := s.Player()
	p.X = x
	p.Y = s.cfg.World.GroundHeight - p.H
	p.VY = 0
	p.IsJumping = false
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
