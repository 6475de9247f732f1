package sim

import "testing"

func TestGravityAndTerminalVelocity(t *testing.T) {
	s := newTestSim(t, testConfig(), LevelData{}, NoInput)
	p := s.Player()

	s.Update(testStep)
	if !approx(p.VY, 0.5) || !approx(p.Y, 300.5) {
		t.Fatalf("after one tick: vy=%v y=%v, want 0.5 and 300.5", p.VY, p.Y)
	}

	// Disable the ground so the fall never ends
	s.cfg.World.GroundHeight = 1e9
	for range 200 {
		s.Update(testStep)
		if p.VY > s.cfg.Physics.MaxFallSpeed {
			t.Fatalf("vy=%v exceeds max fall speed", p.VY)
		}
	}
	if !approx(p.VY, s.cfg.Physics.MaxFallSpeed) {
		t.Errorf("vy=%v, want terminal %v", p.VY, s.cfg.Physics.MaxFallSpeed)
	}
}

func TestGroundSnap(t *testing.T) {
	s := newTestSim(t, testConfig(), LevelData{}, NoInput)
	p := s.Player()
	p.IsJumping = true

	runTicks(s, 100)

	if p.Bottom() != s.cfg.World.GroundHeight {
		t.Errorf("bottom=%v, want ground %v", p.Bottom(), s.cfg.World.GroundHeight)
	}
	if p.VY != 0 {
		t.Errorf("vy=%v, want 0 on ground", p.VY)
	}
	if p.IsJumping {
		t.Error("landing should clear IsJumping")
	}
}

func TestJumpOnlyWhenNotJumping(t *testing.T) {
	held := HeldSet{}
	s := newTestSim(t, testConfig(), LevelData{}, held)
	p := s.Player()
	runTicks(s, 60)

	held[ActionJump] = true
	s.Update(testStep)
	if !p.IsJumping {
		t.Fatal("expected jump to start")
	}
	// jump force -12 plus one tick of gravity
	if !approx(p.VY, -11.5) {
		t.Errorf("vy=%v, want -11.5", p.VY)
	}
	if !approx(p.Y, 410-1-11.5) {
		t.Errorf("y=%v, want %v", p.Y, 410-1-11.5)
	}

	// Holding jump mid-air must not re-apply the jump force
	s.Update(testStep)
	if !approx(p.VY, -11) {
		t.Errorf("vy=%v after second tick, want -11", p.VY)
	}
}

func TestHorizontalInput(t *testing.T) {
	tests := []struct {
		name       string
		held       HeldSet
		wantVX     float64
		wantFacing float64
	}{
		{"none", HeldSet{}, 0, 1},
		{"right", HeldSet{ActionMoveRight: true}, 5, 1},
		{"left", HeldSet{ActionMoveLeft: true}, -5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, testConfig(), LevelData{}, tt.held)
			groundPlayer(s, 400)
			s.Update(testStep)
			p := s.Player()
			if p.VX != tt.wantVX {
				t.Errorf("vx=%v, want %v", p.VX, tt.wantVX)
			}
			if p.Facing != tt.wantFacing {
				t.Errorf("facing=%v, want %v", p.Facing, tt.wantFacing)
			}
			if !approx(p.X, 400+tt.wantVX) {
				t.Errorf("x=%v, want %v", p.X, 400+tt.wantVX)
			}
		})
	}
}

func TestLeftWorldBound(t *testing.T) {
	s := newTestSim(t, testConfig(), LevelData{}, HeldSet{ActionMoveLeft: true})
	runTicks(s, 40)

	p := s.Player()
	if p.X != 0 {
		t.Errorf("x=%v, want clamped to 0", p.X)
	}
	if p.VX != 0 {
		t.Errorf("vx=%v, want 0 after clamping", p.VX)
	}
}

func TestInvulnerabilityCountsDown(t *testing.T) {
	s := newTestSim(t, testConfig(), LevelData{}, NoInput)
	p := s.Player()
	p.MakeInvulnerable(100)

	runTicks(s, 5)
	if !p.Invulnerable {
		t.Fatal("should still be invulnerable after 83ms")
	}
	runTicks(s, 2)
	if p.Invulnerable {
		t.Errorf("should expire after 100ms, remaining %v", p.InvulnerableMs)
	}
}

func TestLoseLife(t *testing.T) {
	p := NewPlayer(0, 0, 60, 90, 2)

	if p.LoseLife(2000) {
		t.Fatal("first hit with 2 lives should not be lethal")
	}
	if p.Lives != 1 || !p.Invulnerable || p.InvulnerableMs != 2000 {
		t.Fatalf("after hit: lives=%d invulnerable=%v ms=%v", p.Lives, p.Invulnerable, p.InvulnerableMs)
	}

	// Invulnerable: no-op
	if p.LoseLife(2000) {
		t.Error("hit while invulnerable should not be lethal")
	}
	if p.Lives != 1 {
		t.Errorf("lives=%d, hit while invulnerable should not cost a life", p.Lives)
	}

	p.Invulnerable = false
	if !p.LoseLife(2000) {
		t.Error("last life lost should report death")
	}
}
