package sim

import (
	"math"
	"testing"
)

func TestPlatformOscillation(t *testing.T) {
	cfg := testConfig()
	w := World{
		Player:    NewPlayer(0, 0, 60, 90, 1),
		Platforms: []Platform{NewPlatform(100, 300, 100, 20, true, false, 50, 2)},
	}
	pl := &w.Platforms[0]

	for range 26 {
		stepWorld(&w, &cfg, 0)
	}
	if pl.X != 152 || pl.Direction != -1 {
		t.Fatalf("after 26 ticks: x=%v dir=%v, want 152 and -1", pl.X, pl.Direction)
	}
	stepWorld(&w, &cfg, 0)
	if pl.X != 150 || pl.DX != -2 {
		t.Errorf("after reversal: x=%v dx=%v, want 150 and -2", pl.X, pl.DX)
	}

	for i := range 1000 {
		stepWorld(&w, &cfg, 0)
		if dev := math.Abs(pl.X - pl.OriginX); dev > pl.Range+pl.Speed {
			t.Fatalf("tick %d: deviation %v exceeds range", i, dev)
		}
		if pl.Y != 300 {
			t.Fatalf("tick %d: horizontal platform moved vertically to %v", i, pl.Y)
		}
	}
}

func TestVerticalPlatform(t *testing.T) {
	cfg := testConfig()
	w := World{
		Player:    NewPlayer(0, 0, 60, 90, 1),
		Platforms: []Platform{NewPlatform(300, 250, 100, 20, false, true, 30, 1)},
	}
	pl := &w.Platforms[0]

	for i := range 500 {
		stepWorld(&w, &cfg, 0)
		if dev := math.Abs(pl.Y - pl.OriginY); dev > pl.Range+pl.Speed {
			t.Fatalf("tick %d: deviation %v exceeds range", i, dev)
		}
		if pl.X != 300 {
			t.Fatalf("tick %d: vertical platform moved horizontally", i)
		}
	}
}

func TestRiderCarriedByPlatform(t *testing.T) {
	level := LevelData{
		Platforms: []Platform{NewPlatform(100, 300, 100, 20, true, false, 50, 2)},
	}
	s := newTestSim(t, testConfig(), level, NoInput)
	p := s.Player()
	p.X, p.Y = 120, 210
	pl := &s.world.Platforms[0]

	runTicks(s, 4)
	if pl.Rider != PlayerHandle {
		t.Fatal("landing on a moving platform should attach the player")
	}
	offset := p.X - pl.X

	for i := range 16 {
		s.Update(testStep)
		if got := p.X - pl.X; !approx(got, offset) {
			t.Fatalf("tick %d: offset %v drifted from %v", i, got, offset)
		}
	}
}

func TestJumpDetachesRider(t *testing.T) {
	level := LevelData{
		Platforms: []Platform{NewPlatform(100, 300, 100, 20, true, false, 50, 2)},
	}
	held := HeldSet{}
	s := newTestSim(t, testConfig(), level, held)
	p := s.Player()
	p.X, p.Y = 120, 210
	pl := &s.world.Platforms[0]

	runTicks(s, 4)
	if pl.Rider != PlayerHandle {
		t.Fatal("expected the player to be attached")
	}

	held[ActionJump] = true
	s.Update(testStep)
	if pl.Rider != NoHandle {
		t.Error("jumping should detach the player")
	}
}

func TestPlatformEnemyStaysOnPlatform(t *testing.T) {
	cfg := testConfig()
	w := World{
		Player:    NewPlayer(0, 0, 60, 90, 1),
		Platforms: []Platform{NewPlatform(200, 300, 100, 20, true, false, 40, 1)},
		Enemies:   []Enemy{NewPlatformEnemy(0, 0, 60, 60, 0.8, "enemy2")},
	}
	pl := &w.Platforms[0]
	e := &w.Enemies[0]

	turned := false
	for i := range 500 {
		before := e.VX
		stepWorld(&w, &cfg, 0)
		if e.VX != before {
			turned = true
		}
		if e.PlatformOffsetX < 0 || e.PlatformOffsetX+e.W > pl.W {
			t.Fatalf("tick %d: offset %v leaves the platform", i, e.PlatformOffsetX)
		}
		if e.X != pl.X+e.PlatformOffsetX || e.Y != pl.Y-e.H {
			t.Fatalf("tick %d: enemy at (%v, %v) not riding the platform at (%v, %v)", i, e.X, e.Y, pl.X, pl.Y)
		}
	}
	if !turned {
		t.Error("enemy never turned around")
	}
}

func TestGroundEnemyPatrol(t *testing.T) {
	cfg := testConfig()
	w := World{
		Player:  NewPlayer(0, 0, 60, 90, 1),
		Enemies: []Enemy{NewGroundEnemy(500, 440, 60, 60, 50, 0.8, "enemy1")},
	}
	e := &w.Enemies[0]

	turns := 0
	for i := range 2000 {
		before := e.VX
		stepWorld(&w, &cfg, 0)
		if e.VX != before {
			turns++
		}
		if e.X < 449 || e.X > 551 {
			t.Fatalf("tick %d: x=%v escaped the patrol area", i, e.X)
		}
	}
	if turns < 2 {
		t.Errorf("turns = %d, want the enemy to patrol back and forth", turns)
	}
}

func TestEnemyOnMissingPlatformPatrolsGround(t *testing.T) {
	cfg := testConfig()
	e := NewGroundEnemy(500, 440, 60, 60, 50, 0.8, "enemy1")
	e.OnPlatform = 7
	w := World{Player: NewPlayer(0, 0, 60, 90, 1), Enemies: []Enemy{e}}

	stepWorld(&w, &cfg, 0)

	if w.Enemies[0].Y != 440 {
		t.Errorf("y = %v, want ground patrol to keep 440", w.Enemies[0].Y)
	}
	if w.Platform(7) != nil {
		t.Error("unknown handle should resolve to nil")
	}
}

func TestCoinSpin(t *testing.T) {
	cfg := testConfig()
	w := World{Player: NewPlayer(0, 0, 60, 90, 1), Coins: []Coin{NewCoin(0, 0, 30)}}

	phases := []int{}
	for i := 1; i <= 40; i++ {
		stepWorld(&w, &cfg, 0)
		if i%10 == 0 {
			phases = append(phases, w.Coins[0].Phase)
		}
	}
	want := []int{1, 2, 3, 0}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("phases = %v, want %v", phases, want)
		}
	}
}

func TestPowerUpBob(t *testing.T) {
	cfg := testConfig()
	w := World{Player: NewPlayer(0, 0, 60, 90, 1), PowerUps: []PowerUp{NewPowerUp(0, 300, 30, PowerUpSpeed)}}

	for range 4 {
		stepWorld(&w, &cfg, 0)
	}
	if w.PowerUps[0].Y != 300 {
		t.Fatalf("y = %v, should not move before the bob cadence", w.PowerUps[0].Y)
	}
	stepWorld(&w, &cfg, 0)
	if want := 300 + math.Sin(0.2)*0.5; !approx(w.PowerUps[0].Y, want) {
		t.Errorf("y = %v, want %v", w.PowerUps[0].Y, want)
	}
}

func TestBackgroundParallax(t *testing.T) {
	cfg := testConfig()
	w := World{
		Player:      NewPlayer(0, 0, 60, 90, 1),
		Backgrounds: []Background{NewBackground(400, 50, 100, 50, "cloud1", 0.2)},
	}
	w.Player.VX = 5

	stepWorld(&w, &cfg, 0)

	if !approx(w.Backgrounds[0].X, 399) {
		t.Errorf("x = %v, want 399", w.Backgrounds[0].X)
	}
}

func TestBackgroundWrapsBehindCamera(t *testing.T) {
	cfg := testConfig()
	w := World{
		Player:      NewPlayer(0, 0, 60, 90, 1),
		Backgrounds: []Background{NewBackground(300, 50, 100, 50, "tree", 0.2)},
	}
	w.Player.VX = 5

	stepWorld(&w, &cfg, 500)

	if w.Backgrounds[0].X != 1300 {
		t.Errorf("x = %v, want re-entry at the right edge 1300", w.Backgrounds[0].X)
	}
}

func TestOffscreenCoinDoesNotSpin(t *testing.T) {
	cfg := testConfig()
	w := World{Player: NewPlayer(0, 0, 60, 90, 1), Coins: []Coin{NewCoin(5000, 0, 30)}}
	markVisibility(&w, 0, 800)

	for range 20 {
		stepWorld(&w, &cfg, 0)
	}
	if !w.Coins[0].Offscreen {
		t.Fatal("coin beyond the viewport should be flagged")
	}
	if w.Coins[0].Phase != 0 {
		t.Errorf("phase = %d, off-screen coins should not animate", w.Coins[0].Phase)
	}
}
