package sim

import (
	"errors"
	"testing"
)

func TestGoalVictory(t *testing.T) {
	tests := []struct {
		name    string
		x       float64
		victory bool
	}{
		{"short of goal", 3799, false},
		{"at goal", 3800, true},
		{"past goal", 3900, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, testConfig(), LevelData{}, NoInput)
			groundPlayer(s, tt.x)
			s.Update(testStep)
			if s.GameOver() != tt.victory || s.Victory() != tt.victory {
				t.Errorf("GameOver=%v Victory=%v, want %v", s.GameOver(), s.Victory(), tt.victory)
			}
		})
	}
}

func TestUpdateIsNoOpWhenInactive(t *testing.T) {
	t.Run("loading", func(t *testing.T) {
		s := New(testConfig(), staticLevel(LevelData{}), NoInput)
		s.Update(testStep)
		if s.Ticks() != 0 {
			t.Errorf("ticks = %d while loading", s.Ticks())
		}
		if !s.Loading() {
			t.Error("should stay loading until Init")
		}
	})

	t.Run("paused", func(t *testing.T) {
		s := newTestSim(t, testConfig(), LevelData{}, NoInput)
		s.TogglePause()
		before := s.Snapshot()
		runTicks(s, 10)
		after := s.Snapshot()
		if before.Hash() != after.Hash() {
			t.Error("state changed while paused")
		}
		s.TogglePause()
		s.Update(testStep)
		if s.Ticks() != 1 {
			t.Errorf("ticks = %d after resume, want 1", s.Ticks())
		}
	})

	t.Run("game over", func(t *testing.T) {
		s := newTestSim(t, testConfig(), LevelData{}, NoInput)
		groundPlayer(s, 3800)
		s.Update(testStep)
		ticks := s.Ticks()
		runTicks(s, 10)
		if s.Ticks() != ticks {
			t.Errorf("ticks advanced from %d to %d after game over", ticks, s.Ticks())
		}
		s.TogglePause()
		if s.Paused() {
			t.Error("pause should not toggle after game over")
		}
	})
}

func TestResetFailureKeepsRun(t *testing.T) {
	calls := 0
	source := LevelSourceFunc(func() (LevelData, error) {
		calls++
		if calls > 1 {
			return LevelData{}, errors.New("disk on fire")
		}
		return LevelData{Coins: []Coin{NewCoin(110, 440, 30)}}, nil
	})

	s := New(testConfig(), source, NoInput)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	groundPlayer(s, 100)
	s.Update(testStep)
	before := s.Snapshot()

	err := s.Reset()
	if !errors.Is(err, ErrLevelGeneration) {
		t.Fatalf("Reset() error = %v, want ErrLevelGeneration", err)
	}
	after := s.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("failed reset modified the run")
	}
	if s.Score() != 50 {
		t.Errorf("score = %d, want 50 kept", s.Score())
	}
}

func TestResetRejectsDanglingPlatformReference(t *testing.T) {
	level := LevelData{
		Platforms: []Platform{NewPlatform(0, 300, 100, 20, false, false, 0, 0)},
		Enemies:   []Enemy{NewPlatformEnemy(3, 0, 60, 60, 0.8, "enemy1")},
	}
	s := New(testConfig(), staticLevel(level), NoInput)

	if err := s.Init(); !errors.Is(err, ErrLevelGeneration) {
		t.Fatalf("Init() error = %v, want ErrLevelGeneration", err)
	}
	if !s.Loading() {
		t.Error("failed init should stay in loading")
	}
}

func TestResetStartsFreshRun(t *testing.T) {
	level := LevelData{Coins: []Coin{NewCoin(110, 440, 30)}}
	s := newTestSim(t, testConfig(), level, HeldSet{ActionMoveRight: true})
	groundPlayer(s, 100)
	runTicks(s, 30)
	epoch := s.Epoch()

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	p := s.Player()
	if s.Score() != 0 || s.Ticks() != 0 || s.GameOver() {
		t.Errorf("score=%d ticks=%d over=%v after reset", s.Score(), s.Ticks(), s.GameOver())
	}
	if p.X != 100 || p.Y != 300 {
		t.Errorf("player at (%v, %v), want start (100, 300)", p.X, p.Y)
	}
	if !s.world.Coins[0].Active {
		t.Error("collected coin should be back after reset")
	}
	if s.Epoch() == epoch {
		t.Error("reset should start a new epoch")
	}
	if s.Camera().X != 0 {
		t.Errorf("camera = %v after reset", s.Camera().X)
	}
}

func TestPlatformEnemyPlacedOnReset(t *testing.T) {
	level := LevelData{
		Platforms: []Platform{NewPlatform(600, 350, 200, 20, false, false, 0, 0)},
		Enemies:   []Enemy{NewPlatformEnemy(0, 50, 60, 60, 0.8, "enemy2")},
	}
	s := newTestSim(t, testConfig(), level, NoInput)

	e := s.world.Enemies[0]
	if e.X != 650 || e.Y != 290 {
		t.Errorf("enemy at (%v, %v), want (650, 290)", e.X, e.Y)
	}
}

func fullLevel() LevelData {
	return LevelData{
		Platforms: []Platform{
			NewPlatform(300, 400, 200, 20, false, false, 0, 0),
			NewPlatform(650, 350, 150, 20, true, false, 80, 1),
			NewPlatform(1000, 300, 150, 20, false, true, 60, 1),
		},
		Enemies: []Enemy{
			NewGroundEnemy(900, 440, 60, 60, 100, 0.8, "enemy1"),
			NewPlatformEnemy(0, 20, 60, 60, 0.8, "enemy2"),
		},
		Coins: []Coin{
			NewCoin(350, 360, 30),
			NewCoin(700, 310, 30),
			NewCoin(1200, 440, 30),
		},
		PowerUps:    []PowerUp{NewPowerUp(500, 440, 30, PowerUpSpeed)},
		Checkpoints: []Checkpoint{NewCheckpoint(3700, 400, 40, 100)},
		Backgrounds: []Background{NewBackground(200, 50, 100, 50, "cloud1", 0.2)},
		Hazards:     []Hazard{{X: 1400, Width: 100}},
	}
}

func scriptedInput(s **Simulation) Input {
	return InputFunc(func(a Action) bool {
		tick := (*s).Ticks()
		switch a {
		case ActionMoveRight:
			return tick%90 < 70
		case ActionMoveLeft:
			return tick%90 >= 80
		case ActionJump:
			return tick%45 == 10
		}
		return false
	})
}

func TestDeterminism(t *testing.T) {
	var s1, s2 *Simulation
	s1 = newTestSim(t, testConfig(), fullLevel(), scriptedInput(&s1))
	s2 = newTestSim(t, testConfig(), fullLevel(), scriptedInput(&s2))

	for i := range 900 {
		s1.Update(testStep)
		s2.Update(testStep)
		s1.AdvanceClock(float64(i) * testStep)
		s2.AdvanceClock(float64(i) * testStep)
	}

	snap1, snap2 := s1.Snapshot(), s2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.PlayerX != snap2.PlayerX || snap1.PlayerY != snap2.PlayerY {
		t.Errorf("Determinism failed: player positions differ")
	}
	if snap1.Tick == 0 {
		t.Error("simulation never advanced")
	}
}

func TestEachVisitsActiveEntities(t *testing.T) {
	s := newTestSim(t, testConfig(), fullLevel(), NoInput)
	s.world.Coins[0].Active = false

	counts := map[Kind]int{}
	s.World().Each(func(e Entity) {
		counts[e.Kind()]++
	})

	want := map[Kind]int{
		KindBackground: 1,
		KindPlatform:   3,
		KindCoin:       2,
		KindPowerUp:    1,
		KindCheckpoint: 1,
		KindPlayer:     1,
		KindEnemy:      2,
	}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("%v: visited %d, want %d", k, counts[k], n)
		}
	}
}
