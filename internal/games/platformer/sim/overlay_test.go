package sim

import (
	"reflect"
	"testing"
)

func TestApplyModifier(t *testing.T) {
	cfg := testConfig().PowerUps
	base := Tuning{MoveSpeed: 5, JumpForce: -12}

	tests := []struct {
		typ  PowerUpType
		want Tuning
	}{
		{PowerUpSpeed, Tuning{MoveSpeed: 7.5, JumpForce: -12}},
		{PowerUpJump, Tuning{MoveSpeed: 5, JumpForce: -12 * 1.3}},
		{PowerUpInvincibility, base},
		{PowerUpNone, base},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got := ApplyModifier(base, tt.typ, cfg)
			if !approx(got.MoveSpeed, tt.want.MoveSpeed) || !approx(got.JumpForce, tt.want.JumpForce) {
				t.Errorf("ApplyModifier() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if base.MoveSpeed != 5 || base.JumpForce != -12 {
		t.Error("ApplyModifier mutated the base tuning")
	}
}

func TestFrameSnapshotRoundTrip(t *testing.T) {
	frames := DefaultPlayerFrames()
	snap := frames.Snapshot()
	if !reflect.DeepEqual(snap, frames) {
		t.Errorf("snapshot = %+v, want %+v", snap, frames)
	}

	// The walking copy must not alias the original
	snap.Walking[0] = "changed"
	if frames.Walking[0] != "player_walk1" {
		t.Error("snapshot aliases the walking frames")
	}
}

func TestPowerUpActivation(t *testing.T) {
	tests := []struct {
		typ          PowerUpType
		frame        string
		marker       Marker
		invulnerable bool
	}{
		{PowerUpSpeed, "player_speed", MarkerWarm, false},
		{PowerUpJump, "player_jump_power", MarkerCool, false},
		{PowerUpInvincibility, "player_invincible", MarkerGold, true},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			s := newTestSim(t, testConfig(), LevelData{}, NoInput)
			s.activatePowerUp(tt.typ)
			p := s.Player()

			active, remaining := s.PowerUp()
			if active != tt.typ || remaining != 5000 {
				t.Errorf("PowerUp() = %v, %v; want %v, 5000", active, remaining, tt.typ)
			}
			if p.CurrentFrame() != tt.frame {
				t.Errorf("frame = %q, want %q", p.CurrentFrame(), tt.frame)
			}
			if p.Marker != tt.marker {
				t.Errorf("marker = %v, want %v", p.Marker, tt.marker)
			}
			if p.Invulnerable != tt.invulnerable {
				t.Errorf("invulnerable = %v, want %v", p.Invulnerable, tt.invulnerable)
			}
		})
	}
}

func TestPowerUpExpiryRestoresBase(t *testing.T) {
	s := newTestSim(t, testConfig(), LevelData{}, NoInput)
	s.activatePowerUp(PowerUpSpeed)

	if got := s.Tuning().MoveSpeed; !approx(got, 7.5) {
		t.Fatalf("move speed = %v, want 7.5", got)
	}

	runTicks(s, 295)
	if active, _ := s.PowerUp(); active != PowerUpSpeed {
		t.Fatal("power-up expired early")
	}

	runTicks(s, 10)
	if active, _ := s.PowerUp(); active != PowerUpNone {
		t.Fatal("power-up should expire after its duration")
	}

	p := s.Player()
	if s.Tuning() != BaseTuning(s.cfg.Physics) {
		t.Errorf("tuning = %+v, want base", s.Tuning())
	}
	if !reflect.DeepEqual(p.Frames, DefaultPlayerFrames()) {
		t.Errorf("frames = %+v, want defaults", p.Frames)
	}
	if p.Marker != MarkerNone {
		t.Errorf("marker = %v, want none", p.Marker)
	}
	if p.Snapshot != nil {
		t.Error("snapshot should be consumed on expiry")
	}
}

func TestSecondPowerUpReplacesFirst(t *testing.T) {
	s := newTestSim(t, testConfig(), LevelData{}, NoInput)
	s.activatePowerUp(PowerUpSpeed)
	runTicks(s, 60)
	s.activatePowerUp(PowerUpJump)

	got := s.Tuning()
	if got.MoveSpeed != 5 {
		t.Errorf("move speed = %v, speed modifier should be reverted", got.MoveSpeed)
	}
	if !approx(got.JumpForce, -12*1.3) {
		t.Errorf("jump force = %v, want %v", got.JumpForce, -12*1.3)
	}
	if _, remaining := s.PowerUp(); remaining != 5000 {
		t.Errorf("remaining = %v, want a full duration", remaining)
	}

	runTicks(s, 310)

	p := s.Player()
	if s.Tuning() != BaseTuning(s.cfg.Physics) {
		t.Errorf("tuning = %+v, want base after expiry", s.Tuning())
	}
	if !reflect.DeepEqual(p.Frames, DefaultPlayerFrames()) {
		t.Errorf("frames = %+v, want defaults after expiry", p.Frames)
	}
}

func TestPowerUpPickup(t *testing.T) {
	level := LevelData{
		PowerUps: []PowerUp{NewPowerUp(110, 440, 30, PowerUpJump)},
	}
	s := newTestSim(t, testConfig(), level, NoInput)
	groundPlayer(s, 100)

	s.Update(testStep)

	if s.world.PowerUps[0].Active {
		t.Error("collected power-up should be inactive")
	}
	if active, _ := s.PowerUp(); active != PowerUpJump {
		t.Errorf("active = %v, want jump", active)
	}
}

func TestResetClearsPowerUp(t *testing.T) {
	s := newTestSim(t, testConfig(), LevelData{}, NoInput)
	s.activatePowerUp(PowerUpSpeed)

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if active, _ := s.PowerUp(); active != PowerUpNone {
		t.Errorf("active = %v after reset", active)
	}
	if s.Tuning() != BaseTuning(s.cfg.Physics) {
		t.Errorf("tuning = %+v after reset, want base", s.Tuning())
	}
	if s.Player().Marker != MarkerNone {
		t.Error("marker should be cleared by reset")
	}
}
