package sim

import "math"

// Snapshot is a flat view of a run for determinism checks and run records.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	Epoch       uint64
	Score       int
	Lives       int
	GameOver    bool
	Victory     bool
	DeathByFall bool

	PlayerX, PlayerY   float64
	PlayerVX, PlayerVY float64
	FallScale          float64
	AnimState          string
	PowerUp            string
	PowerUpMs          float64
	CameraX            float64

	// Per-kind positions, flattened as X, Y pairs of active entities
	EnemyData    []float64
	PlatformData []float64

	CoinsLeft    int
	PowerUpsLeft int
}

// Snapshot returns the current run state.
func (s *Simulation) Snapshot() Snapshot {
	w := &s.world
	p := &w.Player

	enemyData := make([]float64, 0, len(w.Enemies)*2)
	for i := range w.Enemies {
		if w.Enemies[i].Active {
			enemyData = append(enemyData, w.Enemies[i].X, w.Enemies[i].Y)
		}
	}
	platformData := make([]float64, 0, len(w.Platforms)*2)
	for i := range w.Platforms {
		platformData = append(platformData, w.Platforms[i].X, w.Platforms[i].Y)
	}

	return Snapshot{
		Tick:        s.ticks,
		Epoch:       s.epoch,
		Score:       s.score,
		Lives:       p.Lives,
		GameOver:    s.gameOver,
		Victory:     s.victory,
		DeathByFall: s.deathByFall,

		PlayerX:   p.X,
		PlayerY:   p.Y,
		PlayerVX:  p.VX,
		PlayerVY:  p.VY,
		FallScale: p.FallScale,
		AnimState: p.State.String(),
		PowerUp:   s.mods.Active.String(),
		PowerUpMs: s.mods.RemainingMs,
		CameraX:   s.camera.X,

		EnemyData:    enemyData,
		PlatformData: platformData,

		CoinsLeft:    w.ActiveCount(KindCoin),
		PowerUpsLeft: w.ActiveCount(KindPowerUp),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + snap.Epoch
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + boolBits(snap.GameOver)
	h = h*31 + boolBits(snap.Victory)
	h = h*31 + boolBits(snap.DeathByFall)

	for _, v := range []float64{snap.PlayerX, snap.PlayerY, snap.PlayerVX, snap.PlayerVY, snap.FallScale, snap.PowerUpMs, snap.CameraX} {
		h = h*31 + math.Float64bits(v)
	}
	for _, r := range snap.AnimState + "/" + snap.PowerUp {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.PlatformData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.CoinsLeft)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpsLeft) //#nosec G115 -- hash computation
	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
