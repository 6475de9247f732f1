package sim

import (
	"errors"
	"fmt"
)

// ErrLevelGeneration is returned when the level source cannot produce a
// usable layout. A failed reset leaves the previous run untouched.
var ErrLevelGeneration = errors.New("sim: level generation failed")

// LevelSource produces a fresh level layout for each run.
type LevelSource interface {
	GenerateLevel() (LevelData, error)
}

// LevelSourceFunc adapts a function to LevelSource.
type LevelSourceFunc func() (LevelData, error)

// GenerateLevel implements LevelSource.
func (f LevelSourceFunc) GenerateLevel() (LevelData, error) { return f() }

// LevelData is the layout of one run. Enemies reference platforms by their
// index in Platforms.
type LevelData struct {
	Platforms   []Platform
	Enemies     []Enemy
	Coins       []Coin
	PowerUps    []PowerUp
	Checkpoints []Checkpoint
	Backgrounds []Background
	Hazards     []Hazard
}

// Validate checks cross references between entities.
func (d LevelData) Validate() error {
	for i, e := range d.Enemies {
		if e.OnPlatform == NoHandle {
			continue
		}
		if e.OnPlatform < 0 || int(e.OnPlatform) >= len(d.Platforms) {
			return fmt.Errorf("enemy %d references platform %d of %d", i, e.OnPlatform, len(d.Platforms))
		}
	}
	for i, h := range d.Hazards {
		if h.Width <= 0 {
			return fmt.Errorf("hazard %d has width %g", i, h.Width)
		}
	}
	return nil
}

// Clone returns a deep copy so the simulation never aliases a source's
// slices.
func (d LevelData) Clone() LevelData {
	return LevelData{
		Platforms:   append([]Platform(nil), d.Platforms...),
		Enemies:     append([]Enemy(nil), d.Enemies...),
		Coins:       append([]Coin(nil), d.Coins...),
		PowerUps:    append([]PowerUp(nil), d.PowerUps...),
		Checkpoints: append([]Checkpoint(nil), d.Checkpoints...),
		Backgrounds: append([]Background(nil), d.Backgrounds...),
		Hazards:     append([]Hazard(nil), d.Hazards...),
	}
}
