// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for level files no parser understands.
var ErrUnknownFormat = errors.New("unknown level format")

// Level is a parsed level description in world pixels. It carries no
// simulation types; the levels package builds entities from it.
type Level struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	GoalX       float64           `yaml:"goal_x,omitempty"` // Zero keeps the configured goal
	Platforms   []Platform        `yaml:"platforms"`
	Enemies     []Enemy           `yaml:"enemies,omitempty"`
	Coins       []Point           `yaml:"coins,omitempty"`
	PowerUps    []PowerUp         `yaml:"power_ups,omitempty"`
	Checkpoints []Point           `yaml:"checkpoints,omitempty"`
	Backgrounds []Background      `yaml:"backgrounds,omitempty"`
	Hazards     []Hazard          `yaml:"hazards,omitempty"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// Platform describes a solid surface. Move is empty for static platforms,
// or "horizontal" / "vertical".
type Platform struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	Move  string  `yaml:"move,omitempty"`
	Range float64 `yaml:"range,omitempty"`
	Speed float64 `yaml:"speed,omitempty"`
}

// Enemy describes a patrolling enemy. With Platform set the enemy walks on
// that platform (by index) starting Offset pixels from its left edge;
// otherwise it patrols ±Patrol around X on the ground, or at Y if given.
type Enemy struct {
	Type     string   `yaml:"type"`
	X        float64  `yaml:"x,omitempty"`
	Y        *float64 `yaml:"y,omitempty"`
	Patrol   float64  `yaml:"patrol,omitempty"`
	Platform *int     `yaml:"platform,omitempty"`
	Offset   float64  `yaml:"offset,omitempty"`
}

// Point is a position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PowerUp describes a power-up pickup.
type PowerUp struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Type string  `yaml:"type"`
}

// Background describes a scenery element.
type Background struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	Type     string  `yaml:"type"`
	Parallax float64 `yaml:"parallax"`
}

// Hazard describes a gap in the ground.
type Hazard struct {
	X     float64 `yaml:"x"`
	Width float64 `yaml:"width"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if l.ID == "" {
		return Level{}, errors.New("level id is required")
	}
	if l.Name == "" {
		l.Name = l.ID
	}
	return l, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// Parse routes to the parser for ext.
func Parse(data []byte, ext string) (Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Level{}, fmt.Errorf("%w: %s", ErrUnknownFormat, ext)
	}
}
