// Package levels provides the platformer's level collaborator: the built-in
// layouts, YAML level files and validation.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"path"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID          string
	Name        string
	Description string
	Def         formats.Level
	FilePath    string // Empty for levels compiled into the binary
}

func fromDef(def formats.Level, filePath string) Level {
	return Level{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		Def:         def,
		FilePath:    filePath,
	}
}

// Source returns a level collaborator building fresh entities for each run.
func (l Level) Source(cfg config.PlatformerConfig) sim.LevelSource {
	return sim.LevelSourceFunc(func() (sim.LevelData, error) {
		return Build(l.Def, cfg)
	})
}

// Config applies the level's overrides to cfg.
func (l Level) Config(cfg config.PlatformerConfig) config.PlatformerConfig {
	if l.Def.GoalX > 0 {
		cfg.World.GoalX = l.Def.GoalX
	}
	return cfg
}

// Builtin returns the levels compiled into the binary: the meadow layout
// followed by the embedded YAML levels in file order.
func Builtin() ([]Level, error) {
	levels := []Level{fromDef(Meadow(), "")}

	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: reading embedded levels: %w", err)
	}
	for _, entry := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("levels: reading %s: %w", entry.Name(), err)
		}
		def, err := formats.Parse(data, path.Ext(entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("levels: parsing %s: %w", entry.Name(), err)
		}
		levels = append(levels, fromDef(def, ""))
	}
	return levels, nil
}
