package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root string

	// Skipped collects the files the last LoadAll could not parse.
	Skipped []error
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// DefaultUserDir returns ~/.arcade/levels.
func DefaultUserDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("levels: home directory: %w", err)
	}
	return filepath.Join(home, ".arcade", "levels"), nil
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering. A missing root
// yields no levels.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	l.Skipped = nil

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(formats.FormatExtensions(), ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			l.Skipped = append(l.Skipped, err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	return LoadFile(path)
}

// LoadFile reads and parses one level file. It does not validate.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	def, err := formats.Parse(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return fromDef(def, path), nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// Catalog returns the built-in levels followed by the levels under userDir.
// User levels reusing a built-in ID are skipped. The returned errors name
// the user files that could not be parsed.
func Catalog(userDir string) ([]Level, []error, error) {
	levels, err := Builtin()
	if err != nil {
		return nil, nil, err
	}
	if userDir == "" {
		return levels, nil, nil
	}

	loader := NewLoader(userDir)
	user, err := loader.LoadAll()
	if err != nil {
		return nil, nil, err
	}
	seen := make(map[string]bool, len(levels))
	for _, lvl := range levels {
		seen[lvl.ID] = true
	}
	for _, lvl := range user {
		if seen[lvl.ID] {
			loader.Skipped = append(loader.Skipped, fmt.Errorf("%s: id %q is already taken", lvl.FilePath, lvl.ID))
			continue
		}
		seen[lvl.ID] = true
		levels = append(levels, lvl)
	}
	return levels, loader.Skipped, nil
}
