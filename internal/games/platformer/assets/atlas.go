package assets

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

//go:embed atlas/default.yaml
var defaultAtlasYAML []byte

// ErrResourceUnavailable is returned for an image that cannot be loaded.
// Callers fall back to primitive shapes.
var ErrResourceUnavailable = errors.New("resource unavailable")

// Source loads one image by key.
type Source interface {
	Load(ctx context.Context, key string) (Image, error)
}

// Atlas is an in-memory set of sprites parsed from YAML.
type Atlas struct {
	images map[string]Image
}

type yamlAtlas struct {
	Sprites map[string]yamlSprite `yaml:"sprites"`
}

type yamlSprite struct {
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

// ParseAtlas parses an atlas file. Sprites with unknown colors use the
// default color; sprites without rows are dropped.
func ParseAtlas(data []byte) (*Atlas, error) {
	var ya yamlAtlas
	if err := yaml.Unmarshal(data, &ya); err != nil {
		return nil, fmt.Errorf("assets: yaml unmarshal: %w", err)
	}

	a := &Atlas{images: make(map[string]Image, len(ya.Sprites))}
	for key, s := range ya.Sprites {
		if len(s.Rows) == 0 {
			continue
		}
		color, _ := core.ParseColor(s.Color)
		a.images[key] = NewImage(key, s.Rows, color)
	}
	return a, nil
}

// DefaultAtlas returns the sprites compiled into the binary.
func DefaultAtlas() *Atlas {
	a, err := ParseAtlas(defaultAtlasYAML)
	if err != nil {
		panic(err) // embedded file is validated by tests
	}
	return a
}

// LoadAtlasFile reads an atlas from disk.
func LoadAtlasFile(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: reading %s: %w", path, err)
	}
	return ParseAtlas(data)
}

// Load implements Source.
func (a *Atlas) Load(ctx context.Context, key string) (Image, error) {
	if err := ctx.Err(); err != nil {
		return Image{}, err
	}
	img, ok := a.images[key]
	if !ok {
		return Image{}, fmt.Errorf("%w: %s", ErrResourceUnavailable, key)
	}
	return img, nil
}

// Len returns the number of sprites.
func (a *Atlas) Len() int { return len(a.images) }

// Layered tries each source in order, returning the first image found.
type Layered []Source

// Load implements Source.
func (l Layered) Load(ctx context.Context, key string) (Image, error) {
	err := fmt.Errorf("%w: %s", ErrResourceUnavailable, key)
	for _, src := range l {
		img, e := src.Load(ctx, key)
		if e == nil {
			return img, nil
		}
		if !errors.Is(e, ErrResourceUnavailable) {
			err = e
		}
	}
	return Image{}, err
}
