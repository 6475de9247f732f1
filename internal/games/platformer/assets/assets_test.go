package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestDefaultAtlasCoversKeys(t *testing.T) {
	a := DefaultAtlas()
	ctx := context.Background()
	for _, key := range Keys {
		img, err := a.Load(ctx, key)
		if err != nil {
			t.Errorf("%s: %v", key, err)
			continue
		}
		if img.Width() == 0 || img.Height() == 0 {
			t.Errorf("%s: empty sprite", key)
		}
		if img.Key != key {
			t.Errorf("%s: image key %q", key, img.Key)
		}
	}
}

func TestAtlasMissingKey(t *testing.T) {
	_, err := DefaultAtlas().Load(context.Background(), "dragon")
	if !errors.Is(err, ErrResourceUnavailable) {
		t.Errorf("Load(dragon) error = %v, want ErrResourceUnavailable", err)
	}
}

func TestParseAtlas(t *testing.T) {
	a, err := ParseAtlas([]byte(`
sprites:
  coin:
    color: gold
    rows: ["o"]
  hollow:
    color: red
  odd:
    color: not-a-color
    rows: ["x"]
`))
	if err != nil {
		t.Fatalf("ParseAtlas failed: %v", err)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (sprites without rows dropped)", a.Len())
	}
	img, err := a.Load(context.Background(), "odd")
	if err != nil {
		t.Fatal(err)
	}
	if img.Color != core.ColorDefault {
		t.Errorf("color = %v, unknown names should map to default", img.Color)
	}

	if _, err := ParseAtlas([]byte("sprites: [")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoadAtlasFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.yaml")
	if err := os.WriteFile(path, []byte("sprites:\n  coin:\n    rows: ['@']\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	a, err := LoadAtlasFile(path)
	if err != nil {
		t.Fatalf("LoadAtlasFile failed: %v", err)
	}
	img, err := a.Load(context.Background(), "coin")
	if err != nil || img.Rows[0][0] != '@' {
		t.Errorf("coin = %+v, %v", img, err)
	}

	if _, err := LoadAtlasFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLayeredPrefersFirst(t *testing.T) {
	custom, err := ParseAtlas([]byte("sprites:\n  coin:\n    rows: ['@']\n"))
	if err != nil {
		t.Fatal(err)
	}
	src := Layered{custom, DefaultAtlas()}
	ctx := context.Background()

	coin, err := src.Load(ctx, "coin")
	if err != nil || coin.Rows[0][0] != '@' {
		t.Errorf("coin = %+v, %v; want the override", coin, err)
	}
	tree, err := src.Load(ctx, "tree")
	if err != nil || tree.Height() != 5 {
		t.Errorf("tree = %+v, %v; want the default", tree, err)
	}
	if _, err := src.Load(ctx, "dragon"); !errors.Is(err, ErrResourceUnavailable) {
		t.Errorf("dragon error = %v, want ErrResourceUnavailable", err)
	}
}

func TestManagerLoadAll(t *testing.T) {
	m := NewManager(DefaultAtlas(), Keys, nil)
	if m.Progress() != 0 {
		t.Errorf("progress before load = %v, want 0", m.Progress())
	}

	m.LoadAll(context.Background())

	select {
	case <-m.Done():
	default:
		t.Fatal("Done should be closed after LoadAll")
	}
	if m.Progress() != 1 {
		t.Errorf("progress = %v, want 1", m.Progress())
	}
	if m.Failed() != 0 {
		t.Errorf("failed = %d, want 0", m.Failed())
	}
	if _, ok := m.Image("player_idle"); !ok {
		t.Error("player_idle should be loaded")
	}
}

func TestManagerFailuresStillComplete(t *testing.T) {
	partial, err := ParseAtlas([]byte("sprites:\n  coin:\n    rows: ['o']\n"))
	if err != nil {
		t.Fatal(err)
	}
	m := NewManager(partial, []string{"coin", "tree", "platform"}, nil)
	m.LoadAll(context.Background())

	if m.Progress() != 1 {
		t.Errorf("progress = %v, failed loads must still count", m.Progress())
	}
	if m.Failed() != 2 {
		t.Errorf("failed = %d, want 2", m.Failed())
	}
	if _, ok := m.Image("tree"); ok {
		t.Error("tree should be missing")
	}
	if _, ok := m.Image("coin"); !ok {
		t.Error("coin should be loaded")
	}
}

func TestManagerCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewManager(DefaultAtlas(), Keys, nil)
	m.LoadAll(ctx)

	if m.Progress() != 1 {
		t.Errorf("progress = %v, want 1", m.Progress())
	}
	if m.Failed() != len(Keys) {
		t.Errorf("failed = %d, want all %d", m.Failed(), len(Keys))
	}
}

func TestManagerNoKeys(t *testing.T) {
	m := NewManager(DefaultAtlas(), nil, nil)
	if m.Progress() != 1 {
		t.Errorf("progress = %v with no keys, want 1", m.Progress())
	}
}

func TestImageSample(t *testing.T) {
	img := NewImage("t", []string{"ab", "cd"}, core.ColorRed)

	tests := []struct {
		name     string
		col, row int
		w, h     int
		flip     bool
		want     rune
	}{
		{"identity top-left", 0, 0, 2, 2, false, 'a'},
		{"identity bottom-right", 1, 1, 2, 2, false, 'd'},
		{"stretched", 3, 3, 4, 4, false, 'd'},
		{"stretched first half", 1, 1, 4, 4, false, 'a'},
		{"shrunk", 0, 0, 1, 1, false, 'a'},
		{"flipped", 0, 0, 2, 2, true, 'b'},
		{"empty area", 0, 0, 0, 0, false, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.Sample(tt.col, tt.row, tt.w, tt.h, tt.flip); got != tt.want {
				t.Errorf("Sample() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestImageSampleMirrorsGlyphs(t *testing.T) {
	img := NewImage("t", []string{"/("}, core.ColorDefault)
	if got := img.Sample(0, 0, 2, 1, true); got != ')' {
		t.Errorf("Sample() = %q, want mirrored ')'", got)
	}
	if got := img.Sample(1, 0, 2, 1, true); got != '\\' {
		t.Errorf("Sample() = %q, want mirrored '\\\\'", got)
	}
}

func TestImageRaggedRows(t *testing.T) {
	img := NewImage("t", []string{"abc", "d"}, core.ColorDefault)
	if img.Width() != 3 {
		t.Errorf("Width() = %d, want 3", img.Width())
	}
	if got := img.Sample(2, 1, 3, 2, false); got != ' ' {
		t.Errorf("Sample() past a short row = %q, want space", got)
	}
}
