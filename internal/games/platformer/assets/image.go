// Package assets is the platformer's resource collaborator. Images are
// glyph sprites: small grids of runes with a color, scaled to whatever cell
// rectangle an entity covers on screen.
package assets

import "github.com/vovakirdan/tui-platformer/internal/core"

// Keys lists every image the game asks for.
var Keys = []string{
	"player_idle", "player_walk1", "player_walk2", "player_jump",
	"player_speed", "player_jump_power", "player_invincible",
	"enemy1", "enemy2", "enemy3",
	"coin", "background", "cloud1", "cloud2", "tree", "platform",
	"powerup_speed", "powerup_jump", "powerup_invincibility",
}

// Image is a glyph sprite. Spaces are transparent.
type Image struct {
	Key   string
	Rows  [][]rune
	Color core.Color
}

// NewImage builds an image from text rows.
func NewImage(key string, rows []string, color core.Color) Image {
	img := Image{Key: key, Color: color, Rows: make([][]rune, len(rows))}
	for i, r := range rows {
		img.Rows[i] = []rune(r)
	}
	return img
}

// Width returns the widest row in runes.
func (img Image) Width() int {
	w := 0
	for _, r := range img.Rows {
		w = max(w, len(r))
	}
	return w
}

// Height returns the number of rows.
func (img Image) Height() int { return len(img.Rows) }

// Sample returns the rune at (col, row) when the image is stretched over
// a w×h cell area. Nearest-neighbor; optionally mirrored horizontally.
func (img Image) Sample(col, row, w, h int, flip bool) rune {
	iw, ih := img.Width(), img.Height()
	if iw == 0 || ih == 0 || w <= 0 || h <= 0 {
		return ' '
	}
	if flip {
		col = w - 1 - col
	}
	sy := row * ih / h
	sx := col * iw / w
	line := img.Rows[sy]
	if sx >= len(line) {
		return ' '
	}
	r := line[sx]
	if flip {
		r = mirror(r)
	}
	return r
}

var mirrored = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
}

func mirror(r rune) rune {
	if m, ok := mirrored[r]; ok {
		return m
	}
	return r
}
