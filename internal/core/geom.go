// Package core provides fundamental types and utilities for the platformer host.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Viewport maps a window of world space (pixels) onto a grid of screen cells.
// World coordinates grow right and down, same as the screen.
type Viewport struct {
	WorldW, WorldH float64 // Size of the visible world window in pixels
	Cols, Rows     int     // Size of the cell grid it is projected onto
	OriginX        float64 // World x shown at column 0 (camera position)
	OffsetRow      int     // Screen row where the projection starts (below the HUD)
}

// CellW returns how many world pixels one column covers.
func (v Viewport) CellW() float64 {
	if v.Cols <= 0 {
		return 1
	}
	return v.WorldW / float64(v.Cols)
}

// CellH returns how many world pixels one row covers.
func (v Viewport) CellH() float64 {
	if v.Rows <= 0 {
		return 1
	}
	return v.WorldH / float64(v.Rows)
}

// ToCell converts a world point to the screen cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	col := int(math.Floor((x - v.OriginX) / v.CellW()))
	row := int(math.Floor(y/v.CellH())) + v.OffsetRow
	return col, row
}

// Project converts a world-space box to the screen cells it covers.
// Boxes smaller than a cell still cover at least one cell.
func (v Viewport) Project(x, y, w, h float64) Rect {
	c0, r0 := v.ToCell(x, y)
	c1 := int(math.Ceil((x + w - v.OriginX) / v.CellW()))
	r1 := int(math.Ceil((y+h)/v.CellH())) + v.OffsetRow
	cw := Max(c1-c0, 1)
	rh := Max(r1-r0, 1)
	return NewRect(c0, r0, cw, rh)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
