package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestViewportToCell(t *testing.T) {
	v := Viewport{WorldW: 800, WorldH: 600, Cols: 80, Rows: 30, OffsetRow: 1}

	tests := []struct {
		name         string
		originX      float64
		x, y         float64
		wantC, wantR int
	}{
		{"origin", 0, 0, 0, 0, 1},
		{"inside first cell", 0, 9.9, 19.9, 0, 1},
		{"next cell", 0, 10, 20, 1, 2},
		{"camera scrolled", 400, 450, 100, 5, 6},
		{"left of camera", 400, 390, 0, -1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v.OriginX = tc.originX
			c, r := v.ToCell(tc.x, tc.y)
			if c != tc.wantC || r != tc.wantR {
				t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, c, r, tc.wantC, tc.wantR)
			}
		})
	}
}

func TestViewportProjectMinimumSize(t *testing.T) {
	v := Viewport{WorldW: 800, WorldH: 600, Cols: 80, Rows: 30}

	r := v.Project(100, 100, 2, 2)
	if r.W < 1 || r.H < 1 {
		t.Errorf("tiny boxes should cover at least one cell, got %+v", r)
	}

	r = v.Project(100, 400, 60, 90)
	if r.X != 10 || r.Y != 20 || r.W != 6 || r.H != 5 {
		t.Errorf("Project() = %+v, expected {10 20 6 5}", r)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %f, expected 0", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1", got)
	}
}
