package levels

import "github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"

func intPtr(v int) *int { return &v }

// Meadow returns the built-in level: five sections of platforms, moving
// platforms over gaps, an elevator, a staircase and a guarded finish flag.
func Meadow() formats.Level {
	return formats.Level{
		ID:          "meadow",
		Name:        "Meadow Run",
		Description: "Cross three gaps on moving platforms and reach the flag",
		Backgrounds: []formats.Background{
			{X: 100, Y: 50, W: 100, H: 50, Type: "cloud1", Parallax: 0.1},
			{X: 400, Y: 30, W: 120, H: 60, Type: "cloud2", Parallax: 0.05},
			{X: 700, Y: 70, W: 90, H: 40, Type: "cloud1", Parallax: 0.08},
			{X: 1000, Y: 40, W: 110, H: 55, Type: "cloud2", Parallax: 0.07},
			{X: 1300, Y: 60, W: 95, H: 45, Type: "cloud1", Parallax: 0.09},
			{X: 1600, Y: 35, W: 115, H: 58, Type: "cloud2", Parallax: 0.06},
			{X: 1900, Y: 65, W: 105, H: 52, Type: "cloud1", Parallax: 0.08},
			{X: 2200, Y: 45, W: 100, H: 50, Type: "cloud2", Parallax: 0.07},
			{X: 2500, Y: 55, W: 110, H: 45, Type: "cloud1", Parallax: 0.09},
			{X: 2800, Y: 40, W: 95, H: 55, Type: "cloud2", Parallax: 0.06},
			{X: 3100, Y: 60, W: 115, H: 50, Type: "cloud1", Parallax: 0.08},
			{X: 3400, Y: 50, W: 105, H: 60, Type: "cloud2", Parallax: 0.07},
			{X: 3700, Y: 45, W: 100, H: 45, Type: "cloud1", Parallax: 0.09},
			{X: 4000, Y: 55, W: 110, H: 50, Type: "cloud2", Parallax: 0.06},
			{X: 200, Y: 380, W: 150, H: 120, Type: "tree", Parallax: 0.2},
			{X: 600, Y: 400, W: 130, H: 100, Type: "tree", Parallax: 0.2},
			{X: 1000, Y: 390, W: 140, H: 110, Type: "tree", Parallax: 0.2},
			{X: 1400, Y: 370, W: 160, H: 130, Type: "tree", Parallax: 0.2},
			{X: 1800, Y: 380, W: 150, H: 120, Type: "tree", Parallax: 0.2},
			{X: 2200, Y: 400, W: 130, H: 100, Type: "tree", Parallax: 0.2},
			{X: 2600, Y: 390, W: 140, H: 110, Type: "tree", Parallax: 0.2},
			{X: 3000, Y: 380, W: 150, H: 120, Type: "tree", Parallax: 0.2},
			{X: 3400, Y: 400, W: 130, H: 100, Type: "tree", Parallax: 0.2},
			{X: 3800, Y: 390, W: 140, H: 110, Type: "tree", Parallax: 0.2},
		},
		Platforms: []formats.Platform{
			// Section 1: static steps
			{X: 300, Y: 400, W: 200},
			{X: 600, Y: 350, W: 150},
			{X: 850, Y: 300, W: 180},
			// Section 2: moving platforms over the first gap
			{X: 1150, Y: 350, W: 150, Move: "horizontal", Range: 100, Speed: 1},
			{X: 1450, Y: 300, W: 120, Move: "vertical", Range: 80, Speed: 0.8},
			{X: 1650, Y: 350, W: 180},
			// Section 3: elevator and staircase
			{X: 2000, Y: 400, W: 120, Move: "vertical", Range: 100, Speed: 0.7},
			{X: 2150, Y: 320, W: 150},
			{X: 2350, Y: 270, W: 120},
			{X: 2550, Y: 220, W: 100},
			// Final section
			{X: 3300, Y: 270, W: 150},
			{X: 3500, Y: 320, W: 200},
		},
		Enemies: []formats.Enemy{
			{Type: "enemy1", Platform: intPtr(0), Offset: 50},
			{Type: "enemy2", X: 700, Patrol: 120},
			{Type: "enemy1", Platform: intPtr(3), Offset: 50},
			{Type: "enemy2", Platform: intPtr(4), Offset: 30},
			{Type: "enemy3", Platform: intPtr(6), Offset: 30},
			{Type: "enemy3", X: 3350, Patrol: 70},
			{Type: "enemy1", X: 3550, Patrol: 100},
		},
		Coins: []formats.Point{
			{X: 350, Y: 350}, {X: 650, Y: 300}, {X: 900, Y: 250},
			{X: 1200, Y: 300}, {X: 1450, Y: 250}, {X: 1700, Y: 300},
			{X: 3350, Y: 220}, {X: 3550, Y: 270},
		},
		PowerUps: []formats.PowerUp{
			{X: 2000, Y: 340, Type: "speed"},
			{X: 2950, Y: 440, Type: "speed"},
			{X: 3400, Y: 220, Type: "invincibility"},
		},
		Checkpoints: []formats.Point{{X: 3800, Y: 450}},
		Hazards: []formats.Hazard{
			{X: 1200, Width: 200},
			{X: 1900, Width: 180},
			{X: 3000, Width: 220},
		},
	}
}
