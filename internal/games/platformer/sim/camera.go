package sim

// Camera tracks the horizontal scroll offset.
type Camera struct {
	X float64
}

// Follow eases the camera toward the offset that places the player a lead
// fraction of the viewport from its left edge. The camera never scrolls
// left of the world origin.
func (c *Camera) Follow(playerX, viewportW, lead, smoothing float64) {
	target := playerX - viewportW*lead
	if target < 0 {
		target = 0
	}
	c.X += (target - c.X) * smoothing
	if c.X < 0 {
		c.X = 0
	}
}
