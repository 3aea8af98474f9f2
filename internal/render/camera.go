package render

import (
	"math"

	"sparselife/internal/life"
)

// Pitch is the width of one lattice cell in world units.
const Pitch = 30.0

// Zoom bounds for the orthographic scale. Scale 1 is fully zoomed in; larger
// values show more of the plane.
const (
	MinScale = 1.0
	MaxScale = 5.0
)

// Camera maps between screen pixels and world/lattice coordinates. X and Y
// are the world position at the center of the window; world Y points up while
// screen Y points down.
type Camera struct {
	X, Y      float64
	Scale     float64
	MoveSpeed float64
}

// NewCamera returns a camera centered on the origin at full zoom.
func NewCamera() *Camera {
	return &Camera{Scale: MinScale, MoveSpeed: 500}
}

// Pan moves the camera by the given world-space offset.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx
	c.Y += dy
}

// Drag pans the camera from a cursor drag of (dx, dy) screen pixels, so the
// world appears to follow the cursor.
func (c *Camera) Drag(dx, dy float64) {
	c.X -= dx * c.Scale
	c.Y += dy * c.Scale
}

// ZoomBy adjusts the scale from a scroll-wheel delta, clamped to the
// supported range.
func (c *Camera) ZoomBy(wheelY float64) {
	c.Scale -= wheelY
	if c.Scale < MinScale {
		c.Scale = MinScale
	}
	if c.Scale > MaxScale {
		c.Scale = MaxScale
	}
}

// CellAt converts a cursor position in a winW-by-winH window into the lattice
// coordinate under it.
func (c *Camera) CellAt(mx, my, winW, winH float64) life.Coord {
	wx := c.X - 0.5*winW*c.Scale + mx*c.Scale
	wy := c.Y + 0.5*winH*c.Scale - my*c.Scale
	return life.Coord{
		X: int64(math.Floor(wx / Pitch)),
		Y: int64(math.Floor(wy / Pitch)),
	}
}

// ScreenPos converts a world position into window pixels.
func (c *Camera) ScreenPos(wx, wy, winW, winH float64) (float64, float64) {
	sx := (wx-c.X)/c.Scale + 0.5*winW
	sy := 0.5*winH - (wy-c.Y)/c.Scale
	return sx, sy
}

// VisibleCellBounds returns the inclusive lattice rectangle covering the
// window plus a one-cell apron, so partially visible cells are included.
func (c *Camera) VisibleCellBounds(winW, winH float64) (min, max life.Coord) {
	halfW := 0.5 * winW * c.Scale
	halfH := 0.5 * winH * c.Scale
	min = life.Coord{
		X: int64(math.Floor((c.X - halfW - Pitch) / Pitch)),
		Y: int64(math.Floor((c.Y - halfH - Pitch) / Pitch)),
	}
	max = life.Coord{
		X: int64(math.Floor((c.X + halfW + Pitch) / Pitch)),
		Y: int64(math.Floor((c.Y + halfH + Pitch) / Pitch)),
	}
	return min, max
}
