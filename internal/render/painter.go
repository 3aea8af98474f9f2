//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sparselife/internal/life"
)

// spriteSize is the drawn extent of a cell in world units, leaving a visible
// seam on the 30-unit pitch.
const spriteSize = 20.0

// CellPainter fills the window with the visible portion of the lattice: live
// cells in one color, the dead background lattice in another.
type CellPainter struct {
	live color.RGBA
	dead color.RGBA
}

// NewCellPainter constructs a painter with the given cell colors.
func NewCellPainter(live, dead color.RGBA) *CellPainter {
	return &CellPainter{live: live, dead: dead}
}

// Draw renders every cell inside the camera frustum onto dst.
func (p *CellPainter) Draw(dst *ebiten.Image, g *life.Grid, cam *Camera) {
	bounds := dst.Bounds()
	winW := float64(bounds.Dx())
	winH := float64(bounds.Dy())

	min, max := cam.VisibleCellBounds(winW, winH)
	size := float32(spriteSize / cam.Scale)
	inset := (Pitch - spriteSize) / 2

	for cy := min.Y; cy <= max.Y; cy++ {
		for cx := min.X; cx <= max.X; cx++ {
			col := p.dead
			if g.IsAlive(life.Coord{X: cx, Y: cy}) {
				col = p.live
			}
			// World-space top-left corner of the sprite; world y is up.
			wx := float64(cx)*Pitch + inset
			wy := float64(cy)*Pitch + inset + spriteSize
			sx, sy := cam.ScreenPos(wx, wy, winW, winH)
			vector.DrawFilledRect(dst, float32(sx), float32(sy), size, size, col, false)
		}
	}
}
