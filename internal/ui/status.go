//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status draws the run-state line in the top-left corner of the window.
type Status struct {
	face *basicfont.Face
}

// NewStatus constructs the status overlay.
func NewStatus() *Status {
	return &Status{face: basicfont.Face7x13}
}

// Draw renders the current run state and live-cell count.
func (s *Status) Draw(screen *ebiten.Image, running bool, liveCells int) {
	state := "Paused"
	if running {
		state = "Simulating"
	}
	line := fmt.Sprintf("%s — %d cells", state, liveCells)
	text.Draw(screen, line, s.face, 6, 16, color.White)
	text.Draw(screen, "space run/pause · n step · lmb paint · rmb erase · g soup · c clear",
		s.face, 6, 32, color.Gray{Y: 0xb0})
}
