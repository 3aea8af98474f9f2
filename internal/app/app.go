//go:build ebiten

package app

import (
	"image/color"
	"math"
	"time"

	"sparselife/internal/life"
	"sparselife/internal/render"
	"sparselife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the life world to the ebiten.Game interface: it translates
// input into grid edits and camera motion, feeds frame time to the clock, and
// hands the live set to the painter.
type Game struct {
	world   *life.World
	cam     *render.Camera
	painter *render.CellPainter
	status  *ui.Status
	soup    life.SoupConfig

	winW, winH int
	lastFrame  time.Time
	prevMX     int
	prevMY     int
}

// New constructs a Game for the provided configuration.
func New(cfg *Config) *Game {
	cam := render.NewCamera()
	cam.MoveSpeed = cfg.MoveSpeed
	soup := life.DefaultSoupConfig()
	soup.Seed = cfg.SoupSeed
	return &Game{
		world: life.NewWorld(cfg.TickInterval()),
		cam:   cam,
		painter: render.NewCellPainter(
			color.RGBA{R: 0x30, G: 0xd0, B: 0x50, A: 0xff},
			color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff},
		),
		status: ui.NewStatus(),
		soup:   soup,
		winW:   cfg.Width,
		winH:   cfg.Height,
	}
}

// World exposes the simulation state, mainly for tests.
func (g *Game) World() *life.World { return g.world }

// Update handles per-frame input and advances the simulation clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.world.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.world.Running() {
		g.world.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Grid().Clear()
	}

	now := time.Now()
	if g.lastFrame.IsZero() {
		g.lastFrame = now
	}
	dt := now.Sub(g.lastFrame)
	g.lastFrame = now

	g.handleCamera(dt)
	g.handleEditing()

	g.world.Advance(dt)
	return nil
}

// handleCamera applies keyboard panning, drag panning, and wheel zoom.
func (g *Game) handleCamera(dt time.Duration) {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dy++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if dx != 0 || dy != 0 {
		step := g.cam.MoveSpeed * dt.Seconds() / math.Hypot(dx, dy)
		g.cam.Pan(dx*step, dy*step)
	}

	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		g.cam.ZoomBy(wheelY)
	}

	// Middle button (or shift+left) drags the view; bare left paints.
	mx, my := ebiten.CursorPosition()
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
		(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && shift) {
		g.cam.Drag(float64(mx-g.prevMX), float64(my-g.prevMY))
	}
	g.prevMX, g.prevMY = mx, my
}

// handleEditing paints and erases cells under the cursor.
func (g *Game) handleEditing() {
	mx, my := ebiten.CursorPosition()
	cell := g.cam.CellAt(float64(mx), float64(my), float64(g.winW), float64(g.winH))

	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !shift {
		g.world.Grid().SetAlive(cell)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.world.Grid().SetDead(cell)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		life.Soup(g.world.Grid(), cell, g.soup)
	}
}

// Draw renders the visible lattice and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.world.Grid(), g.cam)
	g.status.Draw(screen, g.world.Running(), g.world.Grid().Len())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.winW, g.winH
}
