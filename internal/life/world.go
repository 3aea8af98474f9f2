package life

import "time"

// World couples a grid with its simulation clock. It is built explicitly by
// whatever owns the frame loop; there is no package-level state.
type World struct {
	grid  *Grid
	clock *Clock
}

// NewWorld returns an empty, paused world ticking once per interval.
func NewWorld(interval time.Duration) *World {
	return &World{grid: NewGrid(), clock: NewClock(interval)}
}

// Grid exposes the live-cell store for rendering and editing.
func (w *World) Grid() *Grid { return w.grid }

// Running reports whether the simulation is advancing.
func (w *World) Running() bool { return w.clock.Running() }

// Toggle switches between running and paused.
func (w *World) Toggle() { w.clock.Toggle() }

// Advance feeds one frame's elapsed time to the clock and steps the grid when
// a generation is due. It reports whether a step ran.
func (w *World) Advance(dt time.Duration) bool {
	if !w.clock.Advance(dt) {
		return false
	}
	w.grid.Step()
	return true
}

// StepOnce advances exactly one generation regardless of clock state.
func (w *World) StepOnce() { w.grid.Step() }
