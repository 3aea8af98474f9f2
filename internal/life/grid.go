package life

// Coord identifies one cell on the unbounded integer lattice.
type Coord struct {
	X, Y int64
}

// Grid stores the live cells of an unbounded-plane Game of Life as a sparse
// set. A coordinate absent from the set is dead; dead cells are never stored.
type Grid struct {
	cells map[Coord]struct{}
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[Coord]struct{})}
}

// SetAlive marks the coordinate as live. Idempotent.
func (g *Grid) SetAlive(c Coord) {
	g.cells[c] = struct{}{}
}

// SetDead removes the coordinate from the live set. Removing an already-dead
// cell is a no-op.
func (g *Grid) SetDead(c Coord) {
	delete(g.cells, c)
}

// IsAlive reports whether the coordinate is live.
func (g *Grid) IsAlive(c Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Len returns the number of live cells.
func (g *Grid) Len() int { return len(g.cells) }

// Clear removes every live cell.
func (g *Grid) Clear() {
	g.cells = make(map[Coord]struct{})
}

// LiveCells returns a snapshot of all live coordinates. The slice is owned by
// the caller; repeated calls do not affect grid state.
func (g *Grid) LiveCells() []Coord {
	out := make([]Coord, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	return out
}

// mooreOffsets is the 8-cell neighborhood around a coordinate.
var mooreOffsets = [8][2]int64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Step advances the automaton by one generation (B3/S23). Scoring touches
// only cells within one step of a live cell, so cost is proportional to the
// live population rather than any grid extent. The new live set is built in
// full before it replaces the old one.
func (g *Grid) Step() {
	scores := make(map[Coord]int, len(g.cells)*4)
	for c := range g.cells {
		for _, d := range mooreOffsets {
			scores[Coord{c.X + d[0], c.Y + d[1]}]++
		}
		// An isolated live cell gains no increments but must still be
		// evaluated for death.
		if _, ok := scores[c]; !ok {
			scores[c] = 0
		}
	}

	next := make(map[Coord]struct{}, len(g.cells))
	for c, n := range scores {
		_, alive := g.cells[c]
		if n == 3 || (alive && n == 2) {
			next[c] = struct{}{}
		}
	}
	g.cells = next
}
