package life

import "testing"

func liveSet(g *Grid) map[Coord]bool {
	out := make(map[Coord]bool)
	for _, c := range g.LiveCells() {
		out[c] = true
	}
	return out
}

func expectCells(t *testing.T, g *Grid, expects map[Coord]bool) {
	t.Helper()
	got := liveSet(g)
	for c := range expects {
		if !got[c] {
			t.Fatalf("cell (%d,%d) dead, expected alive", c.X, c.Y)
		}
	}
	for c := range got {
		if !expects[c] {
			t.Fatalf("cell (%d,%d) alive, expected dead", c.X, c.Y)
		}
	}
}

func TestSetAliveIdempotent(t *testing.T) {
	g := NewGrid()
	g.SetAlive(Coord{3, -7})
	g.SetAlive(Coord{3, -7})

	if g.Len() != 1 {
		t.Fatalf("live count = %d, expected 1", g.Len())
	}
	if !g.IsAlive(Coord{3, -7}) {
		t.Fatal("cell (3,-7) dead after SetAlive")
	}
}

func TestSetDeadIdempotent(t *testing.T) {
	g := NewGrid()
	g.SetDead(Coord{0, 0})
	g.SetAlive(Coord{0, 0})
	g.SetDead(Coord{0, 0})
	g.SetDead(Coord{0, 0})

	if g.Len() != 0 {
		t.Fatalf("live count = %d, expected 0", g.Len())
	}
	if g.IsAlive(Coord{0, 0}) {
		t.Fatal("cell (0,0) alive after SetDead")
	}
}

func TestLiveCellsSnapshot(t *testing.T) {
	g := NewGrid()
	g.SetAlive(Coord{1, 2})
	g.SetAlive(Coord{-4, 5})

	first := g.LiveCells()
	second := g.LiveCells()
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("snapshot lengths = %d, %d, expected 2, 2", len(first), len(second))
	}
	// Mutating the snapshot must not reach back into the grid.
	first[0] = Coord{99, 99}
	if g.IsAlive(Coord{99, 99}) {
		t.Fatal("snapshot mutation leaked into grid")
	}
}

func TestBlockStillLife(t *testing.T) {
	g := NewGrid()
	block := map[Coord]bool{
		{0, 0}: true, {1, 0}: true,
		{0, 1}: true, {1, 1}: true,
	}
	for c := range block {
		g.SetAlive(c)
	}

	g.Step()
	expectCells(t, g, block)
	g.Step()
	expectCells(t, g, block)
}

func TestBlinkerOscillation(t *testing.T) {
	g := NewGrid()
	g.SetAlive(Coord{0, 0})
	g.SetAlive(Coord{1, 0})
	g.SetAlive(Coord{2, 0})

	g.Step()
	expectCells(t, g, map[Coord]bool{
		{1, -1}: true,
		{1, 0}:  true,
		{1, 1}:  true,
	})

	g.Step()
	expectCells(t, g, map[Coord]bool{
		{0, 0}: true,
		{1, 0}: true,
		{2, 0}: true,
	})
}

func TestBirthRequiresExactlyThreeNeighbors(t *testing.T) {
	cases := []struct {
		neighbors []Coord
		born      bool
	}{
		{[]Coord{{-1, -1}, {1, -1}}, false},
		{[]Coord{{-1, -1}, {1, -1}, {-1, 1}}, true},
		{[]Coord{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}, false},
	}
	for _, tc := range cases {
		g := NewGrid()
		for _, c := range tc.neighbors {
			g.SetAlive(c)
		}
		g.Step()
		if got := g.IsAlive(Coord{0, 0}); got != tc.born {
			t.Fatalf("with %d neighbors, cell (0,0) alive=%v, expected %v",
				len(tc.neighbors), got, tc.born)
		}
	}
}

func TestDeathByIsolationAndCrowding(t *testing.T) {
	// An isolated cell and a pair both die.
	g := NewGrid()
	g.SetAlive(Coord{10, 10})
	g.Step()
	if g.IsAlive(Coord{10, 10}) {
		t.Fatal("isolated cell survived")
	}

	g = NewGrid()
	g.SetAlive(Coord{0, 0})
	g.SetAlive(Coord{1, 0})
	g.Step()
	if g.IsAlive(Coord{0, 0}) || g.IsAlive(Coord{1, 0}) {
		t.Fatal("cell with one neighbor survived")
	}

	// A cell surrounded by four neighbors dies of overcrowding.
	g = NewGrid()
	g.SetAlive(Coord{0, 0})
	for _, c := range []Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		g.SetAlive(c)
	}
	g.Step()
	if g.IsAlive(Coord{0, 0}) {
		t.Fatal("cell with four neighbors survived")
	}
}

func TestStepDeterministic(t *testing.T) {
	// An r-pentomino inserted in two different orders must evolve
	// identically; scoring cannot depend on map iteration order.
	pattern := []Coord{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}

	a := NewGrid()
	for _, c := range pattern {
		a.SetAlive(c)
	}
	b := NewGrid()
	for i := len(pattern) - 1; i >= 0; i-- {
		b.SetAlive(pattern[i])
	}

	for gen := 0; gen < 20; gen++ {
		a.Step()
		b.Step()
		want := liveSet(a)
		got := liveSet(b)
		if len(want) != len(got) {
			t.Fatalf("generation %d: live counts %d vs %d", gen+1, len(want), len(got))
		}
		for c := range want {
			if !got[c] {
				t.Fatalf("generation %d: grids diverged at (%d,%d)", gen+1, c.X, c.Y)
			}
		}
	}
}

func TestStepFarFromOrigin(t *testing.T) {
	// The lattice is unbounded; a blinker works the same a long way out.
	const base = int64(1) << 40
	g := NewGrid()
	g.SetAlive(Coord{base, -base})
	g.SetAlive(Coord{base + 1, -base})
	g.SetAlive(Coord{base + 2, -base})

	g.Step()
	expectCells(t, g, map[Coord]bool{
		{base + 1, -base - 1}: true,
		{base + 1, -base}:     true,
		{base + 1, -base + 1}: true,
	})
}

func TestClear(t *testing.T) {
	g := NewGrid()
	g.SetAlive(Coord{0, 0})
	g.SetAlive(Coord{5, 5})
	g.Clear()
	if g.Len() != 0 {
		t.Fatalf("live count = %d after Clear, expected 0", g.Len())
	}
}
