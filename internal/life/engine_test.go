package life

import "testing"

func gridWith(t *testing.T, w, h int, alive ...Cell) *Grid {
	t.Helper()
	g := New(w, h)
	for _, c := range alive {
		if err := g.Toggle(c); err != nil {
			t.Fatalf("toggle (%d,%d): %v", c.X, c.Y, err)
		}
	}
	return g
}

func checkAlive(t *testing.T, g *Grid, expects map[Cell]bool) {
	t.Helper()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := Cell{X: x, Y: y}
			if g.Alive(c) != expects[c] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, g.Alive(c), expects[c])
			}
		}
	}
}

func TestBlockIsStill(t *testing.T) {
	g := gridWith(t, 12, 12, Cell{5, 5}, Cell{6, 5}, Cell{5, 6}, Cell{6, 6})

	next := Advance(g)

	checkAlive(t, next, map[Cell]bool{
		{5, 5}: true,
		{6, 5}: true,
		{5, 6}: true,
		{6, 6}: true,
	})
}

func TestBlinkerOscillation(t *testing.T) {
	g := gridWith(t, 12, 12, Cell{4, 5}, Cell{5, 5}, Cell{6, 5})

	g = Advance(g)
	checkAlive(t, g, map[Cell]bool{
		{5, 4}: true,
		{5, 5}: true,
		{5, 6}: true,
	})

	g = Advance(g)
	checkAlive(t, g, map[Cell]bool{
		{4, 5}: true,
		{5, 5}: true,
		{6, 5}: true,
	})
}

func TestLoneCellDies(t *testing.T) {
	g := gridWith(t, 20, 20, Cell{10, 10})

	next := Advance(g)

	if next.Population() != 0 {
		t.Fatalf("lone cell should die of underpopulation, got %d alive", next.Population())
	}
}

func TestBirthSuppressedBeyondSurface(t *testing.T) {
	// A vertical blinker hugging the left edge. The birth candidate at
	// (-1,5) has exactly three live neighbours but lies outside the
	// surface, so only (1,5) may appear.
	g := gridWith(t, 10, 10, Cell{0, 4}, Cell{0, 5}, Cell{0, 6})

	next := Advance(g)

	checkAlive(t, next, map[Cell]bool{
		{0, 5}: true,
		{1, 5}: true,
	})
}

func TestBirthSuppressedAtRightEdge(t *testing.T) {
	g := gridWith(t, 10, 10, Cell{9, 4}, Cell{9, 5}, Cell{9, 6})

	next := Advance(g)

	checkAlive(t, next, map[Cell]bool{
		{9, 5}: true,
		{8, 5}: true,
	})
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	g := gridWith(t, 12, 12, Cell{4, 5}, Cell{5, 5}, Cell{6, 5})

	Advance(g)

	checkAlive(t, g, map[Cell]bool{
		{4, 5}: true,
		{5, 5}: true,
		{6, 5}: true,
	})
}

func TestAdvanceIsDeterministic(t *testing.T) {
	g := NewRandom(32, 32, 4, NewRNG(7))

	first := Advance(g)
	second := Advance(g)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := Cell{X: x, Y: y}
			if first.Alive(c) != second.Alive(c) {
				t.Fatalf("repeated advance disagreed at (%d,%d)", x, y)
			}
		}
	}
}

func TestAdvancePreservesCardinality(t *testing.T) {
	g := NewRandom(16, 16, 8, NewRNG(3))

	next := Advance(g)

	if len(next.Cells()) != 16*16 {
		t.Fatalf("grid should keep exactly %d entries, got %d", 16*16, len(next.Cells()))
	}
	if next.W != g.W || next.H != g.H {
		t.Fatalf("advance changed dimensions: %dx%d -> %dx%d", g.W, g.H, next.W, next.H)
	}
}
