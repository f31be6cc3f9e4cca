package life

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// ErrOutOfSurface is returned when a mutating operation addresses a cell
// outside the grid surface.
var ErrOutOfSurface = errors.New("cell out of surface")

// Cell addresses one grid position.
type Cell struct {
	X, Y int
}

// Grid stores the alive flag for every cell of a fixed W*H surface in
// row-major order. Cells beyond the surface are permanently dead.
type Grid struct {
	W, H  int
	cells []bool
}

// New allocates an all-dead grid with the given dimensions.
func New(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]bool, w*h)}
}

// NewRandom returns a grid with exactly floor(w*h/fraction) distinct live
// cells drawn uniformly from the surface. A fraction too large to yield a
// single cell (or a non-positive one) produces an all-dead grid.
func NewRandom(w, h, fraction int, rng *rand.Rand) *Grid {
	g := New(w, h)
	if fraction <= 0 {
		return g
	}
	target := (g.W * g.H) / fraction
	chosen := make(map[Cell]struct{}, target)
	for len(chosen) < target {
		c := Cell{X: rng.IntN(g.W), Y: rng.IntN(g.H)}
		if _, dup := chosen[c]; dup {
			continue
		}
		chosen[c] = struct{}{}
		g.cells[g.index(c)] = true
	}
	return g
}

// NewFromPattern returns a grid seeded with the pattern offsets translated by
// anchor. Offsets landing outside the surface are clipped: they are inert and
// never rendered or counted.
func NewFromPattern(w, h int, anchor Cell, offsets []Cell) *Grid {
	g := New(w, h)
	for _, off := range offsets {
		c := Cell{X: anchor.X + off.X, Y: anchor.Y + off.Y}
		if g.InSurface(c) {
			g.cells[g.index(c)] = true
		}
	}
	return g
}

func (g *Grid) index(c Cell) int { return c.Y*g.W + c.X }

// InSurface reports whether the cell lies within the grid surface.
func (g *Grid) InSurface(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Alive reports whether the cell is live. Cells outside the surface are dead.
func (g *Grid) Alive(c Cell) bool {
	if !g.InSurface(c) {
		return false
	}
	return g.cells[g.index(c)]
}

// Toggle flips the alive flag of an in-surface cell.
func (g *Grid) Toggle(c Cell) error {
	if !g.InSurface(c) {
		return errors.Wrapf(ErrOutOfSurface, "toggle (%d,%d)", c.X, c.Y)
	}
	g.cells[g.index(c)] = !g.cells[g.index(c)]
	return nil
}

// Cells exposes the backing row-major slice so renderers can read values
// directly.
func (g *Grid) Cells() []bool { return g.cells }

// AliveCells returns the coordinates of every live cell.
func (g *Grid) AliveCells() []Cell {
	cells := make([]Cell, 0)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.cells[y*g.W+x] {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{W: g.W, H: g.H, cells: cells}
}
