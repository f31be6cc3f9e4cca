package life

// neighborOffsets is the Moore neighborhood relative to a cell.
var neighborOffsets = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Advance computes the next generation of g and returns it as a fresh grid.
// The input grid is never mutated.
//
// Counting is sparse: only live cells and their dead neighbors are visited,
// so the cost scales with the population rather than the surface. Births
// outside the surface are discarded, which is the boundary condition: life
// cannot spawn or persist beyond the visible surface.
func Advance(g *Grid) *Grid {
	next := g.Clone()

	alive := g.AliveCells()
	liveCounts := make(map[Cell]int, len(alive))
	for _, c := range alive {
		liveCounts[c] = 0
	}
	birthCounts := make(map[Cell]int)

	for _, c := range alive {
		for _, off := range neighborOffsets {
			n := Cell{X: c.X + off.X, Y: c.Y + off.Y}
			if g.Alive(n) {
				liveCounts[c]++
			} else {
				birthCounts[n]++
			}
		}
	}

	// Underpopulation and overcrowding. Survivors with 2 or 3 neighbors are
	// already live in the copy.
	for c, count := range liveCounts {
		if count < 2 || count > 3 {
			next.cells[next.index(c)] = false
		}
	}

	// Reproduction, restricted to the surface.
	for c, count := range birthCounts {
		if count == 3 && next.InSurface(c) {
			next.cells[next.index(c)] = true
		}
	}

	return next
}
