package sand

import (
	"sandfall/internal/core"
)

// Step advances the simulation by one tick. It is conservative: cells move,
// none are created or destroyed.
//
// The scan runs bottom-to-top over the live grid, so a move made by a lower
// cell is visible to cells processed later in the same tick. That coupling is
// deliberate: a whole column can settle one row per tick instead of lagging
// the way a double-buffered update would. Within each row the column walk
// starts at a fresh random offset and wraps, so neither edge gets a
// persistent head start that would make piles lean one way.
func (w *World) Step() {
	g := w.grid
	moves := 0
	for y := g.H - 2; y >= 0; y-- {
		xOffset := w.rng.IntN(g.W)
		for i := 0; i < g.W; i++ {
			x := (i + xOffset) % g.W
			c := g.At(x, y)
			if !c.Occupied() {
				continue
			}
			if w.moveCell(x, y, c) {
				moves++
			}
		}
	}
	w.moves = moves
}

// moveCell applies the fall / diagonal slide / lateral avalanche rules to one
// occupied cell above the bottom row and reports whether it relocated.
func (w *World) moveCell(x, y int, c core.Cell) bool {
	g := w.grid

	// Straight fall wins outright, including from the boundary columns.
	if !g.At(x, y+1).Occupied() {
		g.Set(x, y, core.Cell{})
		g.Set(x, y+1, c)
		return true
	}

	// Diagonal slide. The outer columns count as solid targets, so a slide
	// can carry a cell into the interior but never off either edge.
	left := w.interiorFree(x-1, y+1)
	right := w.interiorFree(x+1, y+1)
	if left || right {
		dx := w.chooseSide(left, right)
		g.Set(x, y, core.Cell{})
		g.Set(x+dx, y+1, c)
		return true
	}

	// Lateral avalanche: relax sideways only when the continuation diagonal
	// past the new column is open, so a cell slides off a peak but never
	// crosses into a one-cell trench it could not leave. The throttle
	// probability keeps piles flattening gradually instead of instantly.
	left = w.interiorFree(x-1, y) && w.interiorFree(x-2, y+1)
	right = w.interiorFree(x+1, y) && w.interiorFree(x+2, y+1)
	if (left || right) && w.rng.Float64() < w.cfg.Params.AvalancheChance {
		dx := w.chooseSide(left, right)
		g.Set(x, y, core.Cell{})
		g.Set(x+dx, y, c)
		return true
	}

	return false
}

// interiorFree reports whether (x, y) is an empty interior cell. The two
// boundary columns are permanently solid for slide and avalanche targets.
func (w *World) interiorFree(x, y int) bool {
	if x < 1 || x > w.grid.W-2 {
		return false
	}
	return !w.grid.At(x, y).Occupied()
}

// chooseSide flips a fair coin between left and right, then falls back to
// whichever side is actually free. At least one side must be free.
func (w *World) chooseSide(left, right bool) int {
	dx := -1
	if w.rng.Bool() {
		dx = 1
	}
	if dx == 1 && !right {
		dx = -1
	}
	if dx == -1 && !left {
		dx = 1
	}
	return dx
}
