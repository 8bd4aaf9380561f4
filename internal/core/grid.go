package core

// Grid stores a 2D field of cells in row-major order. Bounds are closed:
// reads and writes outside [0,W)x[0,H) are silent no-ops rather than panics,
// since brush coordinates derived from pointer input routinely land off-grid.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y), or the empty cell when out of bounds.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.data[y*g.W+x]
}

// Set stores a cell at (x, y). Out-of-bounds writes are dropped.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = c
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Cell{}
	}
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for i := range g.data {
		if g.data[i].Occupied() {
			n++
		}
	}
	return n
}
