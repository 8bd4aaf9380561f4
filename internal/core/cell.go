package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cell is one grid cell. The zero value is empty; occupied cells carry an RGB
// color with A set to 255. A cell's color never changes after it is placed;
// movement copies the value verbatim.
type Cell struct {
	R, G, B, A uint8
}

// NewCell returns an occupied cell with the given color.
func NewCell(r, g, b uint8) Cell {
	return Cell{R: r, G: g, B: b, A: 255}
}

// Occupied reports whether the cell holds material.
func (c Cell) Occupied() bool { return c.A != 0 }
