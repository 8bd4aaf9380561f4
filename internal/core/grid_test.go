package core

import "testing"

func TestGridOutOfBoundsIsNoOp(t *testing.T) {
	g := NewGrid(4, 3)
	c := NewCell(1, 2, 3)

	g.Set(-1, 0, c)
	g.Set(0, -1, c)
	g.Set(4, 0, c)
	g.Set(0, 3, c)
	if got := g.Count(); got != 0 {
		t.Fatalf("out-of-bounds writes must be dropped, got %d cells", got)
	}

	if got := g.At(-1, 0); got.Occupied() {
		t.Fatalf("out-of-bounds read returned occupied cell %v", got)
	}
	if got := g.At(4, 3); got != (Cell{}) {
		t.Fatalf("out-of-bounds read = %v, want empty", got)
	}
}

func TestGridSetAtClear(t *testing.T) {
	g := NewGrid(4, 3)
	c := NewCell(10, 20, 30)

	g.Set(2, 1, c)
	if got := g.At(2, 1); got != c {
		t.Fatalf("At(2,1) = %v, want %v", got, c)
	}
	if g.Count() != 1 {
		t.Fatalf("Count = %d, want 1", g.Count())
	}

	g.Set(2, 1, Cell{})
	if g.At(2, 1).Occupied() {
		t.Fatal("clearing a cell left it occupied")
	}

	g.Set(0, 0, c)
	g.Set(3, 2, c)
	g.Clear()
	if g.Count() != 0 {
		t.Fatalf("Count after Clear = %d, want 0", g.Count())
	}
}

func TestGridClampsDegenerateSize(t *testing.T) {
	g := NewGrid(0, -5)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("degenerate dimensions not clamped: %dx%d", g.W, g.H)
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("backing slice has %d cells, want 1", len(g.Cells()))
	}
}
