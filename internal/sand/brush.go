package sand

import (
	"math"

	"sandfall/internal/core"
)

// mapToGrid scales a viewport-relative point onto grid coordinates. The
// result may lie outside the grid; per-cell bounds checks below drop those
// accesses, so a pointer dragged past the canvas edge is simply ignored.
func (w *World) mapToGrid(px, py, vw, vh float64) (int, int, bool) {
	if vw <= 0 || vh <= 0 {
		return 0, 0, false
	}
	gx := int(math.Floor(px / vw * float64(w.grid.W)))
	gy := int(math.Floor(py / vh * float64(w.grid.H)))
	return gx, gy, true
}

// Spawn paints a soft dab of sand centered on the mapped pointer position and
// reports how many cells were placed. Occupied cells are left alone. Offsets
// past the jittered radius are skipped, which rounds the square brush into a
// ragged circle instead of a stamped block. In rainbow mode the stroke, not
// each placed cell, advances the rotating hue once.
func (w *World) Spawn(px, py, vw, vh float64) int {
	gx, gy, ok := w.mapToGrid(px, py, vw, vh)
	if !ok {
		return 0
	}
	r := w.cfg.Params.SpawnRadius
	placed := 0
	for oy := -r; oy <= r; oy++ {
		for ox := -r; ox <= r; ox++ {
			x, y := gx+ox, gy+oy
			if !w.grid.InBounds(x, y) {
				continue
			}
			if w.grid.At(x, y).Occupied() {
				continue
			}
			if float64(ox*ox+oy*oy) > float64(r*r)+w.rng.Float64()*2 {
				continue
			}
			w.grid.Set(x, y, w.palette.Pick())
			placed++
		}
	}
	w.palette.Advance()
	return placed
}

// Erase clears every cell within the circular brush radius and reports how
// many were occupied. Unlike Spawn there is no probability gate; rubbing out
// is deterministic.
func (w *World) Erase(px, py, vw, vh float64) int {
	gx, gy, ok := w.mapToGrid(px, py, vw, vh)
	if !ok {
		return 0
	}
	r := w.cfg.Params.EraseRadius
	cleared := 0
	for oy := -r; oy <= r; oy++ {
		for ox := -r; ox <= r; ox++ {
			if ox*ox+oy*oy > r*r {
				continue
			}
			x, y := gx+ox, gy+oy
			if !w.grid.InBounds(x, y) {
				continue
			}
			if w.grid.At(x, y).Occupied() {
				cleared++
			}
			w.grid.Set(x, y, core.Cell{})
		}
	}
	return cleared
}
