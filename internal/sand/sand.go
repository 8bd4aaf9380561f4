package sand

import (
	"sandfall/internal/core"
)

// World owns one falling-sand simulation: the cell grid, the color policy and
// the seeded randomness behind every tie-break. Nothing else mutates the grid;
// renderers read it through Cells or Snapshot.
type World struct {
	cfg Config

	grid    *core.Grid
	rng     *core.RNG
	palette *Palette

	moves int
}

// New returns a World with the given dimensions and default tuning.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options.
func NewWithConfig(cfg Config) *World {
	rng := core.NewRNG(cfg.Seed)
	return &World{
		cfg:     cfg,
		grid:    core.NewGrid(cfg.Width, cfg.Height),
		rng:     rng,
		palette: NewPalette(rng, cfg.Params),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandfall" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Cells exposes the live grid for a renderer. Callers must not write it.
func (w *World) Cells() []core.Cell { return w.grid.Cells() }

// Snapshot copies the current grid contents.
func (w *World) Snapshot() []core.Cell {
	return append([]core.Cell(nil), w.grid.Cells()...)
}

// Grid exposes the underlying store.
func (w *World) Grid() *core.Grid { return w.grid }

// Palette exposes the color policy so the UI can toggle modes.
func (w *World) Palette() *Palette { return w.palette }

// Count returns the number of occupied cells.
func (w *World) Count() int { return w.grid.Count() }

// Moves reports how many cells relocated during the last Step.
func (w *World) Moves() int { return w.moves }

// SetFixedColor pins the brush to one color.
func (w *World) SetFixedColor(r, g, b uint8) { w.palette.SetFixed(r, g, b) }

// SetRainbow restores the rotating-hue brush.
func (w *World) SetRainbow() { w.palette.SetRainbow() }

// Reset clears the grid, rewinds the hue rotation and restarts the random
// sequence. A zero seed falls back to the configured seed, so Reset(0)
// replays the startup state.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng.Reseed(seed)
	w.grid.Clear()
	w.palette.resetHue()
	w.moves = 0
}
