package sand

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"sandfall/internal/core"
)

// Palette decides the color of newly spawned cells. In rainbow mode the hue
// rotates a little with every brush stroke and each cell gets a small upward
// jitter for visual variety. In fixed mode every cell receives the externally
// chosen color and the rotating hue freezes in place.
type Palette struct {
	rng *core.RNG

	hue      float64
	fixed    core.Cell
	useFixed bool

	step       float64
	jitter     float64
	saturation float64
	lightness  float64
}

// NewPalette builds a rainbow-mode palette drawing randomness from rng.
func NewPalette(rng *core.RNG, p Params) *Palette {
	return &Palette{
		rng:        rng,
		step:       p.HueStep,
		jitter:     p.HueJitter,
		saturation: p.Saturation,
		lightness:  p.Lightness,
	}
}

// Pick returns the color for one spawned cell.
func (p *Palette) Pick() core.Cell {
	if p.useFixed {
		return p.fixed
	}
	h := math.Mod(p.hue+p.rng.Float64()*p.jitter, 360)
	r, g, b := colorful.Hsl(h, p.saturation, p.lightness).RGB255()
	return core.NewCell(r, g, b)
}

// Advance rotates the hue once per brush stroke. Fixed mode leaves it alone.
func (p *Palette) Advance() {
	if p.useFixed {
		return
	}
	p.hue = math.Mod(p.hue+p.step, 360)
}

// SetFixed pins the palette to a single color.
func (p *Palette) SetFixed(r, g, b uint8) {
	p.fixed = core.NewCell(r, g, b)
	p.useFixed = true
}

// SetRainbow returns to the rotating hue.
func (p *Palette) SetRainbow() { p.useFixed = false }

// Rainbow reports whether the rotating hue is active.
func (p *Palette) Rainbow() bool { return !p.useFixed }

// Fixed returns the pinned color. Meaningful only in fixed mode.
func (p *Palette) Fixed() core.Cell { return p.fixed }

// Hue exposes the current rotating hue in degrees.
func (p *Palette) Hue() float64 { return p.hue }

// resetHue rewinds the rotation to its startup phase. The mode choice is
// owned by the UI and survives a world reset.
func (p *Palette) resetHue() { p.hue = 0 }
