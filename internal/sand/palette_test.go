package sand

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"sandfall/internal/core"
)

func TestPaletteFixedMode(t *testing.T) {
	p := NewPalette(core.NewRNG(1), DefaultConfig().Params)
	p.SetFixed(9, 8, 7)

	want := core.NewCell(9, 8, 7)
	for i := 0; i < 10; i++ {
		if got := p.Pick(); got != want {
			t.Fatalf("fixed pick %d = %v, want %v", i, got, want)
		}
	}

	// The rotating hue freezes while a fixed color is pinned.
	p.Advance()
	p.Advance()
	if p.Hue() != 0 {
		t.Fatalf("hue advanced to %f in fixed mode", p.Hue())
	}

	p.SetRainbow()
	if !p.Rainbow() {
		t.Fatal("SetRainbow did not restore rainbow mode")
	}
}

func TestPaletteAdvanceWrapsAt360(t *testing.T) {
	p := NewPalette(core.NewRNG(1), DefaultConfig().Params)

	p.Advance()
	if p.Hue() != 1.5 {
		t.Fatalf("hue after one advance = %f, want 1.5", p.Hue())
	}
	for i := 0; i < 239; i++ {
		p.Advance()
	}
	// 240 advances of 1.5 degrees make one full turn; 1.5 is an exact binary
	// fraction so the wrap lands on zero precisely.
	if p.Hue() != 0 {
		t.Fatalf("hue after full rotation = %f, want 0", p.Hue())
	}
}

func TestPalettePickMatchesHSLTransform(t *testing.T) {
	params := DefaultConfig().Params
	params.HueJitter = 0
	p := NewPalette(core.NewRNG(1), params)

	r, g, b := colorful.Hsl(0, params.Saturation, params.Lightness).RGB255()
	if got, want := p.Pick(), core.NewCell(r, g, b); got != want {
		t.Fatalf("pick at hue 0 = %v, want %v", got, want)
	}

	p.Advance()
	r, g, b = colorful.Hsl(1.5, params.Saturation, params.Lightness).RGB255()
	if got, want := p.Pick(), core.NewCell(r, g, b); got != want {
		t.Fatalf("pick at hue 1.5 = %v, want %v", got, want)
	}
}

func TestPaletteJitterVariesColors(t *testing.T) {
	p := NewPalette(core.NewRNG(99), DefaultConfig().Params)

	distinct := map[core.Cell]bool{}
	for i := 0; i < 50; i++ {
		c := p.Pick()
		if !c.Occupied() {
			t.Fatalf("pick %d returned an empty cell", i)
		}
		distinct[c] = true
	}
	if len(distinct) < 2 {
		t.Fatal("hue jitter produced a single color across 50 picks")
	}
}

func TestPaletteHueStaysInRange(t *testing.T) {
	p := NewPalette(core.NewRNG(5), DefaultConfig().Params)
	for i := 0; i < 1000; i++ {
		p.Advance()
		if h := p.Hue(); h < 0 || h >= 360 || math.IsNaN(h) {
			t.Fatalf("hue left [0,360) after %d advances: %f", i+1, h)
		}
	}
}
