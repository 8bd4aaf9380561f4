//go:build ebiten

package ui

import (
	"fmt"

	"sandfall/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUD draws a one-line status readout over the simulation: brush mode,
// current color, occupancy and how much sand moved last tick.
type HUD struct {
	world *sand.World
	scale int
	show  bool
}

// NewHUD constructs a HUD for the provided world.
func NewHUD(world *sand.World, scale int) *HUD {
	return &HUD{world: world, scale: scale, show: true}
}

// Update toggles HUD visibility.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.show = !h.show
	}
}

// Draw renders the status line.
func (h *HUD) Draw(screen *ebiten.Image, paused, erasing bool) {
	if !h.show {
		return
	}

	mode := fmt.Sprintf("rainbow %.1f°", h.world.Palette().Hue())
	if !h.world.Palette().Rainbow() {
		c := h.world.Palette().Fixed()
		mode = fmt.Sprintf("fixed #%02x%02x%02x", c.R, c.G, c.B)
	}
	brush := "spawn"
	if erasing {
		brush = "erase"
	}
	state := ""
	if paused {
		state = "  [paused]"
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  brush:%s  cells:%d  moved:%d%s",
		mode, brush, h.world.Count(), h.world.Moves(), state))
}
