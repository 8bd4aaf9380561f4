//go:build ebiten

package app

import (
	"image/color"

	"sandfall/internal/render"
	"sandfall/internal/sand"
	"sandfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// fixedColors are the swatches reachable from the number keys. Digit zero
// returns to the rotating rainbow hue.
var fixedColors = [...][3]uint8{
	{230, 57, 70},   // red
	{244, 162, 97},  // orange
	{233, 196, 106}, // yellow
	{42, 157, 143},  // teal
	{69, 123, 157},  // steel blue
	{38, 70, 83},    // deep slate
	{168, 218, 220}, // pale cyan
	{181, 131, 141}, // rose
	{255, 255, 255}, // white
}

// Game adapts a sand.World to the ebiten.Game interface. Pointer input turns
// into brush calls; the grid itself is only ever written through those calls.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	hud     *ui.HUD

	bg color.Color

	scale    int
	erasing  bool
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *sand.World, scale int, seed int64) *Game {
	size := world.Size()
	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(world, scale),
		bg:      color.Black,
		scale:   scale,
		seed:    seed,
	}
}

// Update handles per-frame input, applies at most one brush stroke and then
// advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.erasing = !g.erasing
	}
	g.handleColorKeys()

	if g.hud != nil {
		g.hud.Update()
	}

	g.applyBrush()

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// applyBrush issues at most one spawn or erase per frame while a mouse button
// is held. The right button always erases; the left follows the E toggle.
func (g *Game) applyBrush() {
	size := g.world.Size()
	vw := float64(size.W * g.scale)
	vh := float64(size.H * g.scale)
	mx, my := ebiten.CursorPosition()
	px, py := float64(mx), float64(my)

	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.world.Erase(px, py, vw, vh)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if g.erasing {
			g.world.Erase(px, py, vw, vh)
		} else {
			g.world.Spawn(px, py, vw, vh)
		}
	}
}

func (g *Game) handleColorKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) {
		g.world.SetRainbow()
	}
	for i, c := range fixedColors {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			g.world.SetFixedColor(c[0], c[1], c[2])
		}
	}
}

// Draw renders the current grid and the HUD status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.bg, g.scale)
	if g.hud != nil {
		g.hud.Draw(screen, g.paused, g.erasing)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.world.Size()
	return size.W * g.scale, size.H * g.scale
}
