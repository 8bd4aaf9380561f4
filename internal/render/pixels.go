package render

import (
	"image/color"

	"sandfall/internal/core"
)

// fillCellsRGBA converts grid cells into RGBA pixels in buf. Empty cells take
// the background color; occupied cells keep their spawn color exactly.
func fillCellsRGBA(buf []byte, cells []core.Cell, bg color.Color) {
	r, g, b, a := bg.RGBA()
	bgR := uint8(r >> 8)
	bgG := uint8(g >> 8)
	bgB := uint8(b >> 8)
	bgA := uint8(a >> 8)
	for i, c := range cells {
		base := i * 4
		if c.Occupied() {
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
			continue
		}
		buf[base+0] = bgR
		buf[base+1] = bgG
		buf[base+2] = bgB
		buf[base+3] = bgA
	}
}
