package render

import (
	"image"
	"image/color"

	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// DefaultPalette colours state 0 black, 1 white and 2 a dim blue, matching
// the live and dying states of the bundled automata.
var DefaultPalette = []color.RGBA{
	{0, 0, 0, 255},
	{255, 255, 255, 255},
	{40, 80, 200, 255},
}

// FillBinaryRGBA converts binary cell data (0/non-zero) into RGBA pixels in
// buf, which must hold 4 bytes per cell.
func FillBinaryRGBA(buf []byte, g *grid.Grid[uint8], on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	i := 0
	for c := range g.Values() {
		base := i * 4
		i++
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// FillRGBA converts cell values into RGBA pixels using a palette. Values past
// the end of the palette use its last colour. When the palette is empty the
// buffer is cleared to transparent black.
func FillRGBA(buf []byte, g *grid.Grid[uint8], palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*g.Len()])
		return
	}

	last := len(palette) - 1
	i := 0
	for c := range g.Values() {
		col := palette[min(int(c), last)]
		base := i * 4
		i++
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image renders g into a new RGBA image, one pixel per cell.
func Image(g *grid.Grid[uint8], palette []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	FillRGBA(img.Pix, g, palette)
	return img
}
