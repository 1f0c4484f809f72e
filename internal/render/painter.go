//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// GridPainter updates a single RGBA image from a simulation grid.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette []color.RGBA) *GridPainter {
	return &GridPainter{
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		palette: palette,
	}
}

// Blit uploads the grid into the painter image and draws it scaled. Grids of
// a different size are skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *grid.Grid[uint8], scale int) {
	if g.Width() != gp.w || g.Height() != gp.h {
		return
	}
	FillRGBA(gp.buf, g, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
