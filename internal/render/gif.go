package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// ErrNoFrames is returned when encoding a recorder with nothing recorded.
var ErrNoFrames = errors.New("render: no frames recorded")

// GIFRecorder collects grid snapshots as frames of an animated GIF. Every
// cell becomes a scale×scale block coloured through a fixed palette.
type GIFRecorder[T comparable] struct {
	colors  map[T]uint8
	palette color.Palette
	scale   int
	delay   int
	anim    gif.GIF
	bounds  image.Rectangle
}

// NewGIFRecorder builds a recorder. colors maps cell values to palette
// indices; values missing from the map use index 0. delay is in hundredths
// of a second.
func NewGIFRecorder[T comparable](colors map[T]uint8, palette color.Palette, scale, delay int) (*GIFRecorder[T], error) {
	if len(palette) == 0 || len(palette) > 256 {
		return nil, fmt.Errorf("render: palette needs 1-256 colours, got %d", len(palette))
	}
	for v, idx := range colors {
		if int(idx) >= len(palette) {
			return nil, fmt.Errorf("render: colour index %d for %v outside palette", idx, v)
		}
	}
	return &GIFRecorder[T]{
		colors:  colors,
		palette: palette,
		scale:   max(scale, 1),
		delay:   delay,
	}, nil
}

// AddFrame appends a snapshot of g. All frames must have the same size.
func (r *GIFRecorder[T]) AddFrame(g *grid.Grid[T]) error {
	bounds := image.Rect(0, 0, g.Width()*r.scale, g.Height()*r.scale)
	if len(r.anim.Image) == 0 {
		r.bounds = bounds
		r.anim.Config = image.Config{ColorModel: r.palette, Width: bounds.Dx(), Height: bounds.Dy()}
	} else if bounds != r.bounds {
		return fmt.Errorf("render: frame %v does not match %v: %w", bounds.Size(), r.bounds.Size(), grid.ErrInvalidDimensions)
	}

	img := image.NewPaletted(bounds, r.palette)
	for p, v := range g.Cells() {
		idx := r.colors[v]
		for dy := range r.scale {
			row := img.Pix[(p.Y*r.scale+dy)*img.Stride:]
			for dx := range r.scale {
				row[p.X*r.scale+dx] = idx
			}
		}
	}
	r.anim.Image = append(r.anim.Image, img)
	r.anim.Delay = append(r.anim.Delay, r.delay)
	return nil
}

// Frames returns the number of frames recorded.
func (r *GIFRecorder[T]) Frames() int { return len(r.anim.Image) }

// Encode writes the animation to w. The recorder can keep recording after.
func (r *GIFRecorder[T]) Encode(w io.Writer) error {
	if len(r.anim.Image) == 0 {
		return ErrNoFrames
	}
	return gif.EncodeAll(w, &r.anim)
}
