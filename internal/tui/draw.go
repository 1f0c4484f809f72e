// Package tui renders grids and runs simulations in a terminal.
package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// Glyph is the rune and style a cell is drawn with.
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// Draw puts every cell of g on s with its top-left corner at (x0, y0). Cells
// outside the screen are clipped.
func Draw[T any](s tcell.Screen, g *grid.Grid[T], x0, y0 int, glyph func(T) Glyph) {
	sw, sh := s.Size()
	for p, v := range g.Cells() {
		x, y := x0+p.X, y0+p.Y
		if x < 0 || y < 0 || x >= sw || y >= sh {
			continue
		}
		gl := glyph(v)
		s.SetContent(x, y, gl.Rune, nil, gl.Style)
	}
}

// DrawText writes str starting at (x, y), clipped to the screen width.
func DrawText(s tcell.Screen, x, y int, str string, style tcell.Style) {
	sw, _ := s.Size()
	for _, r := range str {
		if x >= sw {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

var stateGlyphs = []Glyph{
	{' ', tcell.StyleDefault},
	{'█', tcell.StyleDefault.Foreground(tcell.ColorWhite)},
	{'▒', tcell.StyleDefault.Foreground(tcell.ColorBlue)},
}

// StateGlyph draws simulation states: 0 blank, 1 a full block, 2 a shaded
// block and anything higher as a digit.
func StateGlyph(v uint8) Glyph {
	if int(v) < len(stateGlyphs) {
		return stateGlyphs[v]
	}
	if v < 10 {
		return Glyph{rune('0' + v), tcell.StyleDefault.Foreground(tcell.ColorYellow)}
	}
	return Glyph{'+', tcell.StyleDefault.Foreground(tcell.ColorYellow)}
}

// RuneGlyph draws a rune grid as-is, highlighting a few common puzzle marks.
func RuneGlyph(r rune) Glyph {
	switch r {
	case '#':
		return Glyph{r, tcell.StyleDefault.Foreground(tcell.ColorGray)}
	case 'S', 'E':
		return Glyph{r, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)}
	case 'O', '*':
		return Glyph{r, tcell.StyleDefault.Foreground(tcell.ColorRed)}
	}
	return Glyph{r, tcell.StyleDefault}
}
