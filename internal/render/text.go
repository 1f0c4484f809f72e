package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// WriteText writes g to w one row per line, converting cells with fn.
func WriteText[T any](w io.Writer, g *grid.Grid[T], fn func(T) rune) error {
	bw := bufio.NewWriter(w)
	for y := range g.Height() {
		for _, v := range g.Row(y) {
			if _, err := bw.WriteRune(fn(v)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Text is WriteText into a string.
func Text[T any](g *grid.Grid[T], fn func(T) rune) string {
	var b strings.Builder
	_ = WriteText(&b, g, fn)
	return b.String()
}

// Runes is the identity conversion for rune grids.
func Runes(r rune) rune { return r }

// Cells draws state 0 as '.', state 1 as '#' and higher states as digits.
func Cells(v uint8) rune {
	switch {
	case v == 0:
		return '.'
	case v == 1:
		return '#'
	case v < 10:
		return rune('0' + v)
	default:
		return '+'
	}
}
