package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse reads a rectangular block of text, one row per line, into a grid of
// runes. Lines may end in "\n" or "\r\n" and a single trailing newline is
// ignored. Every line must have the same number of runes.
func Parse(input string, opts Options) (*Grid[rune], error) {
	return ParseFunc(input, opts, func(r rune) (rune, error) { return r, nil })
}

// ParseFunc is Parse with every rune converted by fn. The first error from fn
// aborts parsing and is returned wrapped with the cell position.
func ParseFunc[T any](input string, opts Options, fn func(rune) (T, error)) (*Grid[T], error) {
	lines := splitLines(input)
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmpty
	}
	width := utf8.RuneCountInString(lines[0])
	data := make([]T, 0, width*len(lines))
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("line %d has %d cells, want %d: %w", y+1, n, width, ErrRagged)
		}
		x := 0
		for _, r := range line {
			v, err := fn(r)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d) %q: %w", x, y, r, err)
			}
			data = append(data, v)
			x++
		}
	}
	return newGrid(width, len(lines), opts, data), nil
}

// MustParse is Parse for inputs known to be valid, such as test fixtures. It
// panics on error.
func MustParse(input string, opts Options) *Grid[rune] {
	g, err := Parse(input, opts)
	if err != nil {
		panic(err)
	}
	return g
}

func splitLines(input string) []string {
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
