package grid

// FlipHorizontal mirrors the grid left to right in place.
func (g *Grid[T]) FlipHorizontal() {
	for x := 0; x < g.width/2; x++ {
		for y := 0; y < g.height; y++ {
			g.swap(x, y, g.width-x-1, y)
		}
	}
}

// FlipVertical mirrors the grid top to bottom in place.
func (g *Grid[T]) FlipVertical() {
	for y := 0; y < g.height/2; y++ {
		for x := 0; x < g.width; x++ {
			g.swap(x, y, x, g.height-y-1)
		}
	}
}

// Transpose swaps the axes: cell (x, y) moves to (y, x).
func (g *Grid[T]) Transpose() {
	g.remap(func(x, y int) (int, int) { return x, y })
}

// RotateCW rotates the grid 90° clockwise: cell (x, y) moves to (h-1-y, x).
func (g *Grid[T]) RotateCW() {
	g.remap(func(x, y int) (int, int) { return x, g.height - 1 - y })
}

// RotateCCW rotates the grid 90° counter-clockwise: cell (x, y) moves to
// (y, w-1-x).
func (g *Grid[T]) RotateCCW() {
	g.remap(func(x, y int) (int, int) { return g.width - 1 - x, y })
}

func (g *Grid[T]) swap(x1, y1, x2, y2 int) {
	i, j := g.index(x1, y1), g.index(x2, y2)
	g.data[i], g.data[j] = g.data[j], g.data[i]
}

// remap builds a new buffer, with swapped dimensions, by reading the old
// grid in x-outer/y-inner order through source. The i-th cell read becomes
// the i-th cell of the new row-major buffer.
func (g *Grid[T]) remap(source func(x, y int) (int, int)) {
	next := make([]T, 0, len(g.data))
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			sx, sy := source(x, y)
			next = append(next, g.data[sy*g.width+sx])
		}
	}
	g.width, g.height = g.height, g.width
	g.data = next
}
