// Package grid provides the 2D grid shared by the daily solvers: integer
// coordinates, compass directions, bounded or toroidal adjacency and a dense
// row-major container with geometric transforms.
//
// Coordinates use screen orientation: x grows to the right and y grows
// downward, so North is (0,-1) and South is (0,1).
//
// Grids carry no locking. Any number of goroutines may read a grid that is
// not being modified; writers must be serialised by the caller or work on a
// Clone.
package grid
