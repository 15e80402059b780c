// Package grid defines core types and sentinel errors for rectangular rune
// grids.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrShapeMismatch indicates two grids with different dimensions.
	ErrShapeMismatch = errors.New("grid: grids have different dimensions")
)

// orthogonal lists the (dx, dy) neighbor offsets clockwise from north.
var orthogonal = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is an immutable rectangular grid of runes.
// Width and Height define dimensions; cells holds the runes in row-major
// order. Grid is a comparable value, so it can key maps and serve directly
// as a search state.
type Grid struct {
	Width, Height int
	cells         string
}
