// Package grid provides rectangular rune grids used as puzzle boards:
//
//   - Validation of rectangular input (ErrEmptyGrid, ErrNonRectangular)
//   - Bounds checks and coordinate/index conversion
//   - Rune lookup and swapping, returning fresh immutable grids
//
// Coordinates are (x, y) with x the column and y the row, origin top-left.
package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty list of equal-length rows.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func New(rows []string) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	w := len([]rune(rows[0]))
	var b strings.Builder
	for y, row := range rows {
		if n := len([]rune(row)); n != w {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, n, w)
		}
		b.WriteString(row)
	}

	return Grid{Width: w, Height: len(rows), cells: b.String()}, nil
}

// MustNew is New for literals known to be valid; it panics on error.
func MustNew(rows ...string) Grid {
	g, err := New(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// SameShape reports whether g and o have identical dimensions.
func (g Grid) SameShape(o Grid) bool {
	return g.Width == o.Width && g.Height == o.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// At returns the rune at (x,y). It panics when (x,y) is out of bounds.
func (g Grid) At(x, y int) rune {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.Width, g.Height))
	}
	return []rune(g.cells)[g.index(x, y)]
}

// Find returns the coordinates of the first occurrence of r in row-major
// order.
func (g Grid) Find(r rune) (x, y int, ok bool) {
	for i, c := range []rune(g.cells) {
		if c == r {
			x, y = g.Coordinate(i)
			return x, y, true
		}
	}
	return 0, 0, false
}

// Count returns how many cells hold r.
func (g Grid) Count(r rune) int {
	return strings.Count(g.cells, string(r))
}

// Swap returns a copy of g with the cells at (x1,y1) and (x2,y2) exchanged.
func (g Grid) Swap(x1, y1, x2, y2 int) (Grid, error) {
	if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
		return Grid{}, fmt.Errorf("%w: swap (%d,%d)↔(%d,%d) in %dx%d", ErrOutOfBounds, x1, y1, x2, y2, g.Width, g.Height)
	}
	cells := []rune(g.cells)
	i, j := g.index(x1, y1), g.index(x2, y2)
	cells[i], cells[j] = cells[j], cells[i]
	return Grid{Width: g.Width, Height: g.Height, cells: string(cells)}, nil
}

// Neighbors lists the in-bounds orthogonal neighbors of (x,y), clockwise
// from north.
func (g Grid) Neighbors(x, y int) [][2]int {
	out := make([][2]int, 0, len(orthogonal))
	for _, d := range orthogonal {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, [2]int{nx, ny})
		}
	}
	return out
}

// Rows returns the grid as a list of row strings.
func (g Grid) Rows() []string {
	cells := []rune(g.cells)
	rows := make([]string, g.Height)
	for y := 0; y < g.Height; y++ {
		rows[y] = string(cells[y*g.Width : (y+1)*g.Width])
	}
	return rows
}

// String renders the rows separated by '/'.
func (g Grid) String() string {
	return strings.Join(g.Rows(), "/")
}
