// Package grid treats a small rectangle of runes as an immutable value.
//
// It is the board representation behind the sliding-tile puzzle: a Grid is
// comparable, so it can be used directly as a search state and as a key in
// explored sets. Every mutating operation (Swap) returns a new Grid.
//
// Construction validates shape:
//
//	g, err := grid.New([]string{"ca", "_b"})
//	// err is ErrEmptyGrid or ErrNonRectangular for malformed input
//
// Coordinates are (x, y): x is the column, y the row, origin top-left.
// Neighbors yields the orthogonal cells around a coordinate, clockwise from north.
package grid
