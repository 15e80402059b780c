package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchgrade/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"EmptyRows", []string{}, grid.ErrEmptyGrid},
		{"EmptyCols", []string{""}, grid.ErrEmptyGrid},
		{"NonRectangular", []string{"ab", "c"}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g := grid.MustNew("abc", "de_")
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

//----------------------------------------------------------------------------//
// Lookup, Swap and value semantics
//----------------------------------------------------------------------------//

func TestFindAtSwap(t *testing.T) {
	g := grid.MustNew("ca", "_b")
	x, y, ok := g.Find('_')
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 1}, [2]int{x, y})
	assert.Equal(t, 'b', g.At(1, 1))

	_, _, ok = g.Find('z')
	assert.False(t, ok)

	s, err := g.Swap(0, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ca", "b_"}, s.Rows())
	// the original is untouched
	assert.Equal(t, "ca/_b", g.String())

	_, err = g.Swap(0, 0, 5, 5)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	assert.Panics(t, func() { g.At(2, 0) })
}

func TestGridIsComparable(t *testing.T) {
	a := grid.MustNew("ab", "c_")
	b := grid.MustNew("ab", "c_")
	seen := map[grid.Grid]bool{a: true}
	assert.True(t, seen[b])
	assert.True(t, a.SameShape(grid.MustNew("xy", "z_")))
	assert.False(t, a.SameShape(grid.MustNew("xyz", "_uv")))
}

func TestNeighbors(t *testing.T) {
	g := grid.MustNew("abc", "def", "gh_")
	assert.Equal(t, [][2]int{{1, 0}, {2, 1}, {1, 2}, {0, 1}}, g.Neighbors(1, 1), "clockwise from north")
	assert.Equal(t, [][2]int{{1, 0}, {0, 1}}, g.Neighbors(0, 0))
	assert.Equal(t, [][2]int{{2, 1}, {1, 2}}, g.Neighbors(2, 2))
	assert.Equal(t, 1, g.Count('_'))
}
