package dfs_test

import (
	"testing"

	"github.com/katalvlaran/searchgrade/dfs"
	"github.com/katalvlaran/searchgrade/internal/fixture"
)

// BenchmarkDepthFirstGraph_Lattice measures DFS graph search on a 100×100 grid.
func BenchmarkDepthFirstGraph_Lattice(b *testing.B) {
	g, err := fixture.Lattice(100, 100)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DepthFirstGraph(g)
	}
}

// BenchmarkIterativeDeepening_Cycle measures IDS to the far side of a ring.
func BenchmarkIterativeDeepening_Cycle(b *testing.B) {
	g, err := fixture.Cycle(24)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.IterativeDeepening(g)
	}
}
