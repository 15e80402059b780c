package bestfirst_test

import (
	"testing"

	"github.com/katalvlaran/searchgrade/bestfirst"
	"github.com/katalvlaran/searchgrade/internal/fixture"
)

// BenchmarkUniformCost_Lattice measures UCS on a 100×100 grid with random
// weights in [1, 9].
func BenchmarkUniformCost_Lattice(b *testing.B) {
	g, err := fixture.Lattice(100, 100, fixture.WithWeights(fixture.UniformWeight(1, 9), 42))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bestfirst.UniformCost(g)
	}
}
