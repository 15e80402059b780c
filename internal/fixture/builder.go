// SPDX-License-Identifier: MIT
// Package: searchgrade/internal/fixture
//
// builder.go - deterministic graph-problem generators for tests and benchmarks.
//
// Contract:
//   • Path(n):         v0 → v1 → … → v{n-1}, start v0, goal v{n-1}.
//   • Cycle(n):        Path(n) plus the closing arc v{n-1} → v0, both directions.
//   • Lattice(r, c):   r×c orthogonal grid, IDs "r,c", start "0,0", goal at the
//                      opposite corner, 4-neighbourhood in both directions.
//   • Weights come from the WeightFn (default: constant 1).
//   • n < 2, r < 1 or c < 1 yield ErrTooFewVertices.
//
// Determinism:
//   • Vertices and arcs are emitted in index (row-major) order; a seeded
//     WeightFn therefore produces identical graphs on every run.

package fixture

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrTooFewVertices indicates a generator was asked for a degenerate graph.
var ErrTooFewVertices = errors.New("fixture: too few vertices")

// WeightFn draws the cost of the next emitted edge.
type WeightFn func(rng *rand.Rand) float64

// UnitWeight charges 1 for every edge.
func UnitWeight(*rand.Rand) float64 { return 1 }

// UniformWeight draws integer weights uniformly from [lo, hi].
func UniformWeight(lo, hi int) WeightFn {
	return func(rng *rand.Rand) float64 { return float64(lo + rng.Intn(hi-lo+1)) }
}

// GenOption configures a generator.
type GenOption func(*genConfig)

type genConfig struct {
	weight WeightFn
	rng    *rand.Rand
}

// WithWeights sets the weight function and the seed of its random source.
func WithWeights(fn WeightFn, seed int64) GenOption {
	return func(c *genConfig) {
		if fn != nil {
			c.weight = fn
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func newGenConfig(opts []GenOption) genConfig {
	c := genConfig{weight: UnitWeight, rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func vertex(i int) string { return fmt.Sprintf("v%d", i) }

// Path builds a directed chain of n vertices.
func Path(n int, opts ...GenOption) (*Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("Path: n=%d (must be ≥ 2): %w", n, ErrTooFewVertices)
	}
	cfg := newGenConfig(opts)
	g := NewGraph(vertex(0), vertex(n-1))
	g.Name = fmt.Sprintf("path(%d)", n)
	for i := 0; i+1 < n; i++ {
		g.AddArc(vertex(i), vertex(i+1), cfg.weight(cfg.rng))
	}

	return g, nil
}

// Cycle builds an undirected ring of n vertices, goal halfway round.
func Cycle(n int, opts ...GenOption) (*Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle: n=%d (must be ≥ 3): %w", n, ErrTooFewVertices)
	}
	cfg := newGenConfig(opts)
	g := NewGraph(vertex(0), vertex(n/2))
	g.Name = fmt.Sprintf("cycle(%d)", n)
	for i := 0; i < n; i++ {
		g.AddEdge(vertex(i), vertex((i+1)%n), cfg.weight(cfg.rng))
	}

	return g, nil
}

// Lattice builds a rows×cols grid; each cell links to its right and bottom
// neighbours in both directions.
func Lattice(rows, cols int, opts ...GenOption) (*Graph, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("Lattice: rows=%d, cols=%d: %w", rows, cols, ErrTooFewVertices)
	}
	cfg := newGenConfig(opts)
	id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
	g := NewGraph(id(0, 0), id(rows-1, cols-1))
	g.Name = fmt.Sprintf("lattice(%dx%d)", rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				g.AddEdge(id(r, c), id(r, c+1), cfg.weight(cfg.rng))
			}
			if r+1 < rows {
				g.AddEdge(id(r, c), id(r+1, c), cfg.weight(cfg.rng))
			}
		}
	}

	return g, nil
}
