package grading_test

import (
	"context"

	"github.com/katalvlaran/searchgrade/core"
	"github.com/katalvlaran/searchgrade/internal/ctxlog"
	"github.com/katalvlaran/searchgrade/internal/fixture"
	"github.com/katalvlaran/searchgrade/search"
)

// quiet returns a background context whose logger drops everything.
func quiet() context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}

// line returns A→B→C with unit arcs and the given per-vertex estimates.
func line(estimate map[string]float64) *fixture.Informed {
	g := fixture.NewGraph("A", "C")
	g.Name = "line"
	g.AddArc("A", "B", 1).AddArc("B", "C", 1)
	return &fixture.Informed{Graph: g, Estimate: estimate}
}

// walk builds the node chain root→...→last along actions.
func walk(p core.Problem, actions ...string) *core.Node {
	n := core.NewNode(p.Initial())
	for _, a := range actions {
		n = n.ChildNode(p, a)
	}
	return n
}

// brittle panics when asked to move into Panic.
type brittle struct {
	*fixture.Graph
	Panic string
}

func (b *brittle) Result(s core.State, action string) core.State {
	if action == b.Panic {
		panic("boom")
	}
	return b.Graph.Result(s, action)
}

// exploding has a heuristic that always panics.
type exploding struct {
	*fixture.Graph
}

func (e *exploding) H(*core.Node) float64 { panic("no estimate today") }

// sliceState has a non-comparable initial state.
type sliceState struct {
	*fixture.Graph
}

func (s *sliceState) Initial() core.State { return []string{"A"} }

// nilState has no initial state.
type nilState struct {
	*fixture.Graph
}

func (s *nilState) Initial() core.State { return nil }

func method(name string) search.Method {
	m, ok := search.NewRegistry(search.RegistryOptions{Seed: 1}).Lookup(name)
	if !ok {
		panic("unknown method " + name)
	}
	return m
}
