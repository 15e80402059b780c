// Package fixture provides small, deterministic search problems for tests
// and examples: an explicit weighted graph and the classic Romania road map.
package fixture

import (
	"sort"

	"github.com/katalvlaran/searchgrade/core"
)

// Edge is a weighted arc to another vertex.
type Edge struct {
	To   string
	Cost float64
}

// Graph is a search problem over an explicit weighted digraph. The action
// that moves along an arc is named after its target vertex. Neighbors are
// enumerated in lexical order so every search is reproducible.
type Graph struct {
	Name  string
	Start string
	Goal  string
	Adj   map[string][]Edge
}

// NewGraph returns an empty graph problem from start to goal.
func NewGraph(start, goal string) *Graph {
	return &Graph{Start: start, Goal: goal, Adj: make(map[string][]Edge)}
}

// AddArc adds a directed arc u→v.
func (g *Graph) AddArc(u, v string, cost float64) *Graph {
	g.Adj[u] = append(g.Adj[u], Edge{To: v, Cost: cost})
	sort.SliceStable(g.Adj[u], func(i, j int) bool { return g.Adj[u][i].To < g.Adj[u][j].To })
	return g
}

// AddEdge adds arcs in both directions.
func (g *Graph) AddEdge(u, v string, cost float64) *Graph {
	return g.AddArc(u, v, cost).AddArc(v, u, cost)
}

// Initial implements core.Problem.
func (g *Graph) Initial() core.State { return g.Start }

// Actions implements core.Problem.
func (g *Graph) Actions(s core.State) []string {
	edges := g.Adj[s.(string)]
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.To)
	}
	return out
}

// Result implements core.Problem.
func (g *Graph) Result(_ core.State, action string) core.State { return action }

// GoalTest implements core.Problem.
func (g *Graph) GoalTest(s core.State) bool { return s.(string) == g.Goal }

// StepCost implements core.StepCoster using the arc weight.
func (g *Graph) StepCost(c float64, from core.State, action string, _ core.State) float64 {
	for _, e := range g.Adj[from.(string)] {
		if e.To == action {
			return c + e.Cost
		}
	}
	return c + 1
}

// Label implements core.Labeler.
func (g *Graph) Label() string { return g.Name }

// Informed is a Graph with a per-vertex heuristic table.
type Informed struct {
	*Graph
	Estimate map[string]float64
}

// H implements core.Heuristic. Unknown vertices estimate 0.
func (g *Informed) H(n *core.Node) float64 { return g.Estimate[n.State.(string)] }
