// Package search names the graded search methods and provides the registry
// the grader resolves submission method lists against.
package search

import (
	"errors"

	"github.com/katalvlaran/searchgrade/core"
)

// ErrUnknownMethod is returned by Registry.Resolve for an unregistered name.
var ErrUnknownMethod = errors.New("search: unknown method")

// Func is the common signature of every search method.
type Func func(p core.Problem, opts ...core.Option) (*core.Node, error)

// Method is a named search method.
type Method struct {
	// Name is the identifier used in submissions and reports.
	Name string

	// Standard marks the five methods every student is expected to run.
	Standard bool

	// Run executes the search.
	Run Func
}

// Canonical method names.
const (
	DepthFirstGraph    = "depth_first_graph_search"
	BreadthFirst       = "breadth_first_search"
	IterativeDeepening = "iterative_deepening_search"
	UniformCost        = "uniform_cost_search"
	AStar              = "astar_search"
	GreedyBestFirst    = "greedy_best_first_search"
	DepthLimited       = "depth_limited_search"
	Flounder           = "flounder"
)

// StandardNames lists the standard methods in grading order.
var StandardNames = []string{DepthFirstGraph, BreadthFirst, IterativeDeepening, UniformCost, AStar}
