// Package bestfirst implements best-first graph search and its three
// classic instances on a core.Problem: uniform-cost search (f = g),
// A* (f = g + h) and greedy best-first search (f = h).
//
// Notes on implementation choices:
//
//   - The goal test is applied when a node is popped, which makes
//     UniformCost and AStar (with a consistent h) return optimal paths.
//   - f is evaluated once per generated node and cached in its frontier entry.
//   - We use a "lazy" decrease-key strategy: pushing a replacement entry and
//     ignoring the stale one when popped.
package bestfirst

import (
	"fmt"

	"github.com/katalvlaran/searchgrade/core"
)

// runner holds the mutable state for a single best-first execution.
type runner struct {
	problem  core.Problem        // The problem being searched; never nil.
	opts     *core.SearchOptions // Context, expansion budget and hooks.
	f        EvalFunc            // Evaluation function; lowest f is expanded first.
	frontier *frontier           // Min-heap of live entries, indexed by state.
	explored map[core.State]bool // States already expanded.
}

// Search expands the node with the lowest f first.
//
// Preconditions and validation (in order):
//  1. p must be non-nil (core.ErrNilProblem).
//  2. f must be non-nil (core.ErrOptionViolation).
//  3. options must be valid (core.ErrOptionViolation).
//
// Returns core.ErrNoSolution when the frontier empties without a goal.
func Search(p core.Problem, f EvalFunc, opts ...core.Option) (*core.Node, error) {
	// 1) Validate inputs
	if p == nil {
		return nil, core.ErrNilProblem
	}
	if f == nil {
		return nil, fmt.Errorf("%w: nil evaluation function", core.ErrOptionViolation)
	}

	// 2) Build options; a bad option aborts before any state is touched
	o, err := core.BuildOptions(opts...)
	if err != nil {
		return nil, err
	}

	// 3) Seed the frontier with the root and run the main loop
	r := &runner{
		problem:  p,
		opts:     o,
		f:        f,
		frontier: newFrontier(64),
		explored: make(map[core.State]bool, 64),
	}
	root := core.NewNode(p.Initial())
	r.frontier.push(root, f(root))
	return r.process()
}

// process pops the cheapest entry until a goal is popped or the frontier is
// empty, relaxing the children of every expanded node.
func (r *runner) process() (*core.Node, error) {
	for {
		// 1) Pop the cheapest live entry; stale ones are skipped by pop
		it := r.frontier.pop()
		if it == nil {
			return nil, core.ErrNoSolution
		}

		// 2) Goal test on pop, so the first goal out is the cheapest by f
		node := it.node
		if r.problem.GoalTest(node.State) {
			return node, nil
		}
		r.explored[node.State] = true

		// 3) Expand (checks ctx and budget) and relax every child
		children, err := r.opts.Expand(r.problem, node)
		if err != nil {
			return nil, fmt.Errorf("bestfirst: expanding %v: %w", node.State, err)
		}
		for _, child := range children {
			r.relax(child)
		}
	}
}

// relax queues child unless its state was explored or a cheaper entry for
// the same state is already waiting.
func (r *runner) relax(child *core.Node) {
	if r.explored[child.State] {
		return
	}
	score := r.f(child)
	if queued, ok := r.frontier.lookup(child.State); ok && score >= queued.f {
		return
	}
	r.frontier.push(child, score)
}

// UniformCost expands the node with the lowest path cost first.
func UniformCost(p core.Problem, opts ...core.Option) (*core.Node, error) {
	return Search(p, func(n *core.Node) float64 { return n.PathCost }, opts...)
}

// AStar runs A* with the heuristic of p. Returns core.ErrNoHeuristic when
// neither p nor any problem it wraps implements core.Heuristic.
func AStar(p core.Problem, opts ...core.Option) (*core.Node, error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	h, ok := core.HeuristicOf(p)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrNoHeuristic, core.Label(p))
	}
	return AStarWith(p, h, opts...)
}

// AStarWith runs A* with an explicit heuristic h.
func AStarWith(p core.Problem, h EvalFunc, opts ...core.Option) (*core.Node, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil heuristic", core.ErrOptionViolation)
	}
	return Search(p, func(n *core.Node) float64 { return n.PathCost + h(n) }, opts...)
}

// Greedy expands the node that looks closest to a goal according to the
// heuristic of p, ignoring the cost already paid.
func Greedy(p core.Problem, opts ...core.Option) (*core.Node, error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	h, ok := core.HeuristicOf(p)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrNoHeuristic, core.Label(p))
	}
	return Search(p, h, opts...)
}
