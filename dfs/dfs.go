// Package dfs implements depth-first graph search, depth-limited tree search
// and iterative deepening over a core.Problem.
//
// Key features:
//   - DepthFirstGraph(p, opts...): LIFO frontier, goal test on pop, explored set
//   - DepthLimited(p, limit, opts...): recursive tree search that tells a
//     depth cutoff (ErrCutoff) apart from exhaustion (core.ErrNoSolution)
//   - IterativeDeepening(p, opts...): DepthLimited with limits 0, 1, 2, …
//   - Cancellation and expansion budgets via core.Option
//
// Complexity (b = branching factor, m = maximum depth, d = solution depth):
//
//   - DepthFirstGraph:    Time O(b^m), Memory O(b·m) plus the explored set.
//   - IterativeDeepening: Time O(b^d), Memory O(b·d).
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/searchgrade/core"
)

// DepthFirstGraph searches the deepest nodes of the frontier first.
// Children already explored or already on the frontier are not pushed.
// Returns core.ErrNoSolution when the reachable space holds no goal.
func DepthFirstGraph(p core.Problem, opts ...core.Option) (*core.Node, error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	o, err := core.BuildOptions(opts...)
	if err != nil {
		return nil, err
	}

	frontier := newLIFO(64)
	explored := make(map[core.State]bool, 64)
	frontier.push(core.NewNode(p.Initial()))

	for !frontier.empty() {
		node := frontier.pop()
		if p.GoalTest(node.State) {
			return node, nil
		}
		explored[node.State] = true

		children, err := o.Expand(p, node)
		if err != nil {
			return nil, fmt.Errorf("dfs: expanding %v: %w", node.State, err)
		}
		for _, child := range children {
			if explored[child.State] || frontier.contains(child.State) {
				continue
			}
			frontier.push(child)
		}
	}

	return nil, core.ErrNoSolution
}

// dlsWalker holds the shared options of one depth-limited run.
type dlsWalker struct {
	problem core.Problem
	opts    *core.SearchOptions
}

// DepthLimited runs depth-first tree search that never goes below limit.
// It returns ErrCutoff if some branch was truncated by the limit and
// core.ErrNoSolution if the whole tree was searched without a goal.
func DepthLimited(p core.Problem, limit int, opts ...core.Option) (*core.Node, error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLimit, limit)
	}
	o, err := core.BuildOptions(opts...)
	if err != nil {
		return nil, err
	}
	w := &dlsWalker{problem: p, opts: o}
	return w.recurse(core.NewNode(p.Initial()), limit)
}

// IterativeDeepening repeats DepthLimited with growing limits until the
// result is anything but a cutoff. The expansion budget is shared across
// iterations.
func IterativeDeepening(p core.Problem, opts ...core.Option) (*core.Node, error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	o, err := core.BuildOptions(opts...)
	if err != nil {
		return nil, err
	}
	w := &dlsWalker{problem: p, opts: o}

	for depth := 0; ; depth++ {
		node, err := w.recurse(core.NewNode(p.Initial()), depth)
		if !errors.Is(err, ErrCutoff) {
			return node, err
		}
	}
}

// recurse explores the subtree under node up to limit more levels.
func (w *dlsWalker) recurse(node *core.Node, limit int) (*core.Node, error) {
	if w.problem.GoalTest(node.State) {
		return node, nil
	}
	if limit == 0 {
		return nil, ErrCutoff
	}

	children, err := w.opts.Expand(w.problem, node)
	if err != nil {
		return nil, fmt.Errorf("dfs: expanding %v: %w", node.State, err)
	}
	cutoff := false
	for _, child := range children {
		found, err := w.recurse(child, limit-1)
		switch {
		case err == nil:
			return found, nil
		case errors.Is(err, ErrCutoff):
			cutoff = true
		case errors.Is(err, core.ErrNoSolution):
			// dead end below child; keep looking
		default:
			return nil, err
		}
	}
	if cutoff {
		return nil, ErrCutoff
	}

	return nil, core.ErrNoSolution
}
