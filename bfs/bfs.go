package bfs

import (
	"fmt"

	"github.com/katalvlaran/searchgrade/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	problem  core.Problem        // The problem being searched; never nil.
	opts     *core.SearchOptions // Context, expansion budget and hooks.
	frontier *fifo               // FIFO of generated, unexpanded nodes.
	explored map[core.State]bool // States already expanded.
}

// BreadthFirst runs breadth-first graph search on p, applying any number of
// core.Options.
// Returns core.ErrNilProblem for a nil problem, core.ErrOptionViolation for
// bad options, core.ErrNoSolution when the reachable space holds no goal,
// core.ErrBudgetExceeded or a context error when the run is cut short.
func BreadthFirst(p core.Problem, opts ...core.Option) (*core.Node, error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	o, err := core.BuildOptions(opts...)
	if err != nil {
		return nil, err
	}

	// the root is the only node tested before expansion
	root := core.NewNode(p.Initial())
	if p.GoalTest(root.State) {
		return root, nil
	}

	w := &walker{
		problem:  p,
		opts:     o,
		frontier: newFIFO(64),
		explored: make(map[core.State]bool, 64),
	}
	w.frontier.push(root)
	return w.loop()
}

// loop processes the frontier until a goal is generated, the frontier
// empties, or the run is cancelled.
func (w *walker) loop() (*core.Node, error) {
	for w.frontier.len() > 0 {
		// 1) Dequeue the shallowest node and mark it explored
		node := w.frontier.pop()
		w.explored[node.State] = true

		// 2) Expand; cancellation and budget are checked here
		children, err := w.opts.Expand(w.problem, node)
		if err != nil {
			return nil, fmt.Errorf("bfs: expanding %v: %w", node.State, err)
		}

		// 3) Goal-test each new child on generation, queue the rest
		for _, child := range children {
			// first time seen?
			if w.explored[child.State] || w.frontier.contains(child.State) {
				continue
			}
			if w.problem.GoalTest(child.State) {
				return child, nil
			}
			w.frontier.push(child)
		}
	}

	return nil, core.ErrNoSolution
}
