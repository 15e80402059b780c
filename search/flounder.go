package search

import (
	"fmt"

	"github.com/katalvlaran/searchgrade/core"
)

// DefaultGiveUp is the default random-walk length of flounder.
const DefaultGiveUp = 10000

// flounder is the worst way to solve a problem: from the initial state it
// repeatedly moves to a uniformly random child until a goal is reached.
// It gives up with core.ErrNoSolution after giveUp steps or at a dead end.
func (r *Registry) flounder(p core.Problem, giveUp int, opts ...core.Option) (*core.Node, error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	o, err := core.BuildOptions(opts...)
	if err != nil {
		return nil, err
	}

	node := core.NewNode(p.Initial())
	for count := 0; !p.GoalTest(node.State); {
		count++
		if count >= giveUp {
			return nil, fmt.Errorf("%w: gave up after %d steps", core.ErrNoSolution, count)
		}
		children, err := o.Expand(p, node)
		if err != nil {
			return nil, fmt.Errorf("flounder: expanding %v: %w", node.State, err)
		}
		if len(children) == 0 {
			return nil, fmt.Errorf("%w: dead end at %v", core.ErrNoSolution, node.State)
		}
		node = children[r.intn(len(children))]
	}

	return node, nil
}
