package core

import "fmt"

// Node is a node in a search tree. It holds a pointer to its parent and the
// action that produced it. Two nodes may share a state when a state is
// reached along different paths.
type Node struct {
	State    State
	Parent   *Node
	Action   string
	PathCost float64
	Depth    int
}

// NewNode returns a root node for state s.
func NewNode(s State) *Node {
	return &Node{State: s}
}

// ChildNode returns the node reached from n by executing action in p.
func (n *Node) ChildNode(p Problem, action string) *Node {
	next := p.Result(n.State, action)
	return &Node{
		State:    next,
		Parent:   n,
		Action:   action,
		PathCost: PathCost(p, n.PathCost, n.State, action, next),
		Depth:    n.Depth + 1,
	}
}

// Expand lists the children of n, one per action applicable in n.State.
func (n *Node) Expand(p Problem) []*Node {
	actions := p.Actions(n.State)
	children := make([]*Node, 0, len(actions))
	for _, a := range actions {
		children = append(children, n.ChildNode(p, a))
	}
	return children
}

// Path returns the nodes from the root to n, root first.
func (n *Node) Path() []*Node {
	var path []*Node
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Solution returns the sequence of actions from the root to n.
func (n *Node) Solution() []string {
	path := n.Path()
	if len(path) < 2 {
		return nil
	}
	actions := make([]string, 0, len(path)-1)
	for _, nd := range path[1:] {
		actions = append(actions, nd.Action)
	}
	return actions
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("<Node %v>", n.State)
}
