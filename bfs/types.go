// Package bfs defines the FIFO frontier used by breadth-first search.
package bfs

import "github.com/katalvlaran/searchgrade/core"

// fifo is a first-in first-out frontier that also answers membership by
// state in O(1).
type fifo struct {
	items []*core.Node
	in    map[core.State]bool
}

// newFIFO returns an empty frontier with room for n nodes.
func newFIFO(n int) *fifo {
	return &fifo{
		items: make([]*core.Node, 0, n),
		in:    make(map[core.State]bool, n),
	}
}

// push appends nd to the back of the frontier.
func (f *fifo) push(nd *core.Node) {
	f.items = append(f.items, nd)
	f.in[nd.State] = true
}

// pop removes and returns the front node.
func (f *fifo) pop() *core.Node {
	nd := f.items[0]
	f.items[0] = nil
	f.items = f.items[1:]
	delete(f.in, nd.State)
	return nd
}

// contains reports whether a node with state s is queued.
func (f *fifo) contains(s core.State) bool { return f.in[s] }

// len returns the number of queued nodes.
func (f *fifo) len() int { return len(f.items) }
