// Package dfs defines the sentinel errors and frontier used by the
// depth-first family of searches.
package dfs

import (
	"errors"

	"github.com/katalvlaran/searchgrade/core"
)

var (
	// ErrCutoff is returned by DepthLimited when the depth limit, and not
	// exhaustion, stopped the search. IterativeDeepening retries on it.
	ErrCutoff = errors.New("dfs: depth limit reached")

	// ErrBadLimit is returned when a negative depth limit is supplied.
	ErrBadLimit = errors.New("dfs: depth limit must be non-negative")
)

// DefaultLimit is the depth limit used by the registry's depth_limited_search.
const DefaultLimit = 50

// lifo is a last-in first-out frontier with O(1) membership by state.
type lifo struct {
	items []*core.Node
	in    map[core.State]int
}

func newLIFO(n int) *lifo {
	return &lifo{
		items: make([]*core.Node, 0, n),
		in:    make(map[core.State]int, n),
	}
}

func (s *lifo) push(nd *core.Node) {
	s.items = append(s.items, nd)
	s.in[nd.State]++
}

func (s *lifo) pop() *core.Node {
	last := len(s.items) - 1
	nd := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	if s.in[nd.State]--; s.in[nd.State] == 0 {
		delete(s.in, nd.State)
	}
	return nd
}

func (s *lifo) contains(st core.State) bool { return s.in[st] > 0 }

func (s *lifo) empty() bool { return len(s.items) == 0 }
