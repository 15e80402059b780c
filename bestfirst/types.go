// Package bestfirst defines the evaluation-function type and the priority
// frontier used by best-first graph search.
//
// The frontier is a min-heap ordered by f, ties broken by insertion order.
// When a cheaper path to a state already on the frontier is found, the old
// entry is marked stale and a new one is pushed ("lazy decrease-key"); stale
// entries are skipped when popped.
package bestfirst

import (
	"container/heap"

	"github.com/katalvlaran/searchgrade/core"
)

// EvalFunc scores a node; the frontier expands the lowest score first.
type EvalFunc func(n *core.Node) float64

// item is a frontier entry.
type item struct {
	node  *core.Node
	f     float64 // evaluation at push time
	seq   uint64  // insertion order for deterministic ties
	stale bool    // superseded by a cheaper entry for the same state
}

// nodePQ is a min-heap of *item ordered by f, then seq.
type nodePQ []*item

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f ascending, then by insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be *item.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}

// frontier couples the heap with an index of live entries by state.
type frontier struct {
	pq   nodePQ
	live map[core.State]*item
	next uint64
}

func newFrontier(n int) *frontier {
	return &frontier{
		pq:   make(nodePQ, 0, n),
		live: make(map[core.State]*item, n),
	}
}

// push adds nd with score f, superseding any live entry for the same state.
func (fr *frontier) push(nd *core.Node, f float64) {
	if old, ok := fr.live[nd.State]; ok {
		old.stale = true
	}
	it := &item{node: nd, f: f, seq: fr.next}
	fr.next++
	fr.live[nd.State] = it
	heap.Push(&fr.pq, it)
}

// pop returns the live entry with the lowest score, or nil when empty.
func (fr *frontier) pop() *item {
	for fr.pq.Len() > 0 {
		it := heap.Pop(&fr.pq).(*item)
		if it.stale {
			continue
		}
		delete(fr.live, it.node.State)
		return it
	}

	return nil
}

// lookup returns the live entry for s.
func (fr *frontier) lookup(s core.State) (*item, bool) {
	it, ok := fr.live[s]
	return it, ok
}
