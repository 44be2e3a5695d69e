package search

import (
	"github.com/katalvlaran/bitpath/core"
	"github.com/katalvlaran/bitpath/pool"
	"github.com/katalvlaran/bitpath/pqueue"
)

// ExpansionPolicy describes the outgoing edges of a vertex on demand. Expand
// appends node's outgoing edges to edges and returns the extended slice,
// following the usual Go append convention so implementations can reuse the
// caller's backing array.
type ExpansionPolicy[V comparable] interface {
	Expand(node *core.SearchNode[V], edges []core.Edge[V]) []core.Edge[V]
}

// Heuristic estimates the remaining cost from id to the search goal. A
// heuristic that always returns 0 turns Engine into plain Dijkstra; one
// that never overestimates the true remaining cost keeps it admissible
// (A*). Engine does not validate admissibility.
type Heuristic[V comparable] func(id V) float64

// ZeroHeuristic is the Heuristic for running Engine as Dijkstra.
func ZeroHeuristic[V comparable](V) float64 { return 0 }

// Result reports the outcome of a single Search call.
type Result[V comparable] struct {
	// Found reports whether the goal was reached.
	Found bool

	// Cost is the total path cost, valid only when Found is true.
	Cost float64

	// Expansions is how many nodes were popped and expanded during this
	// search, counting the goal node itself once it is reached.
	Expansions int
}

// Engine drives a best-first search over vertex id type V, reusing its node
// pool, heap, and edge buffer across repeated calls to Search.
type Engine[V comparable] struct {
	pool  pool.NodePool[V]
	heap  *pqueue.IndexedHeap[V]
	edges []core.Edge[V]
	opts  Options
}

// NewEngine returns an Engine backed by p. p is reset at the start of every
// Search call, so it must not be shared with any other concurrently active
// engine.
func NewEngine[V comparable](p pool.NodePool[V], opts ...Option) *Engine[V] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine[V]{
		pool:  p,
		heap:  pqueue.NewIndexedHeap[V](0),
		edges: make([]core.Edge[V], 0, o.EdgeBufferCapacity),
		opts:  o,
	}
}

// Search runs a best-first search from source to goal using policy to
// generate edges and h to estimate remaining cost. It resets the engine's
// node pool and heap first, so the path and any node state from a previous
// Search are gone once this call returns.
func (e *Engine[V]) Search(policy ExpansionPolicy[V], h Heuristic[V], source, goal V) Result[V] {
	e.pool.Reset()
	e.heap.Reset()

	src := e.pool.Generate(source)
	src.MakeSource()
	e.heap.DecreaseKey(src)

	expansions := 0
	for {
		node := e.heap.Pop()
		if node == nil {
			return Result[V]{Found: false, Expansions: expansions}
		}

		node.Expansions++
		expansions++
		if node.ID == goal {
			return Result[V]{Found: true, Cost: node.G, Expansions: expansions}
		}
		if e.opts.MaxExpansions > 0 && expansions >= e.opts.MaxExpansions {
			return Result[V]{Found: false, Expansions: expansions}
		}

		parentG, parentID := node.G, node.ID
		e.edges = policy.Expand(node, e.edges[:0])
		for _, edge := range e.edges {
			g := parentG + edge.Cost
			n := e.pool.Generate(edge.Destination)
			if g < n.G {
				n.G = g
				n.Lb = g + h(n.ID)
				n.Parent = parentID
				n.HasParent = true
				e.heap.DecreaseKey(n)
			}
		}
	}
}

// Path reconstructs the path from the most recent Search's source to to, by
// following stored parent pointers. It is only meaningful immediately after
// a Search call that returned Found true and reached to; any later Search
// call invalidates it. The returned slice runs source-to-goal inclusive, or
// nil if to was never touched by that search.
func (e *Engine[V]) Path(to V) []V {
	var path []V
	id := to
	for {
		n, ok := e.pool.Get(id)
		if !ok {
			return nil
		}
		path = append(path, id)
		if !n.HasParent {
			break
		}
		id = n.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
