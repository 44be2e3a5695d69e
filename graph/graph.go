package graph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/bitpath/core"
)

// Sentinel errors for DirectedGraph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex that
	// has never been added to the graph, either directly or as an edge
	// endpoint.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNegativeWeight indicates an edge weight below zero was passed to
	// AddEdge or AddUndirectedEdge; search.Engine assumes non-negative
	// costs.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")
)

// DirectedGraph is a weighted directed graph over a comparable vertex id
// type, safe for concurrent use: a separate RWMutex guards the vertex set
// from the adjacency list so that reads of one are never blocked by writes
// to the other.
type DirectedGraph[V comparable] struct {
	muVertices sync.RWMutex
	vertices   map[V]struct{}

	muAdjacency sync.RWMutex
	adjacency   map[V][]core.Edge[V]
}

// New returns an empty DirectedGraph.
func New[V comparable]() *DirectedGraph[V] {
	return &DirectedGraph[V]{
		vertices:  make(map[V]struct{}),
		adjacency: make(map[V][]core.Edge[V]),
	}
}

// AddVertex registers id, if it is not already present. Safe to call for a
// vertex that will only ever appear as an edge endpoint; AddEdge adds both
// endpoints implicitly.
func (g *DirectedGraph[V]) AddVertex(id V) {
	g.muVertices.Lock()
	defer g.muVertices.Unlock()
	g.vertices[id] = struct{}{}
}

// Vertices returns every vertex id added to the graph, in no particular
// order.
func (g *DirectedGraph[V]) Vertices() []V {
	g.muVertices.RLock()
	defer g.muVertices.RUnlock()
	ids := make([]V, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	return ids
}

// HasVertex reports whether id has been added to the graph.
func (g *DirectedGraph[V]) HasVertex(id V) bool {
	g.muVertices.RLock()
	defer g.muVertices.RUnlock()
	_, ok := g.vertices[id]
	return ok
}

// AddEdge adds a one-way edge from -> to at the given weight, adding both
// endpoints as vertices if they are not already present. Returns
// ErrNegativeWeight if weight is negative.
func (g *DirectedGraph[V]) AddEdge(from, to V, weight float64) error {
	if weight < 0 {
		return ErrNegativeWeight
	}
	g.AddVertex(from)
	g.AddVertex(to)

	g.muAdjacency.Lock()
	defer g.muAdjacency.Unlock()
	g.adjacency[from] = append(g.adjacency[from], core.Edge[V]{Destination: to, Cost: weight})
	return nil
}

// AddUndirectedEdge adds edges in both directions between a and b at the
// given weight. Equivalent to calling AddEdge(a, b, weight) and
// AddEdge(b, a, weight).
func (g *DirectedGraph[V]) AddUndirectedEdge(a, b V, weight float64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}
	return g.AddEdge(b, a, weight)
}

// Neighbours returns id's outgoing edges. Returns ErrVertexNotFound if id
// has never been added to the graph.
func (g *DirectedGraph[V]) Neighbours(id V) ([]core.Edge[V], error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muAdjacency.RLock()
	defer g.muAdjacency.RUnlock()
	return g.adjacency[id], nil
}

// Expand implements search.ExpansionPolicy[V]. It panics with
// ErrVertexNotFound if node's id was never added to the graph, consistent
// with the rest of this module's hot-path precondition-violation
// convention (bitgrid.Grid.Get, pool.GridPool.Generate).
func (g *DirectedGraph[V]) Expand(node *core.SearchNode[V], edges []core.Edge[V]) []core.Edge[V] {
	g.muAdjacency.RLock()
	defer g.muAdjacency.RUnlock()
	if !g.hasVertexLocked(node.ID) {
		panic(ErrVertexNotFound)
	}
	return append(edges, g.adjacency[node.ID]...)
}

func (g *DirectedGraph[V]) hasVertexLocked(id V) bool {
	g.muVertices.RLock()
	defer g.muVertices.RUnlock()
	_, ok := g.vertices[id]
	return ok
}
