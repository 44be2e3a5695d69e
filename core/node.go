package core

import "math"

// SearchNode holds the per-vertex state a best-first search maintains while
// it runs: the best known cost from the source (G), the priority used to
// order the frontier (Lb, short for "lower bound", conventionally g+h), the
// parent vertex on the best known path, and bookkeeping the node pool and
// heap need (Generation, HeapIndex, Expansions).
//
// Invariant: G <= Lb always holds for a node that has been touched in the
// current generation. A node whose Generation differs from its owning
// pool's current generation is logically uninitialised; NodePool.Generate
// re-initialises it (G = Lb = +Inf, no parent, Expansions = 0, HeapIndex =
// -1) the next time it is touched.
type SearchNode[V comparable] struct {
	// ID is the vertex this node describes.
	ID V

	// Generation is the pool generation counter in effect when this node
	// was last (re)initialised. A node is "touched" (meaningful) iff this
	// equals the owning pool's current generation.
	Generation uint64

	// Parent is the vertex this node was reached from along the best known
	// path, if any.
	Parent V

	// HasParent reports whether Parent holds a meaningful value. Separate
	// from Parent because V has no natural "absent" value for arbitrary
	// comparable types.
	HasParent bool

	// G is the best known path cost from the search source to this vertex.
	G float64

	// Lb is the priority used by the heap: G plus the heuristic estimate to
	// the goal. For Dijkstra (zero heuristic) Lb == G.
	Lb float64

	// HeapIndex is this node's current position in the IndexedHeap array,
	// or -1 if the node is not currently in any heap (not yet enqueued, or
	// already popped). Owned by pqueue.IndexedHeap.
	HeapIndex int

	// Expansions counts how many times this node has been popped from the
	// heap and expanded. A vertex may be popped more than once if a
	// shorter path to it is discovered after it was already enqueued.
	Expansions int
}

// Reset reinitialises n to the fresh state NodePool.Generate must produce
// for a node touched for the first time in a generation: G = Lb = +Inf, no
// parent, zero expansions, not in any heap. Stamps n with the given
// generation.
func (n *SearchNode[V]) Reset(id V, generation uint64) {
	n.ID = id
	n.Generation = generation
	n.Parent = *new(V)
	n.HasParent = false
	n.G = math.Inf(1)
	n.Lb = math.Inf(1)
	n.HeapIndex = -1
	n.Expansions = 0
}

// MakeSource sets n up as the search's origin: cost and priority both zero.
// Callers must still have touched n via NodePool.Generate first so that its
// other fields (parent, expansions, heap index) are in the fresh state.
func (n *SearchNode[V]) MakeSource() {
	n.G = 0
	n.Lb = 0
}

// Edge is the ephemeral (destination, cost) pair an ExpansionPolicy appends
// to its caller-provided buffer. Cost must be finite and non-negative.
type Edge[V comparable] struct {
	Destination V
	Cost        float64
}
