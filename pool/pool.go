package pool

import "github.com/katalvlaran/bitpath/core"

// NodePool hands out SearchNode storage for a fixed domain of vertex ids,
// reusable across many searches. Implementations must guarantee that
// Generate(id) returns a pointer stable for the lifetime of the current
// generation (i.e. until the next Reset), and that nodes untouched since
// the most recent Reset behave as freshly constructed the first time
// Generate touches them.
type NodePool[V comparable] interface {
	// Reset starts a new generation: every node Generate returns from now
	// on is (re)initialised to its fresh state the first time it is
	// touched, in amortised O(1) regardless of domain size.
	Reset()

	// Generate returns the node for id, initialising it if this is the
	// first time the current generation has touched it. Implementations
	// backed by a dense array panic with ErrOutOfDomain if id falls
	// outside their fixed domain.
	Generate(id V) *core.SearchNode[V]

	// Get returns the node for id and true if id has been touched by
	// Generate since the most recent Reset, or nil and false otherwise.
	// Unlike Generate, Get never initialises a node, so callers can
	// distinguish "this vertex was never reached" from "this vertex was
	// reached at cost +Inf" after a search completes.
	Get(id V) (*core.SearchNode[V], bool)
}
