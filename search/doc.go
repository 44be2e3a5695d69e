// Package search implements Engine, a generic best-first search driver.
//
// Engine works over any vertex id type, any pool.NodePool for that id type,
// any ExpansionPolicy describing the graph's edges, and any heuristic
// function. Passing a zero heuristic turns it into plain Dijkstra; passing
// an admissible heuristic turns it into A*. A single Engine is meant to be
// reused across many searches over the same domain: its node pool, heap,
// and edge buffer are all retained between calls to Search, so repeated
// searches allocate nothing beyond what growing the frontier requires.
//
// Complexity:
//
//	- Time:  O((V + E) log V), the usual best-first search bound, where
//	  decrease-key and pop are both O(log V) via pqueue.IndexedHeap.
//	- Space: O(V) for the node pool, plus whatever the edge buffer grows
//	  to hold the widest single expansion.
//
// Errors: Engine itself does not return errors; an ExpansionPolicy or
// NodePool that rejects a vertex id panics, per the convention bitgrid and
// pool already establish for precondition violations on a hot path.
package search
