// Package pool provides reusable storage for search.Engine's per-vertex
// SearchNode state.
//
// A single NodePool is meant to live across many searches over the same
// domain (the same grid, the same graph). Reset starts a fresh search by
// invalidating every previously touched node in amortised O(1): it bumps a
// generation counter rather than walking and zeroing the whole pool.
// Generate then lazily reinitialises a node the first time the current
// search touches it, by comparing the node's stored generation against the
// pool's current one.
//
// Three flavours are provided, matching the three vertex-identity shapes
// search.Engine is instantiated over:
//
//   - GridPool stores nodes in a dense array indexed by grid coordinates,
//     for the bitgrid-based expansion policies.
//   - IndexPool stores nodes in a dense array indexed by a small integer,
//     for domains with a pre-assigned dense vertex numbering.
//   - HashPool stores nodes in a map, for arbitrary comparable vertex ids
//     (graph.DirectedGraph's int ids included, when no dense numbering is
//     available).
package pool
