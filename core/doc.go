// Package core defines the shared search data model used across bitpath:
// SearchNode, Edge, and Direction.
//
// A SearchNode carries per-vertex search state (best known cost, priority,
// parent, heap position) tagged with a generation counter so that a pool of
// nodes can be reused across repeated searches without walking the whole
// pool to reset it. Edge is the ephemeral (destination, cost) pair produced
// by an expansion policy. Direction names the eight compass points, and
// DirectionSet is the bitset over them used by the grid expanders to describe neighbourhood obstructions and arrival
// directions.
//
// This package has no dependency on any particular graph or grid
// representation; NodePool, IndexedHeap, SearchEngine, and ExpansionPolicy
// (see the pool, pqueue, search and expand packages) are built on top of it.
package core
