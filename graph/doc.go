// Package graph provides DirectedGraph, a general-purpose weighted
// directed graph usable as a search.ExpansionPolicy — the non-grid domain
// search.Engine can run over, alongside the bitgrid-based expanders in
// package expand.
//
// DirectedGraph is genuinely directed: AddEdge never implies the reverse
// edge. AddUndirectedEdge is provided as an explicit convenience for
// callers that want symmetric edges without adding both directions by
// hand.
package graph
