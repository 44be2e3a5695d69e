// Package bitpath is a high-performance pathfinding library: a reusable
// best-first search engine over abstract graphs, plus two concrete grid
// expansion strategies over a bit-packed obstacle grid — a uniform-cost
// eight-neighbour expander that forbids cutting blocked corners, and a
// Jump Point Search expander that uses bit-parallel row scans to skip
// uninformative nodes along canonical paths.
//
// Everything lives in subpackages:
//
//	core/       — SearchNode, Edge, Direction: the shared search data model
//	bitgrid/    — bit-packed obstacle grid with word-at-a-time row reads
//	pool/       — generation-counted node pools (grid, index, and hash keyed)
//	pqueue/     — self-indexed decrease-key binary heap
//	search/     — the best-first search engine driving pool, heap, and
//	              a pluggable ExpansionPolicy
//	expand/     — NoCornerCutting and JPS, the two grid expansion policies
//	heuristic/  — octile, Manhattan, Euclidean, and zero heuristics
//	graph/      — a general-purpose weighted directed graph, for search
//	              over non-grid domains
//	region/     — a cheap BFS reachability precheck over a bitgrid.Grid
//	mapgen/     — synthetic obstacle-grid generation for tests and benchmarks
//	mapfile/    — parses the "type octile" obstacle-map text format
//	scenario/   — parses the "version 1" scenario text format
//	converters/ — adapts graph.DirectedGraph to and from gonum's graph types
//
// cmd/bench is a small CLI that drives a scenario file against all three
// engines (Dijkstra, A* with the octile heuristic, JPS) and reports
// per-run timing and expansion counts.
package bitpath
