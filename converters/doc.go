// Package converters adapts graph.DirectedGraph[int] to and from
// gonum.org/v1/gonum's graph representations, so that gonum's own
// algorithms (shortest path, traversal, layout) can run over the same
// graph data this module's own search.Engine does.
package converters
