package converters

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/bitpath/graph"
)

// ToGonum copies g into a gonum simple.WeightedDirectedGraph, whose vertex
// ids are g's own int vertex ids reinterpreted as int64 node ids. The
// result is independent of g; mutating one does not affect the other.
func ToGonum(g *graph.DirectedGraph[int]) *simple.WeightedDirectedGraph {
	out := simple.NewWeightedDirectedGraph(0, 0)

	for _, id := range g.Vertices() {
		out.AddNode(simple.Node(int64(id)))
	}

	for _, id := range g.Vertices() {
		edges, err := g.Neighbours(id)
		if err != nil {
			// Vertices() only returns ids g itself just reported owning.
			panic(err)
		}
		for _, e := range edges {
			out.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(int64(id)),
				T: simple.Node(int64(e.Destination)),
				W: e.Cost,
			})
		}
	}
	return out
}

// FromGonum builds a graph.DirectedGraph from every node and weighted edge
// in g. Node IDs are truncated to int; callers passing a graph built by
// ToGonum get them back unchanged.
func FromGonum(g *simple.WeightedDirectedGraph) (*graph.DirectedGraph[int], error) {
	out := graph.New[int]()

	nodes := g.Nodes()
	for nodes.Next() {
		out.AddVertex(int(nodes.Node().ID()))
	}

	edges := g.WeightedEdges()
	for edges.Next() {
		e := edges.WeightedEdge()
		if err := out.AddEdge(int(e.From().ID()), int(e.To().ID()), e.Weight()); err != nil {
			return nil, err
		}
	}
	return out, nil
}
