package search_test

import (
	"testing"

	"github.com/katalvlaran/bitpath/core"
	"github.com/katalvlaran/bitpath/pool"
	"github.com/katalvlaran/bitpath/search"
)

// line is a trivial ExpansionPolicy over int vertices 0..n-1, each
// connected to its neighbours at either side with the given per-step cost.
type line struct {
	n    int
	cost float64
}

func (l line) Expand(node *core.SearchNode[int], edges []core.Edge[int]) []core.Edge[int] {
	if node.ID > 0 {
		edges = append(edges, core.Edge[int]{Destination: node.ID - 1, Cost: l.cost})
	}
	if node.ID < l.n-1 {
		edges = append(edges, core.Edge[int]{Destination: node.ID + 1, Cost: l.cost})
	}
	return edges
}

func TestEngine_DijkstraOnLine(t *testing.T) {
	e := search.NewEngine[int](pool.NewIndexPool(10))
	result := e.Search(line{n: 10, cost: 1}, search.ZeroHeuristic[int], 0, 9)
	if !result.Found {
		t.Fatalf("expected goal to be found")
	}
	if result.Cost != 9 {
		t.Fatalf("Cost = %v, want 9", result.Cost)
	}
	path := e.Path(9)
	if len(path) != 10 {
		t.Fatalf("Path length = %d, want 10", len(path))
	}
	for i, id := range path {
		if id != i {
			t.Fatalf("Path[%d] = %d, want %d", i, id, i)
		}
	}
}

func TestEngine_AStarWithAdmissibleHeuristic(t *testing.T) {
	e := search.NewEngine[int](pool.NewIndexPool(10))
	h := func(id int) float64 { return float64(9 - id) }
	result := e.Search(line{n: 10, cost: 1}, h, 0, 9)
	if !result.Found || result.Cost != 9 {
		t.Fatalf("result = %+v, want Found=true Cost=9", result)
	}
}

func TestEngine_UnreachableGoal(t *testing.T) {
	e := search.NewEngine[int](pool.NewIndexPool(10))
	// Two disjoint lines: 0-4 and 5-9, never connected.
	policy := disjointLines{}
	result := e.Search(policy, search.ZeroHeuristic[int], 0, 9)
	if result.Found {
		t.Fatalf("expected goal to be unreachable")
	}
}

type disjointLines struct{}

func (disjointLines) Expand(node *core.SearchNode[int], edges []core.Edge[int]) []core.Edge[int] {
	lo, hi := 0, 4
	if node.ID >= 5 {
		lo, hi = 5, 9
	}
	if node.ID > lo {
		edges = append(edges, core.Edge[int]{Destination: node.ID - 1, Cost: 1})
	}
	if node.ID < hi {
		edges = append(edges, core.Edge[int]{Destination: node.ID + 1, Cost: 1})
	}
	return edges
}

func TestEngine_PathIsNilForUntouchedVertex(t *testing.T) {
	e := search.NewEngine[int](pool.NewIndexPool(10))
	result := e.Search(disjointLines{}, search.ZeroHeuristic[int], 0, 9)
	if result.Found {
		t.Fatalf("expected goal to be unreachable")
	}
	if path := e.Path(9); path != nil {
		t.Fatalf("Path(9) = %v, want nil for a vertex never reached", path)
	}
}

func TestEngine_ReusableAcrossSearches(t *testing.T) {
	e := search.NewEngine[int](pool.NewIndexPool(10))
	first := e.Search(line{n: 10, cost: 1}, search.ZeroHeuristic[int], 0, 5)
	if !first.Found || first.Cost != 5 {
		t.Fatalf("first search: %+v", first)
	}
	second := e.Search(line{n: 10, cost: 2}, search.ZeroHeuristic[int], 2, 8)
	if !second.Found || second.Cost != 12 {
		t.Fatalf("second search: %+v, want Cost=12", second)
	}
}

func TestEngine_MaxExpansionsStopsEarly(t *testing.T) {
	e := search.NewEngine[int](pool.NewIndexPool(100), search.WithMaxExpansions(2))
	result := e.Search(line{n: 100, cost: 1}, search.ZeroHeuristic[int], 0, 99)
	if result.Found {
		t.Fatalf("expected search capped by MaxExpansions to fail")
	}
	if result.Expansions != 2 {
		t.Fatalf("Expansions = %d, want 2", result.Expansions)
	}
}
