package expand_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bitpath/bitgrid"
	"github.com/katalvlaran/bitpath/expand"
	"github.com/katalvlaran/bitpath/heuristic"
	"github.com/katalvlaran/bitpath/pool"
	"github.com/katalvlaran/bitpath/search"
)

func newJPS(t *testing.T, g *bitgrid.Grid) *expand.JPS {
	t.Helper()
	j, err := expand.NewJPS(g, g.Transpose())
	if err != nil {
		t.Fatalf("NewJPS: %v", err)
	}
	return j
}

func TestJPS_RejectsMismatchedTranspose(t *testing.T) {
	g := mustGrid(t, 5, 3)
	other := mustGrid(t, 5, 3) // wrong shape: should be 3x5 to transpose g
	if _, err := expand.NewJPS(g, other); err == nil {
		t.Fatalf("expected ErrBadConstruction for mismatched transpose dimensions")
	}
}

func TestJPS_StraightLineOnOpenGrid(t *testing.T) {
	g := mustGrid(t, 10, 10)
	j := newJPS(t, g)
	goal := bitgrid.Cell{X: 9, Y: 0}
	j.SetGoal(goal)

	e := search.NewEngine[bitgrid.Cell](pool.NewGridPool(10, 10))
	result := e.Search(j, heuristic.Octile(goal), bitgrid.Cell{X: 0, Y: 0}, goal)
	if !result.Found {
		t.Fatalf("expected goal reachable")
	}
	if result.Cost != 9 {
		t.Fatalf("Cost = %v, want 9", result.Cost)
	}
	path := e.Path(goal)
	if len(path) != 2 {
		t.Fatalf("expected a 2-waypoint jump path (start, goal) on an open straight run, got %d waypoints: %v", len(path), path)
	}
}

func TestJPS_DiagonalOnOpenGrid(t *testing.T) {
	g := mustGrid(t, 10, 10)
	j := newJPS(t, g)
	goal := bitgrid.Cell{X: 9, Y: 9}
	j.SetGoal(goal)

	e := search.NewEngine[bitgrid.Cell](pool.NewGridPool(10, 10))
	result := e.Search(j, heuristic.Octile(goal), bitgrid.Cell{X: 0, Y: 0}, goal)
	if !result.Found {
		t.Fatalf("expected goal reachable")
	}
	if math.Abs(result.Cost-9*math.Sqrt2) > 1e-9 {
		t.Fatalf("Cost = %v, want %v", result.Cost, 9*math.Sqrt2)
	}
}

func TestJPS_MatchesNoCornerCuttingCostAroundObstacles(t *testing.T) {
	const w, h = 12, 12
	g := mustGrid(t, w, h)
	for y := 0; y < h-2; y++ {
		g.Set(6, y, true)
	}

	source := bitgrid.Cell{X: 0, Y: 0}
	goal := bitgrid.Cell{X: 11, Y: 11}

	ncc := expand.NewNoCornerCutting(g)
	e1 := search.NewEngine[bitgrid.Cell](pool.NewGridPool(w, h))
	r1 := e1.Search(ncc, heuristic.Octile(goal), source, goal)

	j := newJPS(t, g)
	j.SetGoal(goal)
	e2 := search.NewEngine[bitgrid.Cell](pool.NewGridPool(w, h))
	r2 := e2.Search(j, heuristic.Octile(goal), source, goal)

	if !r1.Found || !r2.Found {
		t.Fatalf("expected both expanders to find the goal, got NoCornerCutting=%v JPS=%v", r1.Found, r2.Found)
	}
	if math.Abs(r1.Cost-r2.Cost) > 1e-6 {
		t.Fatalf("cost mismatch: NoCornerCutting=%v JPS=%v", r1.Cost, r2.Cost)
	}
	if r2.Expansions >= r1.Expansions {
		t.Fatalf("expected JPS to expand fewer nodes than NoCornerCutting: JPS=%d NoCornerCutting=%d", r2.Expansions, r1.Expansions)
	}
}

func TestJPS_BlockedGoalIsUnreachable(t *testing.T) {
	const w, h = 6, 6
	g := mustGrid(t, w, h)
	for x := 0; x < w; x++ {
		g.Set(x, 3, true)
	}
	goal := bitgrid.Cell{X: 5, Y: 5}
	j := newJPS(t, g)
	j.SetGoal(goal)

	e := search.NewEngine[bitgrid.Cell](pool.NewGridPool(w, h))
	result := e.Search(j, heuristic.Octile(goal), bitgrid.Cell{X: 0, Y: 0}, goal)
	if result.Found {
		t.Fatalf("expected goal behind a full-width wall to be unreachable")
	}
}
