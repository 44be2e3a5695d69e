package region_test

import (
	"testing"

	"github.com/katalvlaran/bitpath/bitgrid"
	"github.com/katalvlaran/bitpath/region"
)

func TestReachable_OpenGrid(t *testing.T) {
	g, _ := bitgrid.New(5, 5)
	if !region.Reachable(g, bitgrid.Cell{X: 0, Y: 0}, bitgrid.Cell{X: 4, Y: 4}) {
		t.Fatalf("expected goal reachable on an open grid")
	}
}

func TestReachable_SplitBySolidWall(t *testing.T) {
	g, _ := bitgrid.New(5, 5)
	for y := 0; y < 5; y++ {
		g.Set(2, y, true)
	}
	if region.Reachable(g, bitgrid.Cell{X: 0, Y: 0}, bitgrid.Cell{X: 4, Y: 4}) {
		t.Fatalf("expected goal unreachable behind a full-height wall")
	}
}

func TestReachable_BlockedEndpointsAreUnreachable(t *testing.T) {
	g, _ := bitgrid.New(5, 5)
	g.Set(4, 4, true)
	if region.Reachable(g, bitgrid.Cell{X: 0, Y: 0}, bitgrid.Cell{X: 4, Y: 4}) {
		t.Fatalf("expected a blocked goal cell to be unreachable")
	}
}

func TestReachable_SameCell(t *testing.T) {
	g, _ := bitgrid.New(3, 3)
	if !region.Reachable(g, bitgrid.Cell{X: 1, Y: 1}, bitgrid.Cell{X: 1, Y: 1}) {
		t.Fatalf("expected a cell to be reachable from itself")
	}
}

func TestReachable_ForbidsCuttingBlockedCorner(t *testing.T) {
	g, _ := bitgrid.New(3, 3)
	// Block both cells flanking the diagonal from (0,0) to (1,1), so that
	// diagonal would cut across a blocked corner.
	g.Set(1, 0, true)
	g.Set(0, 1, true)

	if region.Reachable(g, bitgrid.Cell{X: 0, Y: 0}, bitgrid.Cell{X: 1, Y: 1}) {
		t.Fatalf("expected (1,1) unreachable from (0,0) when both flanking cardinals are blocked")
	}
}

func TestReachable_ReachesDiagonalCellAroundOneBlockedFlank(t *testing.T) {
	g, _ := bitgrid.New(3, 3)
	// Only one flank is blocked: the diagonal step itself is forbidden, but
	// (1,1) is still reachable through the open flank (0,1).
	g.Set(1, 0, true)

	if !region.Reachable(g, bitgrid.Cell{X: 0, Y: 0}, bitgrid.Cell{X: 1, Y: 1}) {
		t.Fatalf("expected (1,1) reachable from (0,0) through its open flank")
	}
}
