package heuristic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bitpath/bitgrid"
	"github.com/katalvlaran/bitpath/heuristic"
)

func TestOctile_StraightAndDiagonal(t *testing.T) {
	goal := bitgrid.Cell{X: 0, Y: 0}
	h := heuristic.Octile(goal)

	if got := h(bitgrid.Cell{X: 3, Y: 0}); got != 3 {
		t.Fatalf("straight octile = %v, want 3", got)
	}
	if got := h(bitgrid.Cell{X: 3, Y: 3}); math.Abs(got-3*math.Sqrt2) > 1e-9 {
		t.Fatalf("diagonal octile = %v, want %v", got, 3*math.Sqrt2)
	}
	if got := h(bitgrid.Cell{X: 5, Y: 2}); math.Abs(got-(2*math.Sqrt2+3)) > 1e-9 {
		t.Fatalf("mixed octile = %v, want %v", got, 2*math.Sqrt2+3)
	}
}

func TestManhattan(t *testing.T) {
	goal := bitgrid.Cell{X: 2, Y: 2}
	h := heuristic.Manhattan(goal)
	if got := h(bitgrid.Cell{X: -1, Y: 5}); got != 6 {
		t.Fatalf("Manhattan = %v, want 6", got)
	}
}

func TestEuclidean(t *testing.T) {
	goal := bitgrid.Cell{X: 0, Y: 0}
	h := heuristic.Euclidean(goal)
	if got := h(bitgrid.Cell{X: 3, Y: 4}); got != 5 {
		t.Fatalf("Euclidean = %v, want 5", got)
	}
}

func TestZero(t *testing.T) {
	if got := heuristic.Zero(bitgrid.Cell{X: 9, Y: 9}); got != 0 {
		t.Fatalf("Zero = %v, want 0", got)
	}
}
