package heuristic

import (
	"math"

	"github.com/katalvlaran/bitpath/bitgrid"
)

// Octile returns the octile-distance heuristic to goal: admissible for a
// grid search that allows diagonal movement at cost sqrt(2) and cardinal
// movement at cost 1, which is exactly what NoCornerCutting and JPS both
// charge.
func Octile(goal bitgrid.Cell) func(bitgrid.Cell) float64 {
	const (
		d  = 1.0
		d2 = math.Sqrt2
	)
	return func(c bitgrid.Cell) float64 {
		dx := math.Abs(float64(c.X - goal.X))
		dy := math.Abs(float64(c.Y - goal.Y))
		if dx < dy {
			dx, dy = dy, dx
		}
		return d*dx + (d2-d)*dy
	}
}

// Manhattan returns the taxicab-distance heuristic to goal: admissible only
// for a four-direction, unit-cost grid search (it overestimates whenever
// diagonal movement is allowed).
func Manhattan(goal bitgrid.Cell) func(bitgrid.Cell) float64 {
	return func(c bitgrid.Cell) float64 {
		return math.Abs(float64(c.X-goal.X)) + math.Abs(float64(c.Y-goal.Y))
	}
}

// Euclidean returns the straight-line-distance heuristic to goal: always
// admissible (it never exceeds the true cost of any movement model), but
// looser than Octile for diagonal-cost-sqrt(2) grids.
func Euclidean(goal bitgrid.Cell) func(bitgrid.Cell) float64 {
	return func(c bitgrid.Cell) float64 {
		dx := float64(c.X - goal.X)
		dy := float64(c.Y - goal.Y)
		return math.Sqrt(dx*dx + dy*dy)
	}
}

// Zero is the null heuristic: passing it to search.Engine.Search runs the
// search as plain Dijkstra.
func Zero(bitgrid.Cell) float64 { return 0 }
