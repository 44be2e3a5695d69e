package expand

import (
	"math"

	"github.com/katalvlaran/bitpath/bitgrid"
	"github.com/katalvlaran/bitpath/core"
)

// NoCornerCutting expands a vertex into its up to eight grid neighbours:
// the four cardinal neighbours at cost 1, and the four diagonal neighbours
// at cost sqrt(2), but only when neither of the two cardinal cells
// flanking that diagonal (nor the diagonal cell itself) is blocked — a
// path is never allowed to cut across a blocked corner.
type NoCornerCutting struct {
	grid *bitgrid.Grid
}

// NewNoCornerCutting returns a NoCornerCutting expander over grid.
func NewNoCornerCutting(grid *bitgrid.Grid) *NoCornerCutting {
	return &NoCornerCutting{grid: grid}
}

var sqrt2 = math.Sqrt2

// diagonalMask is, for each diagonal direction, the set of directions that
// must all be clear for that diagonal move to be legal: the diagonal cell
// itself plus its two flanking cardinal cells.
var diagonalMask = map[core.Direction]core.DirectionSet{
	core.NorthWest: core.NorthWest.Bit() | core.North.Bit() | core.West.Bit(),
	core.NorthEast: core.NorthEast.Bit() | core.North.Bit() | core.East.Bit(),
	core.SouthWest: core.SouthWest.Bit() | core.South.Bit() | core.West.Bit(),
	core.SouthEast: core.SouthEast.Bit() | core.South.Bit() | core.East.Bit(),
}

var cellOffset = map[core.Direction][2]int{
	core.NorthWest: {-1, -1},
	core.North:     {0, -1},
	core.NorthEast: {1, -1},
	core.West:      {-1, 0},
	core.East:      {1, 0},
	core.SouthWest: {-1, 1},
	core.South:     {0, 1},
	core.SouthEast: {1, 1},
}

// Expand implements search.ExpansionPolicy[bitgrid.Cell].
func (e *NoCornerCutting) Expand(node *core.SearchNode[bitgrid.Cell], edges []core.Edge[bitgrid.Cell]) []core.Edge[bitgrid.Cell] {
	x, y := node.ID.X, node.ID.Y
	obstructions := e.grid.NeighboursUnchecked(x, y)

	for _, d := range [4]core.Direction{core.North, core.South, core.East, core.West} {
		if !obstructions.Contains(d) {
			off := cellOffset[d]
			edges = append(edges, core.Edge[bitgrid.Cell]{
				Destination: bitgrid.Cell{X: x + off[0], Y: y + off[1]},
				Cost:        1,
			})
		}
	}

	for _, d := range [4]core.Direction{core.NorthWest, core.NorthEast, core.SouthWest, core.SouthEast} {
		if obstructions.IsDisjoint(diagonalMask[d]) {
			off := cellOffset[d]
			edges = append(edges, core.Edge[bitgrid.Cell]{
				Destination: bitgrid.Cell{X: x + off[0], Y: y + off[1]},
				Cost:        sqrt2,
			})
		}
	}

	return edges
}
