package expand

import (
	"math/bits"

	"github.com/katalvlaran/bitpath/bitgrid"
	"github.com/katalvlaran/bitpath/core"
)

// JPS is a jump point search expander over a bitgrid.Grid. It prunes
// symmetric paths using the canonical forced-neighbour rules and jumps
// across runs of unobstructed cells with bit-parallel row scans instead of
// stepping cardinal moves one cell at a time. Diagonal moves still cost
// sqrt(2) and cardinal moves cost 1, same as NoCornerCutting; the
// destinations reached are just further apart.
type JPS struct {
	grid  *bitgrid.Grid
	tgrid *bitgrid.Grid
	goal  bitgrid.Cell
}

// NewJPS returns a JPS expander over grid, using transpose (grid with X and
// Y swapped, e.g. from grid.Transpose()) to scan vertical runs. Returns
// ErrBadConstruction if transpose's dimensions are not grid's swapped
// dimensions.
func NewJPS(grid, transpose *bitgrid.Grid) (*JPS, error) {
	if transpose.Width() != grid.Height() || transpose.Height() != grid.Width() {
		return nil, ErrBadConstruction
	}
	return &JPS{grid: grid, tgrid: transpose}, nil
}

// SetGoal tells the expander where the search is headed, so that cardinal
// and diagonal jump scans can stop the instant they pass over the goal
// cell rather than only at the next natural jump point.
func (j *JPS) SetGoal(goal bitgrid.Cell) {
	j.goal = goal
}

// rowBits is how many low bits of a bitgrid row read are meaningful; see
// bitgrid's rowMask for why 57.
const rowBits = 57

var rowBitsMask = uint64(1)<<rowBits - 1

var vector = map[core.Direction][2]int{
	core.NorthWest: {-1, -1},
	core.North:     {0, -1},
	core.NorthEast: {1, -1},
	core.West:      {-1, 0},
	core.East:      {1, 0},
	core.SouthWest: {-1, 1},
	core.South:     {0, 1},
	core.SouthEast: {1, 1},
}

var directionByVector = func() map[[2]int]core.Direction {
	m := make(map[[2]int]core.Direction, 8)
	for d, v := range vector {
		m[v] = d
	}
	return m
}()

func directionOf(dx, dy int) core.Direction {
	return directionByVector[[2]int{dx, dy}]
}

// arrivalDirection reports the direction node was reached from relative to
// parent, or false if node has no parent (it is the search source).
func arrivalDirection(node *core.SearchNode[bitgrid.Cell]) (core.Direction, bool) {
	if !node.HasParent {
		return 0, false
	}
	dx := sign(node.ID.X - node.Parent.X)
	dy := sign(node.ID.Y - node.Parent.Y)
	return directionOf(dx, dy), true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// canonicalSuccessors returns the directions JPS must still explore from a
// node reached via dir (or every direction, for the search source), given
// obstructions, the node's own 3x3 neighbourhood obstruction mask. This is
// the standard Harabor/Grastien forced-neighbour pruning rule, ported
// match-arm-for-match-arm from the original crate's canonical_successors:
// a diagonal arrival continues onto each of its two cardinal components
// that is unobstructed, and diagonally only when the diagonal cell and both
// components are unobstructed; a cardinal arrival continues straight, plus (for
// each side) the perpendicular cardinal whenever the cell behind it on
// that side is blocked but the cardinal itself is clear, further opening
// the diagonal on that side when it too is unobstructed.
func canonicalSuccessors(obstructions core.DirectionSet, dir core.Direction, hasDir bool) core.DirectionSet {
	var successors core.DirectionSet

	if !hasDir {
		if obstructions.IsDisjoint(core.North.Bit()) {
			successors = successors.With(core.North)
		}
		if obstructions.IsDisjoint(core.South.Bit()) {
			successors = successors.With(core.South)
		}
		if obstructions.IsDisjoint(core.West.Bit()) {
			successors = successors.With(core.West)
		}
		if obstructions.IsDisjoint(core.East.Bit()) {
			successors = successors.With(core.East)
		}
		if obstructions.IsDisjoint(core.North.Bit() | core.West.Bit() | core.NorthWest.Bit()) {
			successors = successors.With(core.NorthWest)
		}
		if obstructions.IsDisjoint(core.North.Bit() | core.East.Bit() | core.NorthEast.Bit()) {
			successors = successors.With(core.NorthEast)
		}
		if obstructions.IsDisjoint(core.South.Bit() | core.West.Bit() | core.SouthWest.Bit()) {
			successors = successors.With(core.SouthWest)
		}
		if obstructions.IsDisjoint(core.South.Bit() | core.East.Bit() | core.SouthEast.Bit()) {
			successors = successors.With(core.SouthEast)
		}
		return successors
	}

	switch dir {
	case core.NorthWest:
		if !obstructions.Contains(core.North) {
			successors = successors.With(core.North)
		}
		if !obstructions.Contains(core.West) {
			successors = successors.With(core.West)
		}
		if obstructions.IsDisjoint(core.North.Bit() | core.West.Bit() | core.NorthWest.Bit()) {
			successors = successors.With(core.NorthWest)
		}
	case core.NorthEast:
		if !obstructions.Contains(core.North) {
			successors = successors.With(core.North)
		}
		if !obstructions.Contains(core.East) {
			successors = successors.With(core.East)
		}
		if obstructions.IsDisjoint(core.North.Bit() | core.East.Bit() | core.NorthEast.Bit()) {
			successors = successors.With(core.NorthEast)
		}
	case core.SouthWest:
		if !obstructions.Contains(core.South) {
			successors = successors.With(core.South)
		}
		if !obstructions.Contains(core.West) {
			successors = successors.With(core.West)
		}
		if obstructions.IsDisjoint(core.South.Bit() | core.West.Bit() | core.SouthWest.Bit()) {
			successors = successors.With(core.SouthWest)
		}
	case core.SouthEast:
		if !obstructions.Contains(core.South) {
			successors = successors.With(core.South)
		}
		if !obstructions.Contains(core.East) {
			successors = successors.With(core.East)
		}
		if obstructions.IsDisjoint(core.South.Bit() | core.East.Bit() | core.SouthEast.Bit()) {
			successors = successors.With(core.SouthEast)
		}
	case core.North:
		if !obstructions.Contains(core.North) {
			successors = successors.With(core.North)
		}
		if obstructions.Contains(core.SouthWest) && !obstructions.Contains(core.West) {
			successors = successors.With(core.West)
			if obstructions.IsDisjoint(core.NorthWest.Bit() | core.North.Bit()) {
				successors = successors.With(core.NorthWest)
			}
		}
		if obstructions.Contains(core.SouthEast) && !obstructions.Contains(core.East) {
			successors = successors.With(core.East)
			if obstructions.IsDisjoint(core.NorthEast.Bit() | core.North.Bit()) {
				successors = successors.With(core.NorthEast)
			}
		}
	case core.West:
		if !obstructions.Contains(core.West) {
			successors = successors.With(core.West)
		}
		if obstructions.Contains(core.SouthEast) && !obstructions.Contains(core.South) {
			successors = successors.With(core.South)
			if obstructions.IsDisjoint(core.West.Bit() | core.SouthWest.Bit()) {
				successors = successors.With(core.SouthWest)
			}
		}
		if obstructions.Contains(core.NorthEast) && !obstructions.Contains(core.North) {
			successors = successors.With(core.North)
			if obstructions.IsDisjoint(core.West.Bit() | core.NorthWest.Bit()) {
				successors = successors.With(core.NorthWest)
			}
		}
	case core.South:
		if !obstructions.Contains(core.South) {
			successors = successors.With(core.South)
		}
		if obstructions.Contains(core.NorthEast) && !obstructions.Contains(core.East) {
			successors = successors.With(core.East)
			if obstructions.IsDisjoint(core.SouthEast.Bit() | core.South.Bit()) {
				successors = successors.With(core.SouthEast)
			}
		}
		if obstructions.Contains(core.NorthWest) && !obstructions.Contains(core.West) {
			successors = successors.With(core.West)
			if obstructions.IsDisjoint(core.SouthWest.Bit() | core.South.Bit()) {
				successors = successors.With(core.SouthWest)
			}
		}
	case core.East:
		if !obstructions.Contains(core.East) {
			successors = successors.With(core.East)
		}
		if obstructions.Contains(core.NorthWest) && !obstructions.Contains(core.North) {
			successors = successors.With(core.North)
			if obstructions.IsDisjoint(core.East.Bit() | core.NorthEast.Bit()) {
				successors = successors.With(core.NorthEast)
			}
		}
		if obstructions.Contains(core.SouthWest) && !obstructions.Contains(core.South) {
			successors = successors.With(core.South)
			if obstructions.IsDisjoint(core.East.Bit() | core.SouthEast.Bit()) {
				successors = successors.With(core.SouthEast)
			}
		}
	}

	return successors
}

// jumpPlus scans rightward (increasing x) along row y starting at column
// x, in steps bounded by 57-bit row reads, stopping at the first column
// that is itself blocked, or that has a forced neighbour above or below it
// (a blocked cell in the adjacent row immediately followed by an open one).
// ok reports whether a jump point (or the goal, intercepted mid-scan) was
// found; blockedClose reports whether the scan failed because the very
// first cell along the row is already blocked, which callers use to
// terminate a diagonal scan.
func jumpPlus(g *bitgrid.Grid, x, y, goalX, goalY int) (distance int, ok bool, blockedClose bool) {
	for {
		above := g.RowUnchecked(x+distance, y-1)
		here := g.RowUnchecked(x+distance, y)
		below := g.RowUnchecked(x+distance, y+1)

		forcedAbove := (above << 1) &^ above
		forcedBelow := (below << 1) &^ below
		stop := (forcedAbove | forcedBelow | here) & rowBitsMask

		if stop != 0 {
			step := bits.TrailingZeros64(stop)
			distance += step

			if y == goalY && x <= goalX && goalX <= x+distance {
				return goalX - x, true, false
			}
			if here&(uint64(1)<<uint(step)) != 0 {
				return distance, false, distance <= 1
			}
			return distance, true, false
		}
		distance += rowBits - 1
	}
}

// jumpMinus is jumpPlus's mirror image, scanning leftward (decreasing x).
func jumpMinus(g *bitgrid.Grid, x, y, goalX, goalY int) (distance int, ok bool, blockedClose bool) {
	for {
		above := g.RowUpperUnchecked(x-distance, y-1)
		here := g.RowUpperUnchecked(x-distance, y)
		below := g.RowUpperUnchecked(x-distance, y+1)

		forcedAbove := (above >> 1) &^ above
		forcedBelow := (below >> 1) &^ below
		stop := (forcedAbove | forcedBelow | here) &^ uint64(0x7f)

		if stop != 0 {
			step := bits.LeadingZeros64(stop)
			distance += step

			if y == goalY && goalX <= x && x-distance <= goalX {
				return x - goalX, true, false
			}
			if here&(uint64(1)<<uint(63-step)) != 0 {
				return distance, false, distance <= 1
			}
			return distance, true, false
		}
		distance += rowBits - 1
	}
}

// jumpDiagonal steps one cell at a time along direction (dx, dy) (both
// nonzero), trying a cardinal jump scan in each component direction at
// every step, until either component succeeds (a jump point, or the goal,
// lies along it) or the diagonal move itself becomes illegal: the
// destination cell is blocked, or both cells flanking the diagonal step
// are blocked (no cutting across a blocked corner).
func (j *JPS) jumpDiagonal(x, y, dx, dy int) (dest bitgrid.Cell, steps int, ok bool) {
	for {
		nx, ny := x+dx, y+dy
		if j.grid.GetUnchecked(nx, ny) {
			return bitgrid.Cell{}, 0, false
		}
		if j.grid.GetUnchecked(x+dx, y) && j.grid.GetUnchecked(x, y+dy) {
			return bitgrid.Cell{}, 0, false
		}

		steps++
		if nx == j.goal.X && ny == j.goal.Y {
			return bitgrid.Cell{X: nx, Y: ny}, steps, true
		}

		var hOK, hBlockedClose bool
		if dx > 0 {
			_, hOK, hBlockedClose = jumpPlus(j.grid, nx, ny, j.goal.X, j.goal.Y)
		} else {
			_, hOK, hBlockedClose = jumpMinus(j.grid, nx, ny, j.goal.X, j.goal.Y)
		}

		var vOK, vBlockedClose bool
		if dy > 0 {
			_, vOK, vBlockedClose = jumpPlus(j.tgrid, ny, nx, j.goal.Y, j.goal.X)
		} else {
			_, vOK, vBlockedClose = jumpMinus(j.tgrid, ny, nx, j.goal.Y, j.goal.X)
		}

		if hOK || vOK {
			return bitgrid.Cell{X: nx, Y: ny}, steps, true
		}
		if hBlockedClose && vBlockedClose {
			return bitgrid.Cell{}, 0, false
		}
		x, y = nx, ny
	}
}

// Expand implements search.ExpansionPolicy[bitgrid.Cell].
func (j *JPS) Expand(node *core.SearchNode[bitgrid.Cell], edges []core.Edge[bitgrid.Cell]) []core.Edge[bitgrid.Cell] {
	x, y := node.ID.X, node.ID.Y
	dir, hasDir := arrivalDirection(node)
	obstructions := j.grid.NeighboursUnchecked(x, y)
	successors := canonicalSuccessors(obstructions, dir, hasDir)

	for d := core.NorthWest; d <= core.SouthEast; d++ {
		if !successors.Contains(d) {
			continue
		}
		off := vector[d]
		dx, dy := off[0], off[1]

		switch {
		case dx != 0 && dy != 0:
			if dest, steps, ok := j.jumpDiagonal(x, y, dx, dy); ok {
				edges = append(edges, core.Edge[bitgrid.Cell]{Destination: dest, Cost: float64(steps) * sqrt2})
			}
		case dx != 0:
			var dist int
			var ok bool
			if dx > 0 {
				dist, ok, _ = jumpPlus(j.grid, x, y, j.goal.X, j.goal.Y)
			} else {
				dist, ok, _ = jumpMinus(j.grid, x, y, j.goal.X, j.goal.Y)
			}
			if ok {
				edges = append(edges, core.Edge[bitgrid.Cell]{Destination: bitgrid.Cell{X: x + dx*dist, Y: y}, Cost: float64(dist)})
			}
		default:
			var dist int
			var ok bool
			if dy > 0 {
				dist, ok, _ = jumpPlus(j.tgrid, y, x, j.goal.Y, j.goal.X)
			} else {
				dist, ok, _ = jumpMinus(j.tgrid, y, x, j.goal.Y, j.goal.X)
			}
			if ok {
				edges = append(edges, core.Edge[bitgrid.Cell]{Destination: bitgrid.Cell{X: x, Y: y + dy*dist}, Cost: float64(dist)})
			}
		}
	}

	return edges
}
