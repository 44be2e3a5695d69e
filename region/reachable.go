package region

import "github.com/katalvlaran/bitpath/bitgrid"

// offsets is every eight-connected neighbour displacement. Diagonal entries
// are additionally gated on their two flanking cardinal cells in the flood
// fill below, matching the movement model expand.NoCornerCutting uses.
var offsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Reachable reports whether goal lies in the same eight-connected
// unblocked component as source, honouring the same no-corner-cutting rule
// expand.NoCornerCutting enforces: a diagonal step is only legal when the
// diagonal cell itself and both cardinal cells flanking it are unblocked.
// Without this check the precheck would answer "reachable" for goals only
// reachable by cutting a blocked corner, which neither real expander in
// this module will ever actually traverse. It does a plain breadth-first
// flood fill over a ring-buffer queue sized to the grid, so it never
// reallocates mid-search regardless of how much of the grid it has to
// visit.
func Reachable(g *bitgrid.Grid, source, goal bitgrid.Cell) bool {
	if g.Get(source.X, source.Y) || g.Get(goal.X, goal.Y) {
		return false
	}
	if source == goal {
		return true
	}

	w, h := g.Width(), g.Height()
	visited := make([]bool, w*h)
	index := func(c bitgrid.Cell) int { return c.Y*w + c.X }

	capacity := w*h + 1
	queue := make([]bitgrid.Cell, capacity)
	head, tail := 0, 0

	push := func(c bitgrid.Cell) {
		queue[tail] = c
		tail = (tail + 1) % capacity
	}

	visited[index(source)] = true
	push(source)

	for head != tail {
		cur := queue[head]
		head = (head + 1) % capacity

		for _, off := range offsets {
			n := bitgrid.Cell{X: cur.X + off[0], Y: cur.Y + off[1]}
			if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
				continue
			}
			if g.Get(n.X, n.Y) {
				continue
			}
			if off[0] != 0 && off[1] != 0 {
				if g.Get(cur.X+off[0], cur.Y) || g.Get(cur.X, cur.Y+off[1]) {
					continue
				}
			}
			i := index(n)
			if visited[i] {
				continue
			}
			if n == goal {
				return true
			}
			visited[i] = true
			push(n)
		}
	}

	return false
}
