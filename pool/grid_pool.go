package pool

import (
	"fmt"

	"github.com/katalvlaran/bitpath/bitgrid"
	"github.com/katalvlaran/bitpath/core"
)

// GridPool is a NodePool over bitgrid.Cell, backed by a dense array sized to
// a fixed width x height domain. It is the pool the grid expansion policies
// (expand.NoCornerCutting, expand.JPS) are used with.
type GridPool struct {
	width, height int
	generation    uint64
	nodes         []core.SearchNode[bitgrid.Cell]
}

// NewGridPool allocates a GridPool over the width x height domain. Every
// node starts in generation 0, so the first Reset call (which bumps the
// generation to 1) is needed before the pool is used.
func NewGridPool(width, height int) *GridPool {
	return &GridPool{
		width:  width,
		height: height,
		nodes:  make([]core.SearchNode[bitgrid.Cell], width*height),
	}
}

func (p *GridPool) index(id bitgrid.Cell) (int, bool) {
	if id.X < 0 || id.X >= p.width || id.Y < 0 || id.Y >= p.height {
		return 0, false
	}
	return id.Y*p.width + id.X, true
}

// Reset bumps the pool's generation counter. On the rare event that the
// counter would overflow, it instead walks the whole pool zeroing every
// node's stored generation, then restarts counting at 1 — this keeps
// Generate's "does this node belong to the current generation" comparison
// correct forever, at the cost of one O(n) pass roughly every 2^64 resets.
func (p *GridPool) Reset() {
	if p.generation == ^uint64(0) {
		for i := range p.nodes {
			p.nodes[i].Generation = 0
		}
		p.generation = 0
	}
	p.generation++
}

// Generate returns the node for id, panicking with ErrOutOfDomain if id
// falls outside the pool's width x height domain.
func (p *GridPool) Generate(id bitgrid.Cell) *core.SearchNode[bitgrid.Cell] {
	i, ok := p.index(id)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrOutOfDomain, id))
	}
	n := &p.nodes[i]
	if n.Generation != p.generation {
		n.Reset(id, p.generation)
	}
	return n
}

// Get returns the node for id and true if id is within the pool's domain
// and has been touched since the last Reset, or nil and false otherwise.
func (p *GridPool) Get(id bitgrid.Cell) (*core.SearchNode[bitgrid.Cell], bool) {
	i, ok := p.index(id)
	if !ok {
		return nil, false
	}
	n := &p.nodes[i]
	if n.Generation != p.generation {
		return nil, false
	}
	return n, true
}
