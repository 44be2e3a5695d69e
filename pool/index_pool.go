package pool

import (
	"fmt"

	"github.com/katalvlaran/bitpath/core"
)

// IndexPool is a NodePool over a dense integer domain 0..N, for graphs that
// already carry a compact vertex numbering.
type IndexPool struct {
	generation uint64
	nodes      []core.SearchNode[int]
}

// NewIndexPool allocates an IndexPool over the domain 0..n.
func NewIndexPool(n int) *IndexPool {
	return &IndexPool{nodes: make([]core.SearchNode[int], n)}
}

// Reset bumps the pool's generation counter, falling back to a full
// zeroing walk on the (practically unreachable) counter overflow, exactly
// as GridPool.Reset does.
func (p *IndexPool) Reset() {
	if p.generation == ^uint64(0) {
		for i := range p.nodes {
			p.nodes[i].Generation = 0
		}
		p.generation = 0
	}
	p.generation++
}

// Generate returns the node for id, panicking with ErrOutOfDomain if id
// falls outside 0..N.
func (p *IndexPool) Generate(id int) *core.SearchNode[int] {
	if id < 0 || id >= len(p.nodes) {
		panic(fmt.Errorf("%w: %d", ErrOutOfDomain, id))
	}
	n := &p.nodes[id]
	if n.Generation != p.generation {
		n.Reset(id, p.generation)
	}
	return n
}

// Get returns the node for id and true if id is within 0..N and has been
// touched since the last Reset, or nil and false otherwise.
func (p *IndexPool) Get(id int) (*core.SearchNode[int], bool) {
	if id < 0 || id >= len(p.nodes) {
		return nil, false
	}
	n := &p.nodes[id]
	if n.Generation != p.generation {
		return nil, false
	}
	return n, true
}
