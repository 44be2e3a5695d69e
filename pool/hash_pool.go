package pool

import "github.com/katalvlaran/bitpath/core"

// hashPoolBlockSize is how many SearchNode slots HashPool allocates at a
// time, so that a search touching many vertices pays for a handful of
// large allocations rather than one per vertex.
const hashPoolBlockSize = 256

// HashPool is a NodePool over an arbitrary comparable vertex id, backed by
// a map plus a block-allocated arena. Unlike GridPool and IndexPool it has
// no fixed domain: Generate never panics, any V value is accepted.
type HashPool[V comparable] struct {
	generation uint64
	index      map[V]*core.SearchNode[V]
	blocks     [][]core.SearchNode[V]
	next       int
}

// NewHashPool allocates an empty HashPool.
func NewHashPool[V comparable]() *HashPool[V] {
	return &HashPool[V]{index: make(map[V]*core.SearchNode[V])}
}

// Reset bumps the generation and forgets every previously generated node,
// but keeps one arena block so its capacity is reused by the next search
// rather than reallocated.
func (p *HashPool[V]) Reset() {
	p.generation++
	clear(p.index)
	p.next = 0
	if len(p.blocks) > 1 {
		// Keep only the most recently allocated block; drop the rest so a pool that
		// briefly grew huge doesn't pin that memory down forever.
		last := p.blocks[len(p.blocks)-1]
		p.blocks = p.blocks[:0]
		p.blocks = append(p.blocks, last)
	}
}

func (p *HashPool[V]) alloc() *core.SearchNode[V] {
	if len(p.blocks) == 0 || p.next == len(p.blocks[len(p.blocks)-1]) {
		p.blocks = append(p.blocks, make([]core.SearchNode[V], hashPoolBlockSize))
		p.next = 0
	}
	n := &p.blocks[len(p.blocks)-1][p.next]
	p.next++
	return n
}

// Generate returns the node for id, allocating and indexing it on first
// touch in the current generation.
func (p *HashPool[V]) Generate(id V) *core.SearchNode[V] {
	if n, ok := p.index[id]; ok {
		return n
	}
	n := p.alloc()
	n.Reset(id, p.generation)
	p.index[id] = n
	return n
}

// Get returns the node for id and true if id has been touched by Generate
// since the last Reset, or nil and false otherwise. Unlike Generate, Get
// never allocates or indexes a new entry.
func (p *HashPool[V]) Get(id V) (*core.SearchNode[V], bool) {
	n, ok := p.index[id]
	return n, ok
}
