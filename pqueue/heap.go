package pqueue

import "github.com/katalvlaran/bitpath/core"

// IndexedHeap is a binary min-heap of *core.SearchNode[V], ordered by
// ascending Lb and, among equal Lb, by descending G (a node already proven
// to have travelled further is preferred, since it is less likely to need
// revisiting). Every node stores its own position in the heap array
// (HeapIndex), which lets DecreaseKey resift a node that is already present
// without a linear scan to find it.
type IndexedHeap[V comparable] struct {
	nodes []*core.SearchNode[V]
}

// NewIndexedHeap returns an empty heap with capacity pre-allocated.
func NewIndexedHeap[V comparable](capacity int) *IndexedHeap[V] {
	return &IndexedHeap[V]{nodes: make([]*core.SearchNode[V], 0, capacity)}
}

// Len reports how many nodes are currently enqueued.
func (h *IndexedHeap[V]) Len() int { return len(h.nodes) }

// Reset empties the heap. It does not touch any node's HeapIndex; after
// pool.NodePool.Reset, the pool's Generate gives each node a fresh HeapIndex
// of -1 the first time it is touched again.
func (h *IndexedHeap[V]) Reset() {
	h.nodes = h.nodes[:0]
}

// less reports whether a has strictly higher priority than b: smaller Lb
// wins; ties go to the larger G.
func less[V comparable](a, b *core.SearchNode[V]) bool {
	if a.Lb != b.Lb {
		return a.Lb < b.Lb
	}
	return a.G > b.G
}

func (h *IndexedHeap[V]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.nodes[i].HeapIndex = i
	h.nodes[j].HeapIndex = j
}

func (h *IndexedHeap[V]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !less(h.nodes[i], h.nodes[parent]) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *IndexedHeap[V]) siftDown(i int) {
	n := len(h.nodes)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && less(h.nodes[left], h.nodes[smallest]) {
			smallest = left
		}
		if right < n && less(h.nodes[right], h.nodes[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// DecreaseKey inserts node if it is not currently in the heap, or resifts
// it if it already is — in both cases reflecting whatever (Lb, G) the
// caller has just written into node. The caller must only call this after
// improving node's priority (decreasing Lb, or raising G at equal Lb);
// calling it after the priority has worsened corrupts the heap.
func (h *IndexedHeap[V]) DecreaseKey(node *core.SearchNode[V]) {
	if node.HeapIndex < 0 {
		node.HeapIndex = len(h.nodes)
		h.nodes = append(h.nodes, node)
		h.siftUp(node.HeapIndex)
		return
	}
	h.siftUp(node.HeapIndex)
}

// Pop removes and returns the highest-priority node, or nil if the heap is
// empty. The returned node's HeapIndex is set to -1.
func (h *IndexedHeap[V]) Pop() *core.SearchNode[V] {
	n := len(h.nodes)
	if n == 0 {
		return nil
	}
	top := h.nodes[0]
	last := h.nodes[n-1]
	h.nodes[0] = last
	if n > 1 {
		last.HeapIndex = 0
	}
	h.nodes = h.nodes[:n-1]
	top.HeapIndex = -1
	if len(h.nodes) > 0 {
		h.siftDown(0)
	}
	return top
}
