// Package pqueue implements IndexedHeap, the priority queue search.Engine
// drives its search frontier with.
//
// Unlike the lazy decrease-key pattern built on container/heap (push a
// duplicate entry, skip stale ones on pop), IndexedHeap performs a true
// decrease-key: every node tracks its own current position in the heap
// array (core.SearchNode.HeapIndex), so DecreaseKey can resift a node
// in-place in O(log n) without ever leaving a stale duplicate behind.
package pqueue
