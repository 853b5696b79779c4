// Package searcher provides the bounded candidate queue used for
// exact top-k neighbor selection.
package searcher

import (
	"container/heap"
	"sort"
)

// Compile time check to ensure PriorityQueue satisfies the heap interface.
var _ heap.Interface = (*PriorityQueue)(nil)

// PriorityQueueItem represents a scored training example in the queue.
// Value-based (no pointers) for cache locality and zero allocations.
type PriorityQueueItem struct {
	Index    int     // Index is the example's position in the training set.
	Distance float32 // Distance is the priority of the item in the queue.
}

// worse reports whether a is a worse candidate than b.
// Candidates are ordered lexicographically by (Distance, Index), so
// equal-distance examples keep training-set order.
func worse(a, b PriorityQueueItem) bool {
	if a.Distance != b.Distance {
		return a.Distance > b.Distance
	}
	return a.Index > b.Index
}

// PriorityQueue implements heap.Interface and holds PriorityQueueItems.
// It is a max-heap: the top is the worst candidate retained so far, so a
// bounded queue of capacity k holds exactly the k best candidates seen.
type PriorityQueue struct {
	items []PriorityQueueItem
}

// NewPriorityQueue creates a new priority queue with the given initial capacity.
func NewPriorityQueue(capacity int) *PriorityQueue {
	if capacity < 0 {
		capacity = 0
	}
	return &PriorityQueue{
		items: make([]PriorityQueueItem, 0, capacity),
	}
}

// TopItem returns the top (worst retained) element of the heap.
func (pq *PriorityQueue) TopItem() (PriorityQueueItem, bool) {
	if len(pq.items) == 0 {
		return PriorityQueueItem{}, false
	}
	return pq.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue) PushItem(item PriorityQueueItem) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// PushItemBounded inserts an item into a bounded heap.
// If the heap is full and the new item is worse than the top, it is skipped.
// If the heap is full and the new item is better, the top is replaced.
func (pq *PriorityQueue) PushItemBounded(item PriorityQueueItem, capacity int) {
	if len(pq.items) < capacity {
		pq.PushItem(item)
		return
	}

	top, ok := pq.TopItem()
	if !ok {
		return
	}
	if worse(top, item) {
		pq.items[0] = item
		pq.siftDown(0)
	}
}

// PopItem removes and returns the top element from the heap.
func (pq *PriorityQueue) PopItem() (PriorityQueueItem, bool) {
	n := len(pq.items)
	if n == 0 {
		return PriorityQueueItem{}, false
	}

	item := pq.items[0]
	pq.items[0] = pq.items[n-1]
	pq.items = pq.items[:n-1]

	if len(pq.items) > 0 {
		pq.siftDown(0)
	}

	return item, true
}

// Sorted drains the queue and returns its items ordered best-first:
// ascending by distance, ties broken by training-set index.
func (pq *PriorityQueue) Sorted() []PriorityQueueItem {
	out := pq.items
	pq.items = nil
	sort.Slice(out, func(i, j int) bool {
		return worse(out[j], out[i])
	})
	return out
}

// Len returns the number of elements in the heap.
func (pq *PriorityQueue) Len() int {
	return len(pq.items)
}

// Less reports whether the element with index i should sort before the element with index j.
func (pq *PriorityQueue) Less(i, j int) bool {
	return worse(pq.items[i], pq.items[j])
}

// Swap swaps the elements with indexes i and j.
func (pq *PriorityQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

// Push pushes the element x onto the heap.
func (pq *PriorityQueue) Push(x any) {
	item := x.(PriorityQueueItem)
	pq.items = append(pq.items, item)
}

// Pop removes and returns the top element (according to Less) from the heap.
func (pq *PriorityQueue) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[0 : n-1]
	return item
}

// Reset clears the priority queue.
func (pq *PriorityQueue) Reset() {
	pq.items = pq.items[:0]
}

func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.Less(i, parent) {
			break
		}
		pq.Swap(i, parent)
		i = parent
	}
}

func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		right := left + 1
		if right < n && pq.Less(right, left) {
			child = right
		}
		if !pq.Less(child, i) {
			break
		}
		pq.Swap(i, child)
		i = child
	}
}
