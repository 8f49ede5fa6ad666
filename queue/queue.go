// Package queue provides a comparator-ordered priority queue backed by a
// binary heap.
package queue

import "cmp"

// PriorityQueue is a binary-heap-backed priority queue.
// Value-based storage for better cache locality and zero allocations
// beyond slice growth. The element with the smallest comparator order is
// dequeued first; supply an inverted comparator for max-heap behavior.
//
// Not safe for concurrent use.
type PriorityQueue[T any] struct {
	compare func(a, b T) int
	items   []T
}

// New creates a priority queue ordered by compare. compare must return a
// negative value when a sorts before b, zero when equal, positive
// otherwise.
func New[T any](compare func(a, b T) int) *PriorityQueue[T] {
	return &PriorityQueue[T]{compare: compare}
}

// NewOrdered creates a priority queue over naturally ordered elements.
func NewOrdered[T cmp.Ordered]() *PriorityQueue[T] {
	return New(cmp.Compare[T])
}

// Len returns the number of queued elements.
func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

// Peek returns the highest-priority element without removing it.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if len(pq.items) == 0 {
		var zero T
		return zero, false
	}
	return pq.items[0], true
}

// Enqueue inserts item while maintaining the heap invariant.
func (pq *PriorityQueue[T]) Enqueue(item T) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// Dequeue removes and returns the highest-priority element.
func (pq *PriorityQueue[T]) Dequeue() (T, bool) {
	n := len(pq.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	var zero T
	pq.items[n-1] = zero // release reference for GC
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if pq.compare(pq.items[i], pq.items[parent]) >= 0 {
			break
		}
		pq.items[i], pq.items[parent] = pq.items[parent], pq.items[i]
		i = parent
	}
}

func (pq *PriorityQueue[T]) siftDown(i int) {
	n := len(pq.items)
	for {
		left := 2*i + 1
		right := 2*i + 2
		smallest := i

		if left < n && pq.compare(pq.items[left], pq.items[smallest]) < 0 {
			smallest = left
		}
		if right < n && pq.compare(pq.items[right], pq.items[smallest]) < 0 {
			smallest = right
		}
		if smallest == i {
			break
		}
		pq.items[i], pq.items[smallest] = pq.items[smallest], pq.items[i]
		i = smallest
	}
}
