package structures

import "sort"

// heapEntry carries the payload plus the ordering key: priority first, then
// a monotonic insertion counter so equal priorities dequeue in FIFO order.
type heapEntry[T any] struct {
	priority int
	seq      uint64
	item     T
}

// PriorityQueue is a fixed-capacity stable binary min-heap. Lower numeric
// priority dequeues first; ties break by insertion order. It backs the
// urgent case pool and urgent appointment dispatch.
type PriorityQueue[T any] struct {
	heap []heapEntry[T]
	size int
	seq  uint64
}

// NewPriorityQueue creates a priority queue with DefaultCapacity.
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return NewPriorityQueueCapacity[T](DefaultCapacity)
}

// NewPriorityQueueCapacity creates a priority queue holding at most capacity
// elements.
func NewPriorityQueueCapacity[T any](capacity int) *PriorityQueue[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &PriorityQueue[T]{heap: make([]heapEntry[T], capacity)}
}

func (pq *PriorityQueue[T]) less(a, b heapEntry[T]) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

func (pq *PriorityQueue[T]) siftUp(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if !pq.less(pq.heap[index], pq.heap[parent]) {
			break
		}
		pq.heap[index], pq.heap[parent] = pq.heap[parent], pq.heap[index]
		index = parent
	}
}

func (pq *PriorityQueue[T]) siftDown(index int) {
	for {
		smallest := index
		left := 2*index + 1
		right := 2*index + 2

		if left < pq.size && pq.less(pq.heap[left], pq.heap[smallest]) {
			smallest = left
		}
		if right < pq.size && pq.less(pq.heap[right], pq.heap[smallest]) {
			smallest = right
		}
		if smallest == index {
			return
		}
		pq.heap[index], pq.heap[smallest] = pq.heap[smallest], pq.heap[index]
		index = smallest
	}
}

// Enqueue inserts item with the given priority, restoring heap order by
// sifting up from the new leaf. Returns false when full.
func (pq *PriorityQueue[T]) Enqueue(item T, priority int) bool {
	if pq.size >= len(pq.heap) {
		return false
	}
	pq.heap[pq.size] = heapEntry[T]{priority: priority, seq: pq.seq, item: item}
	pq.seq++
	pq.siftUp(pq.size)
	pq.size++
	return true
}

// Dequeue removes and returns the minimum (priority, insertion order)
// element, moving the last leaf to the root and sifting down. The second
// return is false when the heap is empty.
func (pq *PriorityQueue[T]) Dequeue() (T, bool) {
	if pq.size == 0 {
		var zero T
		return zero, false
	}
	item := pq.heap[0].item

	pq.size--
	var zero heapEntry[T]
	if pq.size > 0 {
		pq.heap[0] = pq.heap[pq.size]
		pq.heap[pq.size] = zero
		pq.siftDown(0)
	} else {
		pq.heap[0] = zero
	}
	return item, true
}

// Peek returns the minimum element without removing it.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if pq.size == 0 {
		var zero T
		return zero, false
	}
	return pq.heap[0].item, true
}

// IsEmpty reports whether the heap holds no elements.
func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.size == 0
}

// Len returns the number of stored elements.
func (pq *PriorityQueue[T]) Len() int {
	return pq.size
}

// All returns the elements sorted by (priority, insertion order) without
// mutating the heap.
func (pq *PriorityQueue[T]) All() []T {
	if pq.size == 0 {
		return []T{}
	}
	entries := make([]heapEntry[T], pq.size)
	copy(entries, pq.heap[:pq.size])
	sort.Slice(entries, func(i, j int) bool {
		return pq.less(entries[i], entries[j])
	})

	result := make([]T, pq.size)
	for i, entry := range entries {
		result[i] = entry.item
	}
	return result
}
