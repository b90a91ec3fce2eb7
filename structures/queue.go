package structures

// Queue is a fixed-capacity FIFO backed by a circular array. It backs the
// message, follow-up, and notification logs and the normal case pool.
type Queue[T any] struct {
	items []T
	front int // index of the oldest element, -1 when empty
	rear  int // index of the newest element, -1 when empty
	count int
}

// NewQueue creates a queue with DefaultCapacity.
func NewQueue[T any]() *Queue[T] {
	return NewQueueCapacity[T](DefaultCapacity)
}

// NewQueueCapacity creates a queue holding at most capacity elements.
func NewQueueCapacity[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue[T]{items: make([]T, capacity), front: -1, rear: -1}
}

// Enqueue appends item at the rear. Returns false when full.
func (q *Queue[T]) Enqueue(item T) bool {
	if q.count >= len(q.items) {
		return false
	}
	if q.front == -1 {
		q.front = 0
		q.rear = 0
	} else {
		q.rear = (q.rear + 1) % len(q.items)
	}
	q.items[q.rear] = item
	q.count++
	return true
}

// Dequeue removes and returns the front element. The second return is false
// when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.front == -1 {
		var zero T
		return zero, false
	}
	item := q.items[q.front]
	var zero T
	q.items[q.front] = zero
	q.count--

	if q.count == 0 {
		q.front = -1
		q.rear = -1
	} else {
		q.front = (q.front + 1) % len(q.items)
	}
	return item, true
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.front == -1 {
		var zero T
		return zero, false
	}
	return q.items[q.front], true
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.front == -1
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.count
}

// All returns the elements front to rear without mutating the queue.
func (q *Queue[T]) All() []T {
	if q.front == -1 {
		return []T{}
	}
	result := make([]T, 0, q.count)
	i := q.front
	for n := 0; n < q.count; n++ {
		result = append(result, q.items[i])
		i = (i + 1) % len(q.items)
	}
	return result
}
