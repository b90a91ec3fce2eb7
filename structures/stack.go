package structures

// DefaultCapacity is the element capacity of a Stack, Queue, or
// PriorityQueue created through the plain constructors.
const DefaultCapacity = 1000

// Stack is a fixed-capacity LIFO backed by an array. It backs the per-case
// undo history.
type Stack[T any] struct {
	items []T
	top   int // index of the top element, -1 when empty
}

// NewStack creates a stack with DefaultCapacity.
func NewStack[T any]() *Stack[T] {
	return NewStackCapacity[T](DefaultCapacity)
}

// NewStackCapacity creates a stack holding at most capacity elements.
func NewStackCapacity[T any](capacity int) *Stack[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack[T]{items: make([]T, capacity), top: -1}
}

// Push places item on top of the stack. Returns false when full.
func (s *Stack[T]) Push(item T) bool {
	if s.top >= len(s.items)-1 {
		return false
	}
	s.top++
	s.items[s.top] = item
	return true
}

// Pop removes and returns the top element. The second return is false when
// the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.top == -1 {
		var zero T
		return zero, false
	}
	item := s.items[s.top]
	var zero T
	s.items[s.top] = zero // drop the reference
	s.top--
	return item, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.top == -1 {
		var zero T
		return zero, false
	}
	return s.items[s.top], true
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.top == -1
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.top + 1
}
