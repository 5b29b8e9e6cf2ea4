// Package stack provides the LIFO state stacks a canvas keeps for its
// clip rectangle and pen color.
package stack

// Stack is a last-in first-out sequence of saved values.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	entries []T
}

// New creates a stack with room for capacity entries before it grows.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		entries: make([]T, 0, capacity),
	}
}

// Push saves v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.entries = append(s.entries, v)
}

// Pop removes and returns the most recent entry.
// If the stack is empty, ok is false and nothing changes.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if len(s.entries) == 0 {
		return v, false
	}
	last := len(s.entries) - 1
	v = s.entries[last]

	var zero T
	s.entries[last] = zero
	s.entries = s.entries[:last]
	return v, true
}

// Peek returns the most recent entry without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.entries) == 0 {
		return v, false
	}
	return s.entries[len(s.entries)-1], true
}

// Depth returns the number of saved entries.
func (s *Stack[T]) Depth() int {
	return len(s.entries)
}

// Reset drops every entry, keeping the allocated capacity.
func (s *Stack[T]) Reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
