package queue

// Stack is a last-in first-out stack. The zero value is ready for use.
type Stack[T any] struct {
	items []T
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) { s.items = append(s.items, item) }

// Pull removes and returns the top item.
// The boolean is false when the stack is empty.
func (s *Stack[T]) Pull() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return item, true
}
