package collections

// Stack is a LIFO sequence backed by a slice.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack with room for capacity items.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, max(capacity, 0))}
}

// Push places item on top.
func (s *Stack[T]) Push(item T) { s.items = append(s.items, item) }

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmpty
	}
	item := s.items[n-1]
	s.items[n-1] = zero // release the reference
	s.items = s.items[:n-1]
	return item, nil
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of items.
func (s *Stack[T]) Len() int { return len(s.items) }
