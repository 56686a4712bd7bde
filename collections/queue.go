package collections

// Queue is a FIFO sequence backed by a growable ring buffer.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	buf   []T
	head  int
	count int
}

// NewQueue returns an empty queue with room for capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{buf: make([]T, capacity)}
}

// Push enqueues item at the tail.
// Complexity: O(1) amortized; the buffer doubles when full.
func (q *Queue[T]) Push(item T) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.count)%len(q.buf)] = item
	q.count++
}

// Pop dequeues the item at the head.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, ErrEmpty
	}
	item := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return item, nil
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.count == 0 }

// Len returns the number of items.
func (q *Queue[T]) Len() int { return q.count }

func (q *Queue[T]) grow() {
	buf := make([]T, max(2*len(q.buf), 1))
	for i := 0; i < q.count; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
