package minheap

import "fmt"

// Heap is an indexable binary min-heap.
type Heap[T Element[T]] struct {
	tree []T // len(tree) is the allocated capacity
	n    int // number of held elements
}

// New returns an empty heap with room for capacity elements.
func New[T Element[T]](capacity int) *Heap[T] {
	return &Heap[T]{tree: make([]T, max(capacity, 1))}
}

// Build returns a heap holding items, ordered bottom-up in O(n).
// The slice is copied; items keep their identity and receive slot indices.
func Build[T Element[T]](items []T) *Heap[T] {
	h := &Heap[T]{tree: make([]T, max(len(items), 1)), n: len(items)}
	for i, e := range items {
		h.tree[i] = e
		e.SetIndex(i)
	}
	for i := h.n/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return h
}

// Insert adds e to the heap.
func (h *Heap[T]) Insert(e T) {
	if h.n == len(h.tree) {
		h.grow()
	}
	h.tree[h.n] = e
	e.SetIndex(h.n)
	h.n++
	h.siftUp(h.n - 1)
}

// ExtractMin removes and returns the minimum element.
func (h *Heap[T]) ExtractMin() (T, error) {
	if h.n == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	root := h.tree[0]
	h.detach(0)
	return root, nil
}

// Peek returns the minimum element without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if h.n == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	return h.tree[0], nil
}

// Remove takes e out of the heap using its stored slot.
// It is a no-op when e's index is outside the held range.
func (h *Heap[T]) Remove(e T) {
	i := e.Index()
	if i < 0 || i >= h.n {
		return
	}
	h.detach(i)
}

// Reorder restores heap order after e's key was changed in place.
// It is a no-op when e's index is outside the held range.
func (h *Heap[T]) Reorder(e T) {
	i := e.Index()
	if i < 0 || i >= h.n {
		return
	}
	h.siftUp(i)
	h.siftDown(e.Index())
}

// Contains reports whether e is held, answered from e's own index.
func (h *Heap[T]) Contains(e T) bool {
	i := e.Index()
	return i >= 0 && i < h.n && h.tree[i] == e
}

// Len returns the number of held elements.
func (h *Heap[T]) Len() int { return h.n }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.n == 0 }

// Cap returns the allocated slot count.
func (h *Heap[T]) Cap() int { return len(h.tree) }

// At returns the element in slot i.
func (h *Heap[T]) At(i int) (T, error) {
	if i < 0 || i >= h.n {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, h.n)
	}
	return h.tree[i], nil
}

// Clear empties the heap; every held element is told NotInHeap.
func (h *Heap[T]) Clear() {
	var zero T
	for i := 0; i < h.n; i++ {
		h.tree[i].SetIndex(NotInHeap)
		h.tree[i] = zero
	}
	h.n = 0
}

// detach removes the element in slot i by moving the last element into it.
func (h *Heap[T]) detach(i int) {
	last := h.n - 1
	h.swap(i, last)
	gone := h.tree[last]
	var zero T
	h.tree[last] = zero
	h.n--
	gone.SetIndex(NotInHeap)
	if i < h.n {
		moved := h.tree[i]
		h.siftUp(i)
		h.siftDown(moved.Index())
	}
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.tree[i].Less(h.tree[p]) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Heap[T]) siftDown(i int) {
	for {
		smallest := i
		l, r := 2*i+1, 2*i+2
		if l < h.n && h.tree[l].Less(h.tree[smallest]) {
			smallest = l
		}
		if r < h.n && h.tree[r].Less(h.tree[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two slots and updates both stored indices.
func (h *Heap[T]) swap(i, j int) {
	h.tree[i], h.tree[j] = h.tree[j], h.tree[i]
	h.tree[i].SetIndex(i)
	h.tree[j].SetIndex(j)
}

func (h *Heap[T]) grow() {
	tree := make([]T, max(2*len(h.tree), 1))
	copy(tree, h.tree[:h.n])
	h.tree = tree
}
