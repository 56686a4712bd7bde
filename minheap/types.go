package minheap

import "errors"

// NotInHeap is the index an element reports while it is not held by a heap.
const NotInHeap = -1

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap indicates ExtractMin or Peek on an empty heap.
	// It describes a state of the heap, not a missing key.
	ErrEmptyHeap = errors.New("minheap: heap is empty")

	// ErrIndexOutOfRange indicates At was called with a slot outside [0, Len()).
	ErrIndexOutOfRange = errors.New("minheap: index out of range")
)

// Element is the contract for values stored in a Heap.
// Implementations are normally pointer types, so SetIndex is visible
// through every copy the heap holds.
type Element[T any] interface {
	comparable

	// Index returns the slot last assigned by SetIndex.
	Index() int

	// SetIndex records the element's current slot, or NotInHeap.
	SetIndex(i int)

	// Less reports whether the receiver orders strictly before other.
	Less(other T) bool
}
