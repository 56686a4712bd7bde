package collections

import "errors"

// Sentinel errors for collection operations.
var (
	// ErrKeyNotFound indicates a lookup or removal of a key that is not stored.
	ErrKeyNotFound = errors.New("collections: key not found")

	// ErrEmpty indicates Pop or Peek on an empty sequence.
	ErrEmpty = errors.New("collections: sequence is empty")
)

// Frontier is the ordered set of discovered-but-unprocessed items that drives
// a traversal. A Queue yields breadth-first order, a Stack depth-first order.
type Frontier[T any] interface {
	// Push adds an item to the frontier.
	Push(item T)

	// Pop removes and returns the next item; ErrEmpty if there is none.
	Pop() (T, error)

	// IsEmpty reports whether no items remain.
	IsEmpty() bool
}
