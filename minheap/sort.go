package minheap

import "golang.org/x/exp/constraints"

// sortItem adapts a plain ordered value to Element.
type sortItem[V constraints.Ordered] struct {
	value V
	index int
}

func (s *sortItem[V]) Index() int                   { return s.index }
func (s *sortItem[V]) SetIndex(i int)               { s.index = i }
func (s *sortItem[V]) Less(other *sortItem[V]) bool { return s.value < other.value }

// Sort returns a new slice holding xs in non-decreasing order.
// The input is not modified.
// Complexity: O(n log n) time, O(n) space.
func Sort[V constraints.Ordered](xs []V) []V {
	items := make([]*sortItem[V], len(xs))
	for i, x := range xs {
		items[i] = &sortItem[V]{value: x, index: NotInHeap}
	}
	h := Build(items)
	out := make([]V, 0, len(xs))
	for !h.IsEmpty() {
		it, _ := h.ExtractMin()
		out = append(out, it.value)
	}
	return out
}
