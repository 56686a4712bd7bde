// Package minheap implements an array-backed binary min-heap whose elements
// remember their own slot.
//
// Overview:
//
//   - Every element implements Element: it can report and accept its current
//     slot index and compare itself against another element.
//   - Because the slot is stored on the element, Contains, Remove and Reorder
//     run without scanning: Contains is O(1), Remove and Reorder are O(log n).
//   - Reorder re-establishes order after the caller mutated an element's key
//     in place. This is the decrease-key primitive Dijkstra's relaxation needs.
//
// Invariants, after every operation:
//
//   - heap[e.Index()] == e for every held element e;
//   - heap[parent(i)] <= heap[i] for every slot i > 0;
//   - an element that left the heap reports NotInHeap.
//
// Complexity:
//
//   - Insert:       O(log n) amortized; backing storage doubles when full.
//   - Build:        O(n) bottom-up heapify, preferred over n Inserts.
//   - ExtractMin:   O(log n).
//   - Remove:       O(log n).
//   - Reorder:      O(log n).
//   - Contains/Len: O(1).
//
// The heap is not safe for concurrent use.
package minheap
