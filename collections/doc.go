// Package collections provides the small container primitives the graph
// engine is built on:
//
//   - OrderedMap: an associative store keyed by element identity that
//     remembers insertion order, so that neighbor enumeration (and therefore
//     every search result) is reproducible run to run.
//   - Stack and Queue: LIFO and FIFO sequences. Both satisfy Frontier, the
//     interface core.Graph.Walk is parameterized by.
//
// Pop, Peek and Get fail fast with a sentinel error instead of returning a
// zero value the caller might mistake for data.
//
// None of the types are safe for concurrent use.
package collections
