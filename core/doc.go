// Package core provides the weighted, undirected Graph the rest of the module
// is built on, together with its generic traversal.
//
// The Graph G = (V,E) is parameterized by its element type:
//
//   - Elements are any comparable Go value (strings, ints, small structs such
//     as maze positions). Each element owns exactly one vertex.
//   - Edges are undirected and carry a strictly positive float64 weight.
//     Connect(a, b) mirrors the edge in both adjacency maps with the same
//     weight; at most one edge joins an unordered pair; self-loops are refused.
//   - Vertices() and Neighbors() enumerate in insertion order. Searches built
//     on top of the graph therefore produce the same answer on every run.
//
// Traversal:
//
//	Walk(start, visit, frontier) is the single search loop. The frontier
//	discipline chooses the order: a collections.Queue gives breadth-first
//	order, a collections.Stack gives depth-first order. A vertex is marked
//	the moment it is pushed, so it is never queued twice. Marks live in a
//	per-call table, so walks are independent of each other.
//
// Core methods:
//
//	// Vertex lifecycle
//	AddVertex(e T) error                         // O(1)
//	RemoveVertex(e T) error                      // O(deg(e))
//	HasVertex(e T) bool                          // O(1)
//
//	// Edge lifecycle
//	Connect(a, b T, opts ...EdgeOption) error    // O(1)
//	Disconnect(a, b T) error                     // O(1)
//	SetWeight(a, b T, w float64) error           // O(1)
//
//	// Queries
//	AreNeighbors(a, b T) (bool, error)           // O(1)
//	Weight(a, b T) (float64, error)              // O(1)
//	Neighbors(e T) ([]Neighbor[T], error)        // O(deg(e))
//	Vertices() []T                               // O(V)
//	VertexCount(), EdgeCount() int               // O(1)
//
//	// Traversal
//	Walk, BFS, DFS                               // O(V+E)
//	IsConnected() bool                           // O(V+E)
//
// Errors:
//
//	Every failure is a sentinel that wraps one of two categories, so callers
//	may match either the precise cause or the category with errors.Is:
//
//	ErrInvalidArgument
//	  ├─ ErrVertexExists      AddVertex on a present element.
//	  ├─ ErrLoopNotAllowed    Connect(a, a).
//	  ├─ ErrBadWeight         weight not finite and > 0.
//	  ├─ ErrAlreadyConnected  Connect on an adjacent pair.
//	  └─ ErrNotConnected      Disconnect/Weight/SetWeight on a non-adjacent pair.
//	ErrNotFound
//	  └─ ErrVertexNotFound    any operation naming an absent element.
//
// The Graph is not safe for concurrent use; one search at a time per graph.
package core
