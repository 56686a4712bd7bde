// Package bfs provides breadth-first search over a core.Graph: layered
// traversal with hop depths, and hop-count shortest paths.
//
// What
//
//   - Traverse explores vertices in non-decreasing hop distance from a start
//     vertex and returns a Result holding:
//   - Order: visit sequence
//   - Depth: element → distance (edges) from start
//   - Parent: element → predecessor in the BFS tree
//   - ShortestPath labels every reachable vertex with its hop distance from
//     the origin, then walks back from the destination, at each step choosing
//     a neighbor whose label is exactly one less.
//
// Edge weights are ignored; every edge counts as one hop.
//
// Determinism
//
//	core.Graph enumerates neighbors in insertion order and the walker enqueues
//	them in that order, so Order and the reconstructed path are reproducible.
//	When several neighbors carry the predecessor label, the first one in
//	enumeration order is chosen.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Traverse(g, "start",
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
//	path, err := bfs.ShortestPath(g, "A", "K")
//	if len(path) == 0 {
//	    // K is unreachable from A
//	}
//
// Errors
//
//   - ErrGraphNil            nil graph pointer.
//   - core.ErrVertexNotFound start, origin or destination absent.
//   - ErrOptionViolation     invalid option (e.g. negative depth).
//   - context errors and OnVisit errors are propagated (wrapped).
package bfs
