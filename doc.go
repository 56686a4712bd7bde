// Package labyrinth is a small graph engine with a maze domain on top of it:
// generate a rectangular maze, store it in a compact binary form, load it
// back and find the cheapest way through.
//
// 🚀 What is inside?
//
//   - collections/  insertion-ordered map, stack and queue frontiers
//   - minheap/      indexable binary min-heap with Reorder and heap sort
//   - core/         undirected weighted Graph[T] and the frontier-driven Walk
//   - bfs/          breadth-first traversal and hop-count shortest path
//   - dfs/          depth-first traversal, components and cycle search
//   - dijkstra/     weighted shortest path over the indexable heap
//   - maze/         grid generation, scoring, solving and the MAZE codec
//   - render/       ASCII and SVG drawings of a maze and its solution
//   - cmd/mazectl   command-line front end (generate | solve)
//
// Quick example:
//
//	m, _ := maze.Generate(8, 12, maze.WithSeed(42))
//	sol, _ := m.Solve()
//	fmt.Print(render.ASCII(m, sol))
//
// Every cell carries a score in [0,16); moving between two open neighbours
// costs 1 + score(a) + score(b), so the solution is the cheapest route, not
// simply the shortest one.
package labyrinth
