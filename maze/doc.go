// Package maze generates, persists and solves rectangular mazes.
//
// A Maze is a row-major grid of walled Cells. Every cell carries a random
// score in [0,16) that is folded into the weight of each passage through it,
// so the cheapest route is not simply the shortest one.
//
// Lifecycle
//
//	Generate or Decode/Parse → Maze (grid final, graph derived once)
//	                         → Solve (optional, cached)
//
// Generation
//
//  1. Scores are drawn for every cell in row-major order.
//  2. A start row is drawn for column 0 and an end row for the last column;
//     their outward walls (west of start, east of end) are opened.
//  3. A stack-driven randomized depth-first carve from the start visits every
//     cell once, opening one wall pair per step. The opened walls form a
//     spanning tree of the grid: a perfect maze.
//  4. A best-effort pass opens extra interior walls, floor(ratio·rows·cols)
//     attempts (ratio defaults to 0.10). Each attempt picks a random
//     non-boundary cell and tries up to four random walls. This only adds
//     cycles; connectivity never decreases.
//
// All draws come from one *rand.Rand in that order, so a seed reproduces the
// same maze byte for byte.
//
// Graph
//
//	One vertex per cell (keyed by Position), one edge per open wall pair
//	between grid-adjacent cells, weighted 1 + score(a) + score(b).
//
// Binary format
//
//	"MAZE" | rows (1 byte) | cols (1 byte) | rows·cols cell bytes, row-major.
//	Cell byte: high nibble score; low nibble wall code, bit0 east, bit1 north,
//	bit2 west, bit3 south, a set bit meaning the wall is present.
//
// Decoding recovers start and end from the boundary: cells in column 0 with
// an open west wall and cells in the last column with an open east wall are
// candidates in row-major order. Exactly two candidates are required (a 1×1
// maze contributes its single cell twice); otherwise Solve reports
// ErrNoEndpoints.
package maze
