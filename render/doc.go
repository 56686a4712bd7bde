// Package render draws a maze.Maze, optionally with its solution, as plain
// text or as an SVG document.
//
// ASCII uses the "+---+" box style: a cell is three characters wide, "S" and
// "E" mark start and end, "*" marks the solution path. Scores are not drawn.
//
// SVG draws every present wall as a line on a grid of CellSize-pixel squares,
// a blue disc on the start, a red disc on the end, and the solution as a red
// polyline through cell centers.
package render
