package render

import (
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

// ASCII returns a text drawing of m. sol may be nil.
func ASCII(m *maze.Maze, sol *maze.Solution) string {
	var sb strings.Builder
	rows, cols := m.Rows(), m.Cols()
	cells := m.Cells()
	at := func(r, c int) maze.Cell { return cells[r*cols+c] }

	onPath := make(map[maze.Position]bool)
	if sol != nil {
		for _, p := range sol.Path {
			onPath[p] = true
		}
	}

	for r := 0; r < rows; r++ {
		// North walls
		sb.WriteByte('+')
		for c := 0; c < cols; c++ {
			if at(r, c).HasWall(maze.North) {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteByte('\n')

		// Cell row
		if at(r, 0).HasWall(maze.West) {
			sb.WriteByte('|')
		} else {
			sb.WriteByte(' ')
		}
		for c := 0; c < cols; c++ {
			cell := at(r, c)
			switch {
			case cell.Start:
				sb.WriteString(" S ")
			case cell.End:
				sb.WriteString(" E ")
			case onPath[cell.Position]:
				sb.WriteString(" * ")
			default:
				sb.WriteString("   ")
			}
			if cell.HasWall(maze.East) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	// Bottom boundary
	sb.WriteByte('+')
	for c := 0; c < cols; c++ {
		if at(rows-1, c).HasWall(maze.South) {
			sb.WriteString("---+")
		} else {
			sb.WriteString("   +")
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}
