package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/labyrinth/maze"
)

// CellSize is the side of one cell in SVG user units.
const CellSize = 20

// margin keeps boundary strokes inside the canvas.
const margin = 2

// SVG writes an SVG drawing of m to w. sol may be nil.
func SVG(w io.Writer, m *maze.Maze, sol *maze.Solution) error {
	bw := bufio.NewWriter(w)
	width := m.Cols()*CellSize + 2*margin
	height := m.Rows()*CellSize + 2*margin

	fmt.Fprintf(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\">\n", width, height)
	fmt.Fprintf(bw, "\t<rect width=\"%d\" height=\"%d\" fill=\"white\" />\n", width, height)
	fmt.Fprintf(bw, "\t<g stroke=\"black\" stroke-width=\"2\" stroke-linecap=\"square\">\n")
	for _, c := range m.Cells() {
		writeWalls(bw, c, m.Rows(), m.Cols())
	}
	fmt.Fprintf(bw, "\t</g>\n")

	if sol != nil && len(sol.Path) > 1 {
		fmt.Fprintf(bw, "\t<polyline fill=\"none\" stroke=\"red\" stroke-width=\"3\" points=\"")
		for i, p := range sol.Path {
			if i > 0 {
				bw.WriteByte(' ')
			}
			x, y := center(p)
			fmt.Fprintf(bw, "%d,%d", x, y)
		}
		fmt.Fprintf(bw, "\" />\n")
	}
	if p, ok := m.Start(); ok {
		writeDisc(bw, p, "blue")
	}
	if p, ok := m.End(); ok {
		writeDisc(bw, p, "red")
	}
	fmt.Fprintf(bw, "</svg>\n")
	return bw.Flush()
}

// writeWalls draws the north and west walls of c, plus its south and east
// walls when they lie on the outer boundary; inner south and east walls are
// drawn by the neighbor.
func writeWalls(w io.Writer, c maze.Cell, rows, cols int) {
	x0 := margin + c.Col*CellSize
	y0 := margin + c.Row*CellSize
	x1, y1 := x0+CellSize, y0+CellSize

	if c.HasWall(maze.North) {
		line(w, x0, y0, x1, y0)
	}
	if c.HasWall(maze.West) {
		line(w, x0, y0, x0, y1)
	}
	if c.HasWall(maze.South) && c.Row == rows-1 {
		line(w, x0, y1, x1, y1)
	}
	if c.HasWall(maze.East) && c.Col == cols-1 {
		line(w, x1, y0, x1, y1)
	}
}

func line(w io.Writer, x1, y1, x2, y2 int) {
	fmt.Fprintf(w, "\t\t<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" />\n", x1, y1, x2, y2)
}

func writeDisc(w io.Writer, p maze.Position, fill string) {
	x, y := center(p)
	fmt.Fprintf(w, "\t<circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=\"%s\" stroke=\"black\" stroke-width=\"1\" />\n",
		x, y, CellSize*2/5, fill)
}

func center(p maze.Position) (int, int) {
	return margin + p.Col*CellSize + CellSize/2, margin + p.Row*CellSize + CellSize/2
}
