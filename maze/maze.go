package maze

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/labyrinth/core"
)

// Maze is a rectangular grid of Cells with a derived passage graph.
//
// The grid is final once Generate or Decode returns; the graph is derived
// from it exactly once and never rebuilt. A Maze is not safe for concurrent
// use.
type Maze struct {
	rows, cols int
	cells      []Cell // row-major

	start, end   Position
	hasEndpoints bool

	graph    *core.Graph[Position]
	solution *Solution

	log *slog.Logger
}

// newMaze allocates a rows×cols grid with every wall present.
func newMaze(rows, cols int, log *slog.Logger) (*Maze, error) {
	if rows < 1 || rows > MaxDimension || cols < 1 || cols > MaxDimension {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, cols)
	}
	if log == nil {
		log = discardLogger()
	}
	m := &Maze{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
		log:   log,
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := Position{Row: r, Col: c}
			m.cells[m.index(p)] = Cell{
				Position: p,
				Role:     RoleOf(p, rows, cols),
				Walls:    AllWalls,
			}
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Maze) Cols() int { return m.cols }

// Cell returns a copy of the cell at (row, col).
func (m *Maze) Cell(row, col int) (Cell, error) {
	p := Position{Row: row, Col: col}
	if !m.inBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v in %d×%d", ErrOutOfBounds, p, m.rows, m.cols)
	}
	return m.cells[m.index(p)], nil
}

// Cells returns a copy of every cell in row-major order.
func (m *Maze) Cells() []Cell {
	return append([]Cell(nil), m.cells...)
}

// Start returns the entry cell; ok is false if it could not be recovered.
func (m *Maze) Start() (Position, bool) { return m.start, m.hasEndpoints }

// End returns the exit cell; ok is false if it could not be recovered.
func (m *Maze) End() (Position, bool) { return m.end, m.hasEndpoints }

// Graph returns the passage graph. Callers must not mutate it.
func (m *Maze) Graph() *core.Graph[Position] { return m.graph }

// OpenWallPairs counts open walls shared by two cells of the grid. Openings
// in the outer boundary are not counted.
func (m *Maze) OpenWallPairs() int {
	return m.graph.EdgeCount()
}

func (m *Maze) index(p Position) int { return p.Row*m.cols + p.Col }

func (m *Maze) at(p Position) *Cell { return &m.cells[m.index(p)] }

func (m *Maze) inBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// neighbor returns the in-grid cell across side d of p.
func (m *Maze) neighbor(p Position, d Direction) (Position, bool) {
	q := p.Step(d)
	return q, m.inBounds(q)
}

// openWall removes the wall on side d of p, and the facing wall of the
// neighbor across it when there is one.
func (m *Maze) openWall(p Position, d Direction) {
	c := m.at(p)
	c.Walls = c.Walls.Without(d)
	if q, ok := m.neighbor(p, d); ok {
		n := m.at(q)
		n.Walls = n.Walls.Without(d.Opposite())
	}
}

// markEndpoints flags start and end and records them.
func (m *Maze) markEndpoints(start, end Position) {
	m.start, m.end, m.hasEndpoints = start, end, true
	m.at(start).Start = true
	m.at(end).End = true
}

// deriveGraph builds the passage graph: vertices in row-major order, then for
// each cell its east and south passages.
func (m *Maze) deriveGraph() error {
	g := core.NewGraph[Position](core.WithCapacity(len(m.cells)))
	for i := range m.cells {
		if err := g.AddVertex(m.cells[i].Position); err != nil {
			return err
		}
	}
	for i := range m.cells {
		c := &m.cells[i]
		for _, d := range [2]Direction{East, South} {
			q, ok := m.neighbor(c.Position, d)
			if !ok || c.HasWall(d) {
				continue
			}
			w := float64(1 + c.Score + m.at(q).Score)
			if err := g.Connect(c.Position, q, core.WithWeight(w)); err != nil {
				return err
			}
		}
	}
	m.graph = g
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
