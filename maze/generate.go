package maze

import (
	"github.com/katalvlaran/labyrinth/collections"
)

// Generate builds a random rows×cols maze.
//
// Errors: ErrInvalidDimensions, ErrInvalidRatio.
func Generate(rows, cols int, opts ...Option) (*Maze, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	m, err := newMaze(rows, cols, o.log)
	if err != nil {
		return nil, err
	}
	rng := o.random()

	for i := range m.cells {
		m.cells[i].Score = rng.Intn(16)
	}

	start := Position{Row: rng.Intn(rows), Col: 0}
	end := Position{Row: rng.Intn(rows), Col: cols - 1}
	m.openWall(start, West)
	m.openWall(end, East)
	m.markEndpoints(start, end)

	g := &generator{maze: m, intn: rng.Intn}
	g.carve(start)
	g.removeWalls(int(o.ratio * float64(rows*cols)))

	if err := m.deriveGraph(); err != nil {
		return nil, err
	}
	m.log.Debug("maze generated",
		"rows", rows, "cols", cols,
		"start", start, "end", end,
		"carve_steps", g.carved,
		"walls_removed", g.removed, "removal_misses", g.missed,
	)
	return m, nil
}

// generator holds the per-run carve state.
type generator struct {
	maze *Maze
	intn func(n int) int

	carved  int
	removed int
	missed  int
}

// carve runs the stack-driven randomized depth-first search from root.
// The top of the stack is peeked, not popped, so a cell stays on the stack
// until it has no unvisited neighbor left.
func (g *generator) carve(root Position) {
	m := g.maze
	visited := make([]bool, len(m.cells))
	stack := collections.NewStack[Position](len(m.cells))
	stack.Push(root)

	candidates := make([]Direction, 0, 4)
	for !stack.IsEmpty() {
		cur, _ := stack.Peek()
		visited[m.index(cur)] = true

		candidates = candidates[:0]
		for _, d := range carveOrder[m.at(cur).Role] {
			if q, ok := m.neighbor(cur, d); ok && !visited[m.index(q)] {
				candidates = append(candidates, d)
			}
		}

		switch len(candidates) {
		case 0:
			_, _ = stack.Pop()
			continue
		case 1:
			g.open(stack, cur, candidates[0])
		default:
			g.open(stack, cur, candidates[g.intn(len(candidates))])
		}
	}
}

func (g *generator) open(stack *collections.Stack[Position], cur Position, d Direction) {
	g.maze.openWall(cur, d)
	next, _ := g.maze.neighbor(cur, d)
	stack.Push(next)
	g.carved++
}

// removalOrder is the order in which a removal attempt indexes walls.
var removalOrder = [4]Direction{North, West, South, East}

// removeWalls makes attempts best-effort removals on random interior cells.
// Grids without interior cells draw nothing.
func (g *generator) removeWalls(attempts int) {
	m := g.maze
	if m.rows < 3 || m.cols < 3 {
		return
	}
	for i := 0; i < attempts; i++ {
		p := Position{
			Row: g.intn(m.rows-2) + 1,
			Col: g.intn(m.cols-2) + 1,
		}
		walls := m.at(p).Walls
		opened := false
		for try := 0; try < 4; try++ {
			d := removalOrder[g.intn(4)]
			if walls.Has(d) {
				m.openWall(p, d)
				opened = true
				break
			}
		}
		if opened {
			g.removed++
		} else {
			g.missed++
		}
	}
}
