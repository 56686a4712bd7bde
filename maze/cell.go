package maze

// Cell is one square of the grid.
type Cell struct {
	Position

	// Role is derived from Position against the grid bounds.
	Role Role

	// Walls holds the present walls.
	Walls Walls

	// Score is a value in [0,16) added to the weight of every passage
	// touching this cell.
	Score int

	// Start and End flag the entry and exit cells.
	Start bool
	End   bool
}

// HasWall reports whether the wall on side d is present.
func (c Cell) HasWall(d Direction) bool { return c.Walls.Has(d) }
