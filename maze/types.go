package maze

import (
	"errors"
	"fmt"
)

// MaxDimension is the largest row or column count the binary format can hold.
const MaxDimension = 255

// Sentinel errors.
var (
	// ErrInvalidDimensions indicates rows or cols outside 1..MaxDimension.
	ErrInvalidDimensions = fmt.Errorf("maze: dimensions must be within 1..%d", MaxDimension)

	// ErrInvalidFormat indicates a byte stream that is not a valid maze encoding.
	ErrInvalidFormat = errors.New("maze: invalid format")

	// ErrNoEndpoints indicates a maze whose start and end could not be recovered.
	ErrNoEndpoints = errors.New("maze: start and end cannot be recovered")

	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")

	// ErrInvalidRatio indicates a wall removal ratio outside [0,1].
	ErrInvalidRatio = errors.New("maze: wall removal ratio must be within [0,1]")
)

// Position addresses a cell: Row grows downward, Col grows rightward.
type Position struct {
	Row int
	Col int
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	delta := deltas[d]
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction names one side of a cell.
type Direction uint8

// Directions, clockwise from north.
const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every Direction in declaration order.
var Directions = [4]Direction{North, East, South, West}

var deltas = [4]Position{
	North: {Row: -1},
	East:  {Col: 1},
	South: {Row: 1},
	West:  {Col: -1},
}

// Opposite returns the direction facing d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Walls is a set of present walls, one bit per Direction.
type Walls uint8

// AllWalls has every wall present.
const AllWalls Walls = 1<<North | 1<<East | 1<<South | 1<<West

// Has reports whether the wall on side d is present.
func (w Walls) Has(d Direction) bool { return w&(1<<d) != 0 }

// With returns w with the wall on side d present.
func (w Walls) With(d Direction) Walls { return w | 1<<d }

// Without returns w with the wall on side d open.
func (w Walls) Without(d Direction) Walls { return w &^ (1 << d) }

// Role classifies a cell by where it sits against the grid bounds.
type Role uint8

// Roles, clockwise from the top-left corner.
const (
	TopLeft Role = iota
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
	Interior
)

var roleNames = [...]string{
	TopLeft:     "top-left",
	Top:         "top",
	TopRight:    "top-right",
	Right:       "right",
	BottomRight: "bottom-right",
	Bottom:      "bottom",
	BottomLeft:  "bottom-left",
	Left:        "left",
	Interior:    "interior",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// RoleOf classifies p in a rows×cols grid. Corners win over edges; on a
// single row or column the first matching class applies.
func RoleOf(p Position, rows, cols int) Role {
	lastRow, lastCol := rows-1, cols-1
	switch {
	case p.Row == 0 && p.Col == 0:
		return TopLeft
	case p.Row == 0 && p.Col < lastCol:
		return Top
	case p.Row == 0:
		return TopRight
	case p.Row < lastRow && p.Col == lastCol:
		return Right
	case p.Row == lastRow && p.Col == lastCol:
		return BottomRight
	case p.Row == lastRow && p.Col > 0:
		return Bottom
	case p.Row == lastRow:
		return BottomLeft
	case p.Col == 0:
		return Left
	}
	return Interior
}

// carveOrder is the order in which each role offers its neighbors to the
// carve. Directions that leave the grid are filtered out at use.
var carveOrder = [...][]Direction{
	TopLeft:     {East, South},
	Top:         {East, South, West},
	TopRight:    {West, South},
	Right:       {South, West, North},
	BottomRight: {West, North},
	Bottom:      {West, North, East},
	BottomLeft:  {North, East},
	Left:        {South, East, North},
	Interior:    {South, West, North, East},
}

// Solution is the cheapest route from start to end.
type Solution struct {
	// Path lists the cells from start to end inclusive; empty if the end is
	// unreachable.
	Path []Position

	// Cost is the sum of passage weights along Path; +Inf if unreachable.
	Cost float64
}

// Contains reports whether p lies on the path.
func (s *Solution) Contains(p Position) bool {
	for _, q := range s.Path {
		if q == p {
			return true
		}
	}
	return false
}
