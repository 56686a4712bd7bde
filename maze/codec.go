package maze

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Magic opens every maze encoding.
var Magic = [4]byte{'M', 'A', 'Z', 'E'}

const headerLen = len(Magic) + 2

// wallCodes maps a Walls set to its nibble in the binary format.
// The nibble layout is bit0 east, bit1 north, bit2 west, bit3 south.
var wallCodes = [16]byte{
	0:                                    0b0000,
	Walls(1 << North):                    0b0010,
	Walls(1 << East):                     0b0001,
	Walls(1<<North | 1<<East):            0b0011,
	Walls(1 << South):                    0b1000,
	Walls(1<<North | 1<<South):           0b1010,
	Walls(1<<East | 1<<South):            0b1001,
	Walls(1<<North | 1<<East | 1<<South): 0b1011,
	Walls(1 << West):                     0b0100,
	Walls(1<<North | 1<<West):            0b0110,
	Walls(1<<East | 1<<West):             0b0101,
	Walls(1<<North | 1<<East | 1<<West):  0b0111,
	Walls(1<<South | 1<<West):            0b1100,
	Walls(1<<North | 1<<South | 1<<West): 0b1110,
	Walls(1<<East | 1<<South | 1<<West):  0b1101,
	AllWalls:                             0b1111,
}

// wallSets is the inverse of wallCodes.
var wallSets = invertWallCodes()

func invertWallCodes() [16]Walls {
	var inv [16]Walls
	seen := [16]bool{}
	for w, code := range wallCodes {
		if code > 0x0F || seen[code] {
			panic(fmt.Sprintf("maze: wall code table is not a permutation at %04b", w))
		}
		seen[code] = true
		inv[code] = Walls(w)
	}
	return inv
}

// PackCell encodes a score in [0,16) and a wall set into one byte.
// Score bits above the low nibble are dropped.
func PackCell(score int, w Walls) byte {
	return byte(score&0x0F)<<4 | wallCodes[w&AllWalls]
}

// UnpackCell is the inverse of PackCell.
func UnpackCell(b byte) (score int, w Walls) {
	return int(b >> 4), wallSets[b&0x0F]
}

// MarshalBinary returns the binary encoding of m.
func (m *Maze) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, headerLen+len(m.cells))
	out = append(out, Magic[:]...)
	out = append(out, byte(m.rows), byte(m.cols))
	for i := range m.cells {
		out = append(out, PackCell(m.cells[i].Score, m.cells[i].Walls))
	}
	return out, nil
}

// Encode writes the binary encoding of m to w.
func (m *Maze) Encode(w io.Writer) error {
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("maze: write encoding: %w", err)
	}
	return nil
}

// Decode reads one maze encoding from r. Bytes after the last cell are left
// unread.
//
// Errors wrap ErrInvalidFormat: magic mismatch, missing dimension bytes, a
// zero dimension, fewer cell bytes than rows·cols, or a wall present on one
// side of a shared wall but not the other. I/O errors other than EOF are
// returned as is.
func Decode(r io.Reader) (*Maze, error) {
	return decode(r, nil)
}

// DecodeWithLogger is Decode with diagnostics routed to log.
func DecodeWithLogger(r io.Reader, log *slog.Logger) (*Maze, error) {
	return decode(r, log)
}

// Parse decodes data, which must hold exactly one encoding.
func Parse(data []byte) (*Maze, error) {
	rd := bytes.NewReader(data)
	m, err := decode(rd, nil)
	if err != nil {
		return nil, err
	}
	if rd.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidFormat, rd.Len())
	}
	return m, nil
}

// UnmarshalBinary replaces m with the maze encoded in data.
func (m *Maze) UnmarshalBinary(data []byte) error {
	decoded, err := Parse(data)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

func decode(r io.Reader, log *slog.Logger) (*Maze, error) {
	var magic [len(Magic)]byte
	if err := readFull(r, magic[:], "magic"); err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: bad magic % x", ErrInvalidFormat, magic[:])
	}

	var dims [2]byte
	if err := readFull(r, dims[:], "dimensions"); err != nil {
		return nil, err
	}
	m, err := newMaze(int(dims[0]), int(dims[1]), log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	body := make([]byte, len(m.cells))
	if err := readFull(r, body, "cells"); err != nil {
		return nil, err
	}
	for i, b := range body {
		m.cells[i].Score, m.cells[i].Walls = UnpackCell(b)
	}
	if err := m.checkSymmetry(); err != nil {
		return nil, err
	}

	m.inferEndpoints()
	if err := m.deriveGraph(); err != nil {
		return nil, err
	}
	return m, nil
}

// readFull fills buf or reports which section was cut short.
func readFull(r io.Reader, buf []byte, section string) error {
	n, err := io.ReadFull(r, buf)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: truncated %s: got %d of %d bytes", ErrInvalidFormat, section, n, len(buf))
	default:
		return fmt.Errorf("maze: read %s: %w", section, err)
	}
}

// checkSymmetry rejects grids where two neighbors disagree about the wall
// between them.
func (m *Maze) checkSymmetry() error {
	for i := range m.cells {
		c := &m.cells[i]
		for _, d := range [2]Direction{East, South} {
			q, ok := m.neighbor(c.Position, d)
			if !ok {
				continue
			}
			if c.HasWall(d) != m.at(q).HasWall(d.Opposite()) {
				return fmt.Errorf("%w: %s wall of %v disagrees with %v", ErrInvalidFormat, d, c.Position, q)
			}
		}
	}
	return nil
}

// inferEndpoints recovers start and end from boundary openings. Candidates
// are collected in row-major order; a cell on both boundaries may count
// twice. Anything but two candidates leaves the maze without endpoints.
func (m *Maze) inferEndpoints() {
	var candidates []Position
	for i := range m.cells {
		c := &m.cells[i]
		if c.Col == 0 && !c.HasWall(West) {
			candidates = append(candidates, c.Position)
		}
		if c.Col == m.cols-1 && !c.HasWall(East) {
			candidates = append(candidates, c.Position)
		}
	}
	if len(candidates) != 2 {
		m.log.Debug("maze endpoints not recovered", "candidates", len(candidates))
		return
	}
	m.markEndpoints(candidates[0], candidates[1])
}
