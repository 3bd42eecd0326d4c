// Package gridgraph defines positions, directions, connectivity and the
// generic Grid container of the gridgraph subpackage.
package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = []Pos{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Pos{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor deltas for c, clockwise from north.
// The slice is shared; do not modify it.
func (c Connectivity) Offsets() []Pos {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}

// Pos is a cell coordinate; X grows to the right and Y grows downward.
type Pos struct {
	X, Y int
}

// Add returns p translated by d.
func (p Pos) Add(d Pos) Pos { return Pos{p.X + d.X, p.Y + d.Y} }

// Step returns the neighbor of p in direction d.
func (p Pos) Step(d Dir) Pos { return p.Add(d.Delta()) }

// Neighbors returns the positions adjacent to p under c, without bounds checks.
func (p Pos) Neighbors(c Connectivity) []Pos {
	offs := c.Offsets()
	out := make([]Pos, len(offs))
	for i, d := range offs {
		out[i] = p.Add(d)
	}

	return out
}

// Manhattan returns the L1 distance between p and q.
func (p Pos) Manhattan(q Pos) int { return abs(p.X-q.X) + abs(p.Y-q.Y) }

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Dir is one of the four orthogonal headings.
type Dir int

const (
	Up Dir = iota
	Right
	Down
	Left
)

// Delta returns the unit step for d.
func (d Dir) Delta() Pos { return offsets4[d&3] }

// TurnRight returns the heading 90° clockwise of d.
func (d Dir) TurnRight() Dir { return (d + 1) & 3 }

// TurnLeft returns the heading 90° counter-clockwise of d.
func (d Dir) TurnLeft() Dir { return (d + 3) & 3 }

// Reverse returns the opposite heading.
func (d Dir) Reverse() Dir { return (d + 2) & 3 }

func (d Dir) String() string {
	switch d & 3 {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "left"
	}
}

// Grid is a rectangular, row-major 2D grid of cells.
// Width and Height are fixed at construction.
type Grid[T any] struct {
	Width, Height int
	cells         []T
}
