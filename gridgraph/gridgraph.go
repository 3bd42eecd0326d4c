// Package gridgraph provides utilities to treat a rectangular 2D grid of
// cells as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Parsing text maps into a Grid[rune]
//   - Conversion to a *core.Graph keyed by Pos
//   - Identification of connected components of passable cells
package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/aoctools/core"
)

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// values[y][x]. It copies the input.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T any](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]T, 0, w*h)
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{Width: w, Height: h, cells: cells}, nil
}

// Filled returns a w×h grid with every cell set to v.
func Filled[T any](w, h int, v T) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]T, w*h)
	for i := range cells {
		cells[i] = v
	}

	return &Grid[T]{Width: w, Height: h, cells: cells}, nil
}

// ParseRunes reads a text map, one row per line. Trailing blank lines are
// dropped and short lines are padded with spaces, so maps whose lines lost
// their trailing whitespace still parse as rectangles.
func ParseRunes(r io.Reader) (*Grid[rune], error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading map: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	if len(lines) == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}
	g, _ := Filled(w, len(lines), ' ')
	for y, l := range lines {
		x := 0
		for _, c := range l {
			g.cells[g.index(x, y)] = c
			x++
		}
	}

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at p. It panics if p is out of bounds.
func (g *Grid[T]) At(p Pos) T {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("gridgraph: %v outside %dx%d grid", p, g.Width, g.Height))
	}

	return g.cells[g.index(p.X, p.Y)]
}

// AtOk returns the cell at p, or ok == false if p is out of bounds.
func (g *Grid[T]) AtOk(p Pos) (v T, ok bool) {
	if !g.InBounds(p) {
		return v, false
	}

	return g.cells[g.index(p.X, p.Y)], true
}

// Set stores v at p. It panics if p is out of bounds.
func (g *Grid[T]) Set(p Pos, v T) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("gridgraph: %v outside %dx%d grid", p, g.Width, g.Height))
	}
	g.cells[g.index(p.X, p.Y)] = v
}

// All enumerates cells in row-major order.
func (g *Grid[T]) All() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		for i, v := range g.cells {
			if !yield(g.Coordinate(i), v) {
				return
			}
		}
	}
}

// Find returns the first position, in row-major order, whose cell satisfies match.
func (g *Grid[T]) Find(match func(T) bool) (Pos, bool) {
	for p, v := range g.All() {
		if match(v) {
			return p, true
		}
	}

	return Pos{}, false
}

// Neighbors returns the in-bounds neighbors of p under c.
func (g *Grid[T]) Neighbors(p Pos, c Connectivity) []Pos {
	all := p.Neighbors(c)
	out := all[:0]
	for _, q := range all {
		if g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// orAll returns passable, or a predicate accepting every cell when it is nil.
func orAll[T any](passable func(T) bool) func(T) bool {
	if passable == nil {
		return func(T) bool { return true }
	}

	return passable
}

// ToGraph converts the grid into an undirected *core.Graph. Every cell for
// which passable reports true (every cell when passable is nil) becomes a
// node keyed by its Pos with the cell value as payload, and edges of weight 1
// connect passable neighbors under c.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (g *Grid[T]) ToGraph(passable func(T) bool, c Connectivity) *core.Graph[Pos, T, int] {
	open := orAll(passable)
	out := core.New[Pos, T, int]()
	for p, v := range g.All() {
		if open(v) {
			out.InsertOrUpdateNode(p, v)
		}
	}
	for p, v := range g.All() {
		if !open(v) {
			continue
		}
		for _, q := range g.Neighbors(p, c) {
			if out.HasNode(q) {
				out.InsertEdge(p, q, 1)
			}
		}
	}

	return out
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid[T]) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to a position.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Pos {
	return Pos{idx % g.Width, idx / g.Width}
}

// String renders the grid row by row. Rune cells are written as characters,
// other cells in fmt's default format.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch v := any(g.cells[g.index(x, y)]).(type) {
			case rune:
				sb.WriteRune(v)
			default:
				fmt.Fprint(&sb, v)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
