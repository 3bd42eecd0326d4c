package gridgraph

// ConnectedComponents finds all contiguous regions of cells for which
// passable reports true (every cell when passable is nil), according to
// connectivity c.
// Returns a slice of components; each component lists its positions in BFS
// order from the component's first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) ConnectedComponents(passable func(T) bool, c Connectivity) [][]Pos {
	passable = orAll(passable)
	seen := make([]bool, len(g.cells))
	var comps [][]Pos

	for i0, v := range g.cells {
		if seen[i0] || !passable(v) {
			continue
		}
		// BFS to collect component
		queue := []Pos{g.Coordinate(i0)}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, q := range g.Neighbors(queue[qi], c) {
				j := g.index(q.X, q.Y)
				if seen[j] || !passable(g.cells[j]) {
					continue
				}
				seen[j] = true
				queue = append(queue, q)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
