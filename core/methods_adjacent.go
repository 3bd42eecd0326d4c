// File: methods_adjacent.go
// Role: Neighborhood queries: EdgesFor, Neighbors, Degree.
//
// Degree policy:
//   - Degree counts neighbor-map entries, so a self-loop contributes 1.
//     Chain reduction relies on this count.
package core

import "iter"

// EdgesFor enumerates the edges incident to id as (neighbor, payload) pairs.
// A self-loop is yielded once with neighbor == id. The payload pointer aliases
// the arena slot, as with GetEdgeMut.
//
// Panics with ErrPreconditionViolated if id does not exist. The panic is
// raised when EdgesFor is called, not when the sequence is consumed.
//
// The graph must not be mutated while the sequence is being consumed.
func (g *Graph[ID, N, E]) EdgesFor(id ID) iter.Seq2[ID, *E] {
	n := g.mustNode("EdgesFor", id)

	return func(yield func(ID, *E) bool) {
		for nb, h := range n.neighbors {
			if !yield(nb, &g.mustRecord(h, id, nb).data) {
				return
			}
		}
	}
}

// Neighbors returns the IDs adjacent to id, in no particular order.
// It panics if id does not exist.
func (g *Graph[ID, N, E]) Neighbors(id ID) []ID {
	n := g.mustNode("Neighbors", id)
	out := make([]ID, 0, len(n.neighbors))
	for nb := range n.neighbors {
		out = append(out, nb)
	}

	return out
}

// Degree returns the number of distinct neighbors of id (a self-loop counts
// once). It panics if id does not exist.
func (g *Graph[ID, N, E]) Degree(id ID) int {
	return len(g.mustNode("Degree", id).neighbors)
}

// HasLoop reports whether id carries a self-loop. Missing nodes report false.
func (g *Graph[ID, N, E]) HasLoop(id ID) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	_, loop := n.neighbors[id]

	return loop
}
