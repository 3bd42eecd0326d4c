// File: validate.go
// Role: Full structural consistency check of the node maps and edge arena.

package core

// Validate checks the store invariants and returns the first violation found,
// wrapped in ErrInvariantViolated, or nil.
//
// Checked:
//   - every neighbor entry resolves to an arena slot whose pair matches the
//     two endpoints;
//   - for distinct A, B the entries A→B and B→A hold the identical handle;
//   - every arena slot is referenced by both of its endpoints;
//   - no handle exceeds the allocation counter.
//
// Complexity: O(V + E)
func (g *Graph[ID, N, E]) Validate() error {
	refs := make(map[edgeHandle]int, len(g.edges))
	for id, n := range g.nodes {
		for nb, h := range n.neighbors {
			rec, ok := g.edges[h]
			if !ok {
				return invariantf("edge %v-%v references missing handle %d", id, nb, h)
			}
			if !rec.pair.Same(Pair[ID]{A: id, B: nb}) {
				return invariantf("handle %d stored under %v-%v belongs to %v", h, id, nb, rec.pair)
			}
			if h > g.nextEdgeHandle {
				return invariantf("handle %d exceeds allocation counter %d", h, g.nextEdgeHandle)
			}
			if nb != id {
				other, ok := g.nodes[nb]
				if !ok {
					return invariantf("edge %v-%v points at missing node %v", id, nb, nb)
				}
				if back, ok := other.neighbors[id]; !ok || back != h {
					return invariantf("edge %v-%v is not mirrored by %v", id, nb, nb)
				}
			}
			refs[h]++
		}
	}
	for h, rec := range g.edges {
		want := 2
		if rec.pair.IsLoop() {
			want = 1
		}
		if refs[h] != want {
			return invariantf("handle %d (%v) referenced %d times, want %d", h, rec.pair, refs[h], want)
		}
	}

	return nil
}
