// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/RemoveEdge/GetEdge/GetEdgeMut/HasEdge/Edges.
//
// Identity:
//   - An edge is identified by its unordered endpoint pair; (a,b) and (b,a)
//     address the same arena slot.
//   - Arena handles are monotonic and never reused.
package core

import "iter"

// InsertEdge stores data on the edge between a and b, creating it if needed.
// When a == b the edge is a self-loop.
//
// Behavior highlights:
//   - Idempotent upsert keyed by the unordered pair.
//   - An existing edge keeps its arena slot; only the payload changes.
//
// Returns:
//   - old: previous payload (zero value for a new edge).
//   - ok:  true if an edge already existed.
//
// Panics with ErrPreconditionViolated if either endpoint does not exist.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[ID, N, E]) InsertEdge(a, b ID, data E) (old E, ok bool) {
	na := g.mustNode("InsertEdge", a)
	nb := g.mustNode("InsertEdge", b)

	if h, exists := g.handle(a, b); exists {
		rec := g.mustRecord(h, a, b)
		old, rec.data = rec.data, data
		return old, true
	}

	h := g.nextHandle()
	g.edges[h] = &edgeRecord[ID, E]{pair: Pair[ID]{A: a, B: b}, data: data}
	na.neighbors[b] = h
	nb.neighbors[a] = h // same map write when a == b

	return old, false
}

// RemoveEdge deletes the edge between a and b and returns its payload.
// It reports ok == false if there is no such edge (including when either
// endpoint is missing).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[ID, N, E]) RemoveEdge(a, b ID) (data E, ok bool) {
	h, exists := g.handle(a, b)
	if !exists {
		return data, false
	}
	rec := g.mustRecord(h, a, b)
	delete(g.nodes[a].neighbors, b)
	delete(g.nodes[b].neighbors, a)
	delete(g.edges, h)

	return rec.data, true
}

// GetEdge returns the payload of the edge between a and b.
func (g *Graph[ID, N, E]) GetEdge(a, b ID) (data E, ok bool) {
	h, exists := g.handle(a, b)
	if !exists {
		return data, false
	}

	return g.mustRecord(h, a, b).data, true
}

// GetEdgeMut returns a pointer to the stored payload of the edge between a
// and b, or nil if there is no such edge. Writes through the pointer are seen
// from both endpoints. The pointer is invalidated by removing the edge.
func (g *Graph[ID, N, E]) GetEdgeMut(a, b ID) *E {
	h, exists := g.handle(a, b)
	if !exists {
		return nil
	}

	return &g.mustRecord(h, a, b).data
}

// HasEdge reports whether a and b are connected.
func (g *Graph[ID, N, E]) HasEdge(a, b ID) bool {
	_, ok := g.handle(a, b)

	return ok
}

// Edges enumerates every edge exactly once (self-loops included).
// The graph must not be mutated while the sequence is being consumed.
func (g *Graph[ID, N, E]) Edges() iter.Seq[Edge[ID, E]] {
	return func(yield func(Edge[ID, E]) bool) {
		for _, rec := range g.edges {
			if !yield(Edge[ID, E]{Pair: rec.pair, Data: rec.data}) {
				return
			}
		}
	}
}

// handle looks up the arena handle for the pair (a,b), verifying that both
// endpoints agree on it.
func (g *Graph[ID, N, E]) handle(a, b ID) (edgeHandle, bool) {
	na, ok := g.nodes[a]
	if !ok {
		return 0, false
	}
	h, ok := na.neighbors[b]
	if !ok {
		return 0, false
	}
	if a == b {
		return h, true
	}
	nb, ok := g.nodes[b]
	if !ok {
		panic(invariantf("edge %v-%v points at missing node %v", a, b, b))
	}
	if back, ok := nb.neighbors[a]; !ok || back != h {
		panic(invariantf("edge %v-%v is not mirrored by %v", a, b, b))
	}

	return h, true
}
