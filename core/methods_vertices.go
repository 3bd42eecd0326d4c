// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and the removed-edge slices follow map iteration order; callers
//     that need a stable order sort the result themselves.
//
// Failure model:
//   - Operations that require a node to exist panic with ErrPreconditionViolated.
//   - Lookups that may legitimately miss report ok == false.
package core

import "iter"

// InsertOrUpdateNode stores data as the payload of id.
//
// Behavior highlights:
//   - Idempotent upsert: an existing node keeps all of its edges.
//   - A new node starts with no edges.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[ID, N, E]) InsertOrUpdateNode(id ID, data N) {
	if n, ok := g.nodes[id]; ok {
		n.data = data
		return
	}
	g.nodes[id] = &node[ID, N]{data: data, neighbors: make(map[ID]edgeHandle)}
}

// InsertNode stores data as the payload of id and severs every edge the node
// had, leaving it with a clean slate.
//
// Returns:
//   - old:     previous payload (zero value when the node is new).
//   - removed: every severed edge with its data; a self-loop appears once.
//   - ok:      false if the node did not previously exist.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph[ID, N, E]) InsertNode(id ID, data N) (old N, removed []Edge[ID, E], ok bool) {
	n, exists := g.nodes[id]
	if !exists {
		g.nodes[id] = &node[ID, N]{data: data, neighbors: make(map[ID]edgeHandle)}
		return old, nil, false
	}
	removed = g.sever(id, n)
	old, n.data = n.data, data

	return old, removed, true
}

// RemoveNode deletes id and every edge incident to it.
//
// Returns:
//   - data:    payload of the removed node.
//   - removed: every severed edge; a node with k neighbor entries yields exactly k edges.
//   - ok:      false if the node did not exist (nothing is changed).
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph[ID, N, E]) RemoveNode(id ID) (data N, removed []Edge[ID, E], ok bool) {
	n, exists := g.nodes[id]
	if !exists {
		return data, nil, false
	}
	removed = g.sever(id, n)
	delete(g.nodes, id)

	return n.data, removed, true
}

// UpdateNodeData replaces the payload of id without touching its edges and
// returns the previous payload. It panics if id does not exist.
func (g *Graph[ID, N, E]) UpdateNodeData(id ID, data N) N {
	n := g.mustNode("UpdateNodeData", id)
	old := n.data
	n.data = data

	return old
}

// HasNode reports whether id is in the graph.
func (g *Graph[ID, N, E]) HasNode(id ID) bool {
	_, ok := g.nodes[id]

	return ok
}

// NodeData returns the payload of id, or ok == false if it does not exist.
func (g *Graph[ID, N, E]) NodeData(id ID) (data N, ok bool) {
	n, exists := g.nodes[id]
	if !exists {
		return data, false
	}

	return n.data, true
}

// Nodes enumerates every node ID with its payload.
// The graph must not be mutated while the sequence is being consumed.
func (g *Graph[ID, N, E]) Nodes() iter.Seq2[ID, N] {
	return func(yield func(ID, N) bool) {
		for id, n := range g.nodes {
			if !yield(id, n.data) {
				return
			}
		}
	}
}

// sever removes every edge incident to id (whose node record is n) from the
// arena and from the neighbors' maps, and returns the removed edges.
func (g *Graph[ID, N, E]) sever(id ID, n *node[ID, N]) []Edge[ID, E] {
	if len(n.neighbors) == 0 {
		return nil
	}
	removed := make([]Edge[ID, E], 0, len(n.neighbors))
	for nb, h := range n.neighbors {
		rec := g.mustRecord(h, id, nb)
		if nb != id {
			other, ok := g.nodes[nb]
			if !ok {
				panic(invariantf("edge %v-%v points at missing node %v", id, nb, nb))
			}
			if back, ok := other.neighbors[id]; !ok || back != h {
				panic(invariantf("edge %v-%v is not mirrored by %v", id, nb, nb))
			}
			delete(other.neighbors, id)
		}
		delete(g.edges, h)
		removed = append(removed, Edge[ID, E]{Pair: rec.pair, Data: rec.data})
	}
	clear(n.neighbors)

	return removed
}
