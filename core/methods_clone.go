// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeHandle and every existing handle, so the
//     clone's arena layout matches the source exactly.

package core

// Clone returns a copy of the graph with its own node, neighbor and arena
// maps. Node and edge payloads are copied by assignment (shallow for
// reference types).
//
// Complexity: O(V + E)
func (g *Graph[ID, N, E]) Clone() *Graph[ID, N, E] {
	clone := &Graph[ID, N, E]{
		nodes:          make(map[ID]*node[ID, N], len(g.nodes)),
		edges:          make(map[edgeHandle]*edgeRecord[ID, E], len(g.edges)),
		nextEdgeHandle: g.nextEdgeHandle,
	}
	for id, n := range g.nodes {
		nbs := make(map[ID]edgeHandle, len(n.neighbors))
		for nb, h := range n.neighbors {
			nbs[nb] = h
		}
		clone.nodes[id] = &node[ID, N]{data: n.data, neighbors: nbs}
	}
	for h, rec := range g.edges {
		clone.edges[h] = &edgeRecord[ID, E]{pair: rec.pair, data: rec.data}
	}

	return clone
}
