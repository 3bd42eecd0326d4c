// Package dijkstra answers single-pair shortest-path queries over a
// core.Graph with numeric edge payloads.
//
// Overview:
//
//   - ShortestPath(g, start, target) returns the total weight and the node
//     sequence start→target, or ok == false when target is unreachable.
//   - Pending nodes are grouped in distance buckets; the smallest bucket is
//     extracted whole, so nodes at equal distance are finalized together.
//   - The search stops as soon as the target is finalized.
//
// Distances:
//
//	Min < Val(e) < Infinity
//
// The start node is seeded with Min, every other node with Infinity. This
// avoids needing a zero of the weight type and orders the start ahead of a
// zero-weight neighbor.
//
// Paths:
//
// The predecessor of a node is the neighbor that last strictly improved its
// distance. Several shortest routes may exist; which one is returned then
// depends on enumeration order. WithTieBreak(less) makes the choice
// canonical.
//
// Error handling:
//
//   - Unreachable target: ok == false.
//   - Nil graph, unknown start or target, mismatched WithTieBreak type: panic
//     wrapping core.ErrPreconditionViolated.
//   - Broken predecessor chain: panic wrapping core.ErrInvariantViolated.
//
// Negative weights are not detected; results with negative edges may be
// incorrect.
//
// Thread safety:
//
//   - ShortestPath only reads g; do not mutate g concurrently.
package dijkstra
