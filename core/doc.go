// Package core provides a generic, in-memory, undirected labeled graph with
// self-loop support, used as the substrate for chain reduction and
// shortest-path queries.
//
// The Graph[ID, N, E] is parameterized by:
//
//   - ID: a comparable node identifier chosen by the caller (coordinate,
//     short string, enum, ...);
//   - N:  the node payload;
//   - E:  the edge payload (a numeric weight for the algorithm packages).
//
// Storage model:
//
//	nodes[id].neighbors[nb] = handle      // one entry per neighbor
//	edges[handle]           = {pair, data} // one slot per edge
//
// Both endpoints of an edge hold the same handle, and the payload lives in
// exactly one arena slot, so updating an edge from either side is seen from
// the other. A self-loop is a single neighbor entry keyed by the node itself.
// Handles are generated from a monotonic counter and never exposed.
//
// Core methods:
//
//	// Node lifecycle
//	InsertOrUpdateNode(id, data)                 // upsert, edges untouched
//	InsertNode(id, data) (old, removed, ok)      // replace payload, sever edges
//	RemoveNode(id) (data, removed, ok)           // delete, cascade edges
//	UpdateNodeData(id, data) old                 // panics if id is missing
//
//	// Edge lifecycle
//	InsertEdge(a, b, data) (old, ok)             // idempotent upsert; panics on missing endpoint
//	RemoveEdge(a, b) (data, ok)
//	GetEdge(a, b) (data, ok) / GetEdgeMut(a, b) *E
//
//	// Enumeration
//	Nodes() iter.Seq2[ID, N]
//	EdgesFor(id) iter.Seq2[ID, *E]               // panics if id is missing
//	Edges() iter.Seq[Edge[ID, E]]
//
// Error model:
//
// Calls that reference a node the caller should know exists are precondition
// violations and panic with an error wrapping ErrPreconditionViolated.
// Disagreement between neighbor maps and the arena panics with an error
// wrapping ErrInvariantViolated. Expected absence (no such edge, unknown node
// on a lookup) is reported through a boolean ok result.
//
// Concurrency:
//
// A Graph has a single owner for the duration of a computation and takes no
// locks. Synchronize externally if it must be shared.
package core
