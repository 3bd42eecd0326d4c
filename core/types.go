// Package core defines the central generic Graph type, its endpoint Pair and
// Edge values, and the sentinel errors carried by panics on misuse.
//
// The store keeps edge payloads in a single arena (edges) addressed by
// internally generated handles. Each node's neighbor map points into that
// arena, so the two endpoints of an edge always observe the same payload.
//
// Errors:
//
//	ErrPreconditionViolated - caller referenced a node that does not exist.
//	ErrInvariantViolated    - neighbor maps and the edge arena disagree.
package core

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors carried by panics raised from the store.
var (
	// ErrPreconditionViolated indicates the caller asserted existence of a node
	// (or edge endpoint) that is not in the graph.
	ErrPreconditionViolated = errors.New("core: precondition violated")

	// ErrInvariantViolated indicates internal bookkeeping disagreement between a
	// node's neighbor map and the central edge table.
	ErrInvariantViolated = errors.New("core: invariant violated")
)

// Weight is the constraint for edge payloads that algorithms add together
// (chain reduction, shortest path).
type Weight interface {
	constraints.Integer | constraints.Float
}

// Pair is the unordered pair of node IDs an edge connects.
// For a self-loop A == B.
type Pair[ID comparable] struct {
	A, B ID
}

// IsLoop reports whether the pair connects a node to itself.
func (p Pair[ID]) IsLoop() bool { return p.A == p.B }

// Has reports whether id is one of the endpoints.
func (p Pair[ID]) Has(id ID) bool { return p.A == id || p.B == id }

// Other returns the endpoint opposite to id. For a self-loop it returns id.
// It panics if id is not an endpoint.
func (p Pair[ID]) Other(id ID) ID {
	switch id {
	case p.A:
		return p.B
	case p.B:
		return p.A
	}
	panic(preconditionf("%v is not an endpoint of %v", id, p))
}

// Same reports whether p and q connect the same endpoints regardless of order.
func (p Pair[ID]) Same(q Pair[ID]) bool {
	return (p.A == q.A && p.B == q.B) || (p.A == q.B && p.B == q.A)
}

// Edge is an edge payload together with the endpoints it connects.
// It is how removed and enumerated edges are handed back to callers.
type Edge[ID comparable, E any] struct {
	Pair Pair[ID]
	Data E
}

// edgeHandle addresses the edge arena. Handles are never reused.
type edgeHandle uint64

// edgeRecord is one arena slot.
type edgeRecord[ID comparable, E any] struct {
	pair Pair[ID]
	data E
}

// node owns its payload and the handles of its incident edges, keyed by the
// neighbor's ID. A self-loop appears once, keyed by the node's own ID.
type node[ID comparable, N any] struct {
	data      N
	neighbors map[ID]edgeHandle
}

// Graph is an in-memory, undirected, labeled graph with self-loop support and
// at most one edge per unordered endpoint pair.
//
// ID identifies nodes, N is the node payload and E the edge payload.
// The zero value is not usable; construct with New.
//
// A Graph is owned by a single caller and is not safe for concurrent use.
type Graph[ID comparable, N any, E any] struct {
	nodes map[ID]*node[ID, N]

	// edges is the arena; every handle stored in a neighbor map resolves here.
	edges map[edgeHandle]*edgeRecord[ID, E]

	// nextEdgeHandle is the last handle handed out; handles start at 1.
	nextEdgeHandle edgeHandle
}
