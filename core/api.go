// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructor, size getters and the panic helpers shared by the store.
// Policy:
//   - No mutation here apart from construction.
//   - Every panic raised by this package wraps ErrPreconditionViolated or
//     ErrInvariantViolated so recovering callers can use errors.Is.

package core

import "fmt"

// New returns an empty Graph.
//
// Complexity:
//   - Time O(1), Space O(1).
func New[ID comparable, N any, E any]() *Graph[ID, N, E] {
	return &Graph[ID, N, E]{
		nodes: make(map[ID]*node[ID, N]),
		edges: make(map[edgeHandle]*edgeRecord[ID, E]),
	}
}

// NodeCount returns the number of nodes.
func (g *Graph[ID, N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges; a self-loop counts once.
func (g *Graph[ID, N, E]) EdgeCount() int { return len(g.edges) }

// nextHandle allocates a fresh, never-reused arena handle.
func (g *Graph[ID, N, E]) nextHandle() edgeHandle {
	g.nextEdgeHandle++

	return g.nextEdgeHandle
}

// mustNode returns the node for id or panics with a precondition violation.
// op names the public operation for the panic message.
func (g *Graph[ID, N, E]) mustNode(op string, id ID) *node[ID, N] {
	n, ok := g.nodes[id]
	if !ok {
		panic(preconditionf("%s: node %v does not exist", op, id))
	}

	return n
}

// mustRecord resolves a handle or panics with an invariant violation.
func (g *Graph[ID, N, E]) mustRecord(h edgeHandle, from, to ID) *edgeRecord[ID, E] {
	rec, ok := g.edges[h]
	if !ok {
		panic(invariantf("edge %v-%v references missing handle %d", from, to, h))
	}

	return rec
}

func preconditionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPreconditionViolated, fmt.Sprintf(format, args...))
}

func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolated, fmt.Sprintf(format, args...))
}
