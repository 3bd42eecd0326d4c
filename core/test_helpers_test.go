// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests on the standard testing package; algorithm packages use testify.

package core_test

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/kr/pretty"

	"github.com/katalvlaran/aoctools/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeE = "E"
	NodeX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
	Weight7 = 7
)

// strGraph is the graph shape used by most tests: string IDs, string payloads,
// integer edge weights.
type strGraph = core.Graph[string, string, int]

// NewGraphWithNodes RETURNS a graph holding ids, each with payload "n"+id.
func NewGraphWithNodes(ids ...string) *strGraph {
	g := core.New[string, string, int]()
	for _, id := range ids {
		g.InsertOrUpdateNode(id, "n"+id)
	}

	return g
}

// MustValid FAILS the test if the graph invariants do not hold.
func MustValid(t *testing.T, g *strGraph, op string) {
	t.Helper()
	if err := g.Validate(); err != nil {
		t.Fatalf("%s: Validate() = %v\nincidence: %s", op, err, pretty.Sprint(incidence(g)))
	}
}

// MustPanicIs FAILS the test unless fn panics with an error wrapping target.
func MustPanicIs(t *testing.T, target error, op string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic wrapping %v, got none", op, target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("%s: panic = %v; want error wrapping %v", op, r, target)
		}
	}()
	fn()
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()
	if !cond {
		t.Fatalf("%s: expected true", op)
	}
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()
	if cond {
		t.Fatalf("%s: expected false", op)
	}
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d; want %d", op, got, want)
	}
}

// MustEqualString FAILS the test if got != want.
func MustEqualString(t *testing.T, got, want string, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %q; want %q", op, got, want)
	}
}

// incidence maps every node to its IncidentMap, for failure messages. On a
// corrupted graph it stops at the first panicking node.
func incidence(g *strGraph) (out map[string]map[string]int) {
	out = make(map[string]map[string]int, g.NodeCount())
	defer func() { _ = recover() }()
	for id := range g.Nodes() {
		out[id] = IncidentMap(g, id)
	}

	return out
}

// IncidentMap COLLECTS EdgesFor(id) into neighbor → weight.
func IncidentMap(g *strGraph, id string) map[string]int {
	out := make(map[string]int)
	for nb, w := range g.EdgesFor(id) {
		out[nb] = *w
	}

	return out
}

// NodeIDs RETURNS the sorted node IDs of g.
func NodeIDs(g *strGraph) []string {
	var ids []string
	for id := range g.Nodes() {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// PairKeys RENDERS removed edges as sorted "a-b=w" strings with a <= b.
func PairKeys(edges []core.Edge[string, int]) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		a, b := e.Pair.A, e.Pair.B
		if b < a {
			a, b = b, a
		}
		out = append(out, fmt.Sprintf("%s-%s=%d", a, b, e.Data))
	}
	sort.Strings(out)

	return out
}

// MustSameStrings FAILS the test if the two sorted slices differ.
func MustSameStrings(t *testing.T, got, want []string, op string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v; want %v", op, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v; want %v", op, got, want)
		}
	}
}
