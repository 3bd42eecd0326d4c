package chain

import (
	"fmt"

	"github.com/katalvlaran/aoctools/core"
)

// ErrMergeType indicates WithMerge was given a function for a different
// weight type than the graph being reduced.
var ErrMergeType = fmt.Errorf("%w: chain: merge function does not match the graph weight type", core.ErrPreconditionViolated)

// Reduce collapses every degree-2 node of g that keep does not protect into
// a direct edge between its two neighbors, weighted by the sum of the two
// edges it replaces. A nil keep protects nothing.
//
// It returns the payloads of the removed nodes, in the order they were
// collapsed.
func Reduce[ID comparable, N any, E core.Weight](g *core.Graph[ID, N, E], keep func(ID) bool, opts ...Option) []N {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	merge := Shortest[E]
	if cfg.Merge != nil {
		fn, ok := cfg.Merge.(func(existing, merged E) E)
		if !ok {
			panic(fmt.Errorf("%w: got %T", ErrMergeType, cfg.Merge))
		}
		merge = fn
	}

	var candidates []ID
	for id := range g.Nodes() {
		if g.Degree(id) != 2 || g.HasLoop(id) {
			continue
		}
		if keep != nil && keep(id) {
			continue
		}
		candidates = append(candidates, id)
	}

	removed := make([]N, 0, len(candidates))
	for _, id := range candidates {
		if g.Degree(id) != 2 {
			continue
		}
		data, edges, _ := g.RemoveNode(id)
		if len(edges) != 2 {
			panic(fmt.Errorf("%w: chain: node %v lost %d edges, want 2", core.ErrInvariantViolated, id, len(edges)))
		}
		a, b := edges[0].Pair.Other(id), edges[1].Pair.Other(id)
		w := edges[0].Data + edges[1].Data
		if old, ok := g.GetEdge(a, b); ok {
			w = merge(old, w)
		}
		g.InsertEdge(a, b, w)
		removed = append(removed, data)
	}

	cfg.Logger.Debug().
		Int("candidates", len(candidates)).
		Int("collapsed", len(removed)).
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Msg("chain reduction pass")

	return removed
}
