// Package dijkstra defines the Distance ordering, configuration options and
// sentinel errors for the single-pair shortest-path search over core.Graph.
//
// Distance is a three-valued totally ordered type:
//
//	Min < Val(e) < Infinity     for every weight e
//	Min.Add(e)      = Val(e)
//	Val(a).Add(e)   = Val(a+e)
//	Infinity.Add(e) = Infinity
//
// Min seeds the start node so it is always processed first (even ahead of a
// zero-weight neighbor) without requiring a zero element of the weight type.
// Infinity marks nodes that have not been reached.
//
// Options:
//
//	– WithTieBreak: canonical predecessor choice among equal-length routes.
//	– WithLogger:   zerolog sink for a per-bucket debug trace.
package dijkstra

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/aoctools/core"
)

// Sentinel errors carried by panics raised from ShortestPath.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrTieBreakType indicates WithTieBreak was given a comparator for a
	// different ID type than the graph being searched.
	ErrTieBreakType = errors.New("dijkstra: tie-break comparator does not match the graph ID type")
)

// kind orders the three Distance variants.
type kind uint8

const (
	kindMin kind = iota
	kindVal
	kindInfinity
)

// Distance is a path length extended with the Min and Infinity sentinels.
// The zero value is Min.
type Distance[E core.Weight] struct {
	kind kind
	val  E
}

// Min returns the sentinel that sorts below every real distance.
func Min[E core.Weight]() Distance[E] { return Distance[E]{kind: kindMin} }

// Val returns the real distance e.
func Val[E core.Weight](e E) Distance[E] { return Distance[E]{kind: kindVal, val: e} }

// Infinity returns the sentinel that sorts above every real distance.
func Infinity[E core.Weight]() Distance[E] { return Distance[E]{kind: kindInfinity} }

// Add extends d by one edge of weight e.
func (d Distance[E]) Add(e E) Distance[E] {
	switch d.kind {
	case kindMin:
		return Val(e)
	case kindVal:
		return Val(d.val + e)
	default:
		return d
	}
}

// Compare returns -1, 0 or +1 as d sorts before, equal to, or after o.
func (d Distance[E]) Compare(o Distance[E]) int {
	if c := cmp.Compare(d.kind, o.kind); c != 0 {
		return c
	}
	if d.kind != kindVal {
		return 0
	}

	return cmp.Compare(d.val, o.val)
}

// Less reports whether d sorts strictly before o.
func (d Distance[E]) Less(o Distance[E]) bool { return d.Compare(o) < 0 }

// IsInfinite reports whether d is the Infinity sentinel.
func (d Distance[E]) IsInfinite() bool { return d.kind == kindInfinity }

// Value returns the numeric length of d. Min has length zero; Infinity
// reports ok == false.
func (d Distance[E]) Value() (e E, ok bool) {
	switch d.kind {
	case kindMin:
		return e, true
	case kindVal:
		return d.val, true
	default:
		return e, false
	}
}

// String renders d as "min", "inf" or the numeric value.
func (d Distance[E]) String() string {
	switch d.kind {
	case kindMin:
		return "min"
	case kindVal:
		return fmt.Sprint(d.val)
	default:
		return "inf"
	}
}

// Options configures ShortestPath.
//
// TieBreak – optional func(a, b ID) bool; when a relaxation reaches a node
//
//	with a length equal to its current best, the predecessor is switched to
//	the new one if TieBreak(new, current) reports true. Nil keeps the first
//	strict improvement.
//
// Logger   – receives a debug event per processed bucket.
type Options struct {
	TieBreak any
	Logger   zerolog.Logger
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithTieBreak makes the returned path canonical among equal-length routes:
// at every step the predecessor preferred by less wins. A typical choice is
// cmp.Less for ordered IDs.
func WithTieBreak[ID comparable](less func(a, b ID) bool) Option {
	return func(o *Options) {
		o.TieBreak = less
	}
}

// WithLogger routes the per-bucket trace to l. The default discards it.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with no tie-break and a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}
