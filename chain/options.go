package chain

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/aoctools/core"
)

// Options configures Reduce.
//
// Merge  – optional func(existing, merged E) E deciding the weight stored
//
//	when the two neighbors of a collapsed node are already connected. Nil
//	keeps the shorter of the two, which preserves shortest distances.
//
// Logger – receives a debug summary of the pass.
type Options struct {
	Merge  any
	Logger zerolog.Logger
}

// Option represents a functional option for configuring Reduce.
type Option func(*Options)

// WithMerge sets the policy for an existing direct edge between the two
// neighbors of a collapsed node. See Shortest and Overwrite.
func WithMerge[E core.Weight](merge func(existing, merged E) E) Option {
	return func(o *Options) {
		o.Merge = merge
	}
}

// WithLogger routes the pass summary to l. The default discards it.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with the Shortest merge and a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// Shortest keeps the lighter of the existing and the merged edge.
func Shortest[E core.Weight](existing, merged E) E { return min(existing, merged) }

// Overwrite always replaces the existing edge with the merged one. Shortest
// distances are then only preserved when the graph has no parallel corridors.
func Overwrite[E core.Weight](_, merged E) E { return merged }
