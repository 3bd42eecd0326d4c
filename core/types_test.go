// SPDX-License-Identifier: MIT
// Package core_test verifies the Pair value helpers.

package core_test

import (
	"testing"

	"github.com/katalvlaran/aoctools/core"
)

// TestPair VERIFIES Other/Has/IsLoop/Same on ordinary and loop pairs.
func TestPair(t *testing.T) {
	p := core.Pair[string]{A: NodeA, B: NodeB}
	MustEqualString(t, p.Other(NodeA), NodeB, "Other(A)")
	MustEqualString(t, p.Other(NodeB), NodeA, "Other(B)")
	MustTrue(t, p.Has(NodeA), "Has(A)")
	MustFalse(t, p.Has(NodeC), "Has(C)")
	MustFalse(t, p.IsLoop(), "IsLoop on A-B")
	MustTrue(t, p.Same(core.Pair[string]{A: NodeB, B: NodeA}), "Same(B-A)")
	MustFalse(t, p.Same(core.Pair[string]{A: NodeA, B: NodeC}), "Same(A-C)")

	loop := core.Pair[string]{A: NodeA, B: NodeA}
	MustTrue(t, loop.IsLoop(), "IsLoop on A-A")
	MustEqualString(t, loop.Other(NodeA), NodeA, "Other on loop")

	MustPanicIs(t, core.ErrPreconditionViolated, "Other(C)", func() {
		_ = p.Other(NodeC)
	})
}
