package gridgraph_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/aoctools/gridgraph"
)

func land(v int) bool { return v >= 1 }

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = land, 0 = water):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	g, err := gridgraph.New([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	comps := g.ConnectedComponents(land, gridgraph.Conn4)
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 checks that corner-touching cells merge
// under Conn8 but not under Conn4.
//
// Grid:
//
//	1 0 0
//	0 1 0
//	0 0 1
func TestConnectedComponents_Diagonal8(t *testing.T) {
	g, err := gridgraph.New([][]int{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := len(g.ConnectedComponents(land, gridgraph.Conn4)); got != 3 {
		t.Errorf("Conn4 components = %d; want 3", got)
	}
	comps := g.ConnectedComponents(land, gridgraph.Conn8)
	if len(comps) != 1 || len(comps[0]) != 3 {
		t.Errorf("Conn8 components = %v; want one component of 3", comps)
	}
}

// TestConnectedComponents_NilPassable treats every cell as open, like ToGraph.
func TestConnectedComponents_NilPassable(t *testing.T) {
	g, err := gridgraph.New([][]int{
		{0, 1, 0},
		{0, 0, 2},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	comps := g.ConnectedComponents(nil, gridgraph.Conn4)
	if len(comps) != 1 || len(comps[0]) != 6 {
		t.Fatalf("ConnectedComponents(nil) = %v; want one component of 6 cells", comps)
	}
	if n := g.ToGraph(nil, gridgraph.Conn4).NodeCount(); n != len(comps[0]) {
		t.Errorf("ToGraph(nil) has %d nodes; components cover %d", n, len(comps[0]))
	}
}
