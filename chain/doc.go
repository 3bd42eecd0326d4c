// Package chain simplifies a core.Graph by collapsing chains of degree-2
// nodes into single weighted edges.
//
// Grid-derived graphs are mostly corridors: long runs of cells with exactly
// two open neighbors. Replacing every such interior node u (neighbors a, b)
// by a direct edge a–b of weight w(a,u)+w(u,b) keeps all path lengths
// between the surviving nodes and shrinks the graph handed to a shortest-path
// query by orders of magnitude.
//
// Behavior:
//
//   - Candidates are collected in one scan: degree exactly 2, no self-loop,
//     and not protected by the caller's keep predicate.
//   - Candidates are collapsed in scan order. A candidate whose degree is no
//     longer 2 when its turn comes (two of its edges were merged by an earlier
//     collapse) is skipped.
//   - When the two neighbors are already connected, the stored weight is
//     chosen by the merge policy: Shortest (default) keeps the lighter edge,
//     Overwrite replaces it with the merged one.
//   - One pass only: nodes that become degree-2 during the pass are not
//     revisited. Call Reduce again to continue simplifying.
//
// Complexity:
//
//   - Time O(V + C) where C is the number of collapsed nodes, Space O(V).
package chain
