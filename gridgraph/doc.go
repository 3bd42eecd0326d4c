// Package gridgraph treats a 2D grid of cells as a graph.
//
// What:
//
//   - Grid[T] wraps a rectangular row-major grid; Pos and Dir address it.
//   - ParseRunes turns a text map into a Grid[rune].
//   - ToGraph converts passable cells into a *core.Graph[Pos, T, int] with
//     unit edges, ready for chain.Reduce and dijkstra.ShortestPath.
//   - ConnectedComponents groups passable cells into regions.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ToGraph:             O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
