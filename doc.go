// Package aoctools is a small toolkit for puzzle-style routing problems:
// build a graph from a grid or by hand, shrink it, and query it.
//
// What's inside?
//
//	• core      — generic undirected labeled graph with self-loops, arena-backed edges
//	• chain     — collapse degree-2 corridors into weighted edges
//	• dijkstra  — bucket-queue shortest path with Min/Val/Infinity distances
//	• gridgraph — rectangular grids, positions, headings and grid → graph conversion
//
// Everything is generic over the node ID, the node payload and the edge
// weight, so a grid maze keyed by gridgraph.Pos and a hand-built network
// keyed by string use the same code paths.
//
// Quick ASCII example:
//
//	    S . . #        S───┐
//	    # # . #   →        │ 6   (after chain.Reduce)
//	    E . . #        E───┘
//
// A corridor of single-width cells becomes one edge whose weight is the
// corridor length, and the shortest S → E distance is unchanged.
//
// The gridroute command (cmd/gridroute) wires the packages together for text
// grids read from a file or stdin.
//
//	go install github.com/katalvlaran/aoctools/cmd/gridroute@latest
package aoctools
