// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/aoctools/core"
)

// BenchmarkInsertEdge measures edge upserts along a long path.
func BenchmarkInsertEdge(b *testing.B) {
	g := core.New[int, struct{}, int]()
	for i := 0; i < 1024; i++ {
		g.InsertOrUpdateNode(i, struct{}{})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.InsertEdge(i%1023, i%1023+1, i)
	}
}

// BenchmarkRemoveNode measures cascade removal from a star.
func BenchmarkRemoveNode(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.New[int, struct{}, int]()
		g.InsertOrUpdateNode(0, struct{}{})
		for j := 1; j <= 256; j++ {
			g.InsertOrUpdateNode(j, struct{}{})
			g.InsertEdge(0, j, j)
		}
		b.StartTimer()
		g.RemoveNode(0)
	}
}

// BenchmarkClone measures cloning a grid-shaped graph.
func BenchmarkClone(b *testing.B) {
	const side = 64
	g := core.New[int, struct{}, int]()
	for i := 0; i < side*side; i++ {
		g.InsertOrUpdateNode(i, struct{}{})
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if x+1 < side {
				g.InsertEdge(y*side+x, y*side+x+1, 1)
			}
			if y+1 < side {
				g.InsertEdge(y*side+x, (y+1)*side+x, 1)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
