package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// BenchmarkKruskal measures a connected graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000) // pre-build graph once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures the same graph, starting from "V0".
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = prim_kruskal.Prim(g, prim_kruskal.WithRoot("V0"))
	}
}
