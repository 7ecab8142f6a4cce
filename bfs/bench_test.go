package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mstbench/bfs"
	"github.com/katalvlaran/mstbench/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph(core.WithVertexCapacity(N+1), core.WithEdgeCapacity(N))
	for i := 0; i <= N; i++ {
		_ = g.AddVertex(fmt.Sprintf("v%d", i))
	}
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}
