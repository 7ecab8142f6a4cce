package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mstbench/bfs"
	"github.com/katalvlaran/mstbench/core"
)

// ExampleComponents lists the components of a graph with an isolated vertex.
func ExampleComponents() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("A", "C", 3)
	_, _ = g.AddEdge("C", "B", 1)

	fmt.Println(bfs.Components(g))
	fmt.Println("connected:", bfs.IsConnected(g))
	// Output:
	// [[A C B] [D]]
	// connected: false
}
