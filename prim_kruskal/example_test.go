package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// ExamplePrim grows the MST of a triangle from vertex A.
func ExamplePrim() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 4)

	res := prim_kruskal.Prim(g)
	fmt.Println("edges:", res.Edges)
	fmt.Println("cost:", res.TotalCost, "ops:", res.Operations)
	// Output:
	// edges: [A-B(1) B-C(2)]
	// cost: 3 ops: 5
}

// ExampleKruskal shows the minimum spanning forest of a disconnected graph.
func ExampleKruskal() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 2)

	res := prim_kruskal.Kruskal(g)
	fmt.Println("edges:", res.Edges)
	fmt.Println("cost:", res.TotalCost, "partial:", res.Partial())
	// Output:
	// edges: [A-B(1) C-D(2)]
	// cost: 3 partial: true
}

// ExampleCompute dispatches on the configured method.
func ExampleCompute() {
	g := core.NewGraph()
	_ = g.AddVertex("X")
	_ = g.AddVertex("Y")
	_, _ = g.AddEdge("X", "Y", 9)

	_, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	fmt.Println(err)
	res, _ := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	fmt.Println(res.Algorithm, res.TotalCost)
	// Output:
	// prim_kruskal: unknown MST method: "boruvka"
	// prim 9
}
