package bfs

import (
	"github.com/katalvlaran/mstbench/core"
)

// Components partitions the vertices of g into connected components. Each
// component lists vertices in BFS order from its first vertex; components
// are ordered by that first vertex's insertion position. A nil or empty
// graph has no components.
// Complexity: O(V + E).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}

	var comps [][]string
	seen := make(map[string]struct{}, g.VertexCount())
	for _, v := range g.Vertices() {
		if _, ok := seen[v]; ok {
			continue
		}
		// v exists and no options are passed, so BFS cannot fail
		res, _ := BFS(g, v)
		for _, id := range res.Order {
			seen[id] = struct{}{}
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// IsConnected reports whether every vertex of g is reachable from the first
// one. Graphs with zero or one vertex are connected.
func IsConnected(g *core.Graph) bool {
	if g == nil || g.VertexCount() <= 1 {
		return true
	}
	res, _ := BFS(g, g.Vertices()[0])

	return len(res.Order) == g.VertexCount()
}
