// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// addVertices inserts idFn(0..n-1) into g and returns the IDs in order.
// Complexity: O(n) time and space.
func addVertices(method string, g *core.Graph, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addWeightedEdge adds u-v with the next configured weight.
func addWeightedEdge(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.nextWeight()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// pairKey encodes the unordered index pair {i, j} of an n-vertex graph.
func pairKey(i, j, n int) int64 {
	if i > j {
		i, j = j, i
	}

	return int64(i)*int64(n) + int64(j)
}
