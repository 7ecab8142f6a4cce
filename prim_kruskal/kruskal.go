package prim_kruskal

import (
	"math"
	"sort"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/unionfind"
)

// Kruskal computes the minimum spanning forest of g.
//
// Steps:
//  1. |V| ≤ 1 (or nil graph) → empty result, nothing measured.
//  2. Copy all edges and stable-sort them by (Weight, Seq); charge
//     E·⌊log2 E⌋ operations for the sort.
//  3. Seed a Union-Find with every vertex.
//  4. Scan sorted edges, stopping once |V|−1 edges are accepted. Each scanned
//     edge costs 2 finds; an edge whose endpoints have different roots is
//     accepted and costs 1 more union.
//  5. If fewer than |V|−1 edges were accepted, log the partial coverage.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(g *core.Graph, opts ...Option) Result {
	o := resolve(opts)
	if g == nil {
		return emptyResult(MethodKruskal, 0)
	}

	vertices := g.Vertices()
	n := len(vertices)
	if n <= 1 {
		return emptyResult(MethodKruskal, n)
	}

	startedAt := o.Clock()

	edges := g.Edges()
	ops := SortOperations(len(edges))
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Less(edges[j])
	})

	uf := unionfind.New(vertices)
	touched := make(map[string]struct{}, n)
	mst := make([]core.Edge, 0, n-1)
	var total int64

	for _, e := range edges {
		if len(mst) == n-1 {
			break
		}

		ops += 2
		if uf.Find(e.From) == uf.Find(e.To) {
			continue
		}

		ops++
		uf.Union(e.From, e.To)
		mst = append(mst, e)
		total += e.Weight
		touched[e.From] = struct{}{}
		touched[e.To] = struct{}{}
	}

	res := Result{
		Algorithm:  MethodKruskal,
		Edges:      mst,
		TotalCost:  total,
		Operations: ops,
		Elapsed:    o.Clock().Sub(startedAt),
		Vertices:   n,
		Covered:    len(touched),
	}
	logPartial(o.Logger, res)

	return res
}

// SortOperations is the closed-form comparison-sort estimate E·⌊log2 E⌋
// charged by Kruskal; 0 when E ≤ 1.
func SortOperations(e int) int64 {
	if e <= 1 {
		return 0
	}

	return int64(e) * int64(math.Log2(float64(e)))
}
