package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// Prim computes the MST of the start vertex's connected component by
// growing outwards with a min-heap.
//
// Steps:
//  1. |V| ≤ 1 (or nil graph) → empty result, nothing measured.
//  2. Start at opts Root, or the first vertex in insertion order.
//  3. Mark the start visited and push every edge touching it.
//  4. While the heap is non-empty and some vertex is unvisited:
//     a. Pop the lightest edge (ties: earliest pushed).
//     b. If exactly one endpoint is visited, accept the edge, mark the other
//     endpoint, add its weight, and push its edges to unvisited vertices.
//     c. Otherwise discard it.
//  5. If fewer than |V| vertices were reached, log the partial coverage.
//
// Each push and each pop counts as one operation.
// Panics if a non-empty Root is not a vertex of g; Compute checks this first.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) Result {
	o := resolve(opts)
	if g == nil {
		return emptyResult(MethodPrim, 0)
	}

	vertices := g.Vertices()
	n := len(vertices)
	if n <= 1 {
		return emptyResult(MethodPrim, n)
	}

	startedAt := o.Clock()

	root := vertices[0]
	if o.Root != "" {
		root = o.Root
	}
	seed, err := g.IncidentEdges(root)
	if err != nil {
		panic(fmt.Errorf("%w: %q", ErrRootNotFound, root))
	}

	visited := make(map[string]struct{}, n)
	visited[root] = struct{}{}
	mst := make([]core.Edge, 0, n-1)
	var total int64

	pq := newEdgeQueue(len(seed))
	for _, e := range seed {
		pq.push(e)
	}

	for pq.Len() > 0 && len(visited) < n {
		e := pq.pop()

		_, fromIn := visited[e.From]
		_, toIn := visited[e.To]
		var next string
		switch {
		case fromIn && !toIn:
			next = e.To
		case toIn && !fromIn:
			next = e.From
		default:
			// both endpoints already in the tree
			continue
		}

		visited[next] = struct{}{}
		mst = append(mst, e)
		total += e.Weight

		incident, _ := g.IncidentEdges(next)
		for _, ne := range incident {
			other, _ := ne.Other(next)
			if _, seen := visited[other]; !seen {
				pq.push(ne)
			}
		}
	}

	res := Result{
		Algorithm:  MethodPrim,
		Edges:      mst,
		TotalCost:  total,
		Operations: pq.ops,
		Elapsed:    o.Clock().Sub(startedAt),
		Vertices:   n,
		Covered:    len(visited),
	}
	logPartial(o.Logger, res)

	return res
}
