// Package unionfind implements a disjoint-set forest over string vertex IDs
// with union by rank and iterative path compression.
//
// The structure is seeded once from a graph's full vertex list. Asking it
// about a vertex it was never seeded with is a broken caller invariant, not
// an input error: Find, Union and Connected panic with *ContractViolation.
//
// Complexity: O(α(n)) amortized per operation, O(n) memory.
package unionfind

import "fmt"

// ContractViolation is the panic value raised when an operation names a
// vertex the structure was not seeded with.
type ContractViolation struct {
	Op     string
	Vertex string
}

// Error implements error.
func (c *ContractViolation) Error() string {
	return fmt.Sprintf("unionfind: %s(%q): vertex not in structure", c.Op, c.Vertex)
}

// UnionFind is a disjoint-set forest. It is not safe for concurrent use;
// each MST run owns its own instance.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
	sets   int

	// path is a scratch buffer reused by Find to avoid an allocation per call.
	path []string
}

// New creates a UnionFind where every id is its own singleton set of rank 0.
// Duplicate ids are folded.
func New(ids []string) *UnionFind {
	uf := &UnionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		if _, ok := uf.parent[id]; ok {
			continue
		}
		uf.parent[id] = id
		uf.rank[id] = 0
		uf.sets++
	}

	return uf
}

// Has reports whether id was seeded into the structure.
func (uf *UnionFind) Has(id string) bool {
	_, ok := uf.parent[id]
	return ok
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Sets returns the number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }

// Rank returns the rank of id's root. Mainly useful for tests and diagnostics.
func (uf *UnionFind) Rank(id string) int {
	return uf.rank[uf.find("Rank", id)]
}

// Find returns the representative of the set containing id. Every node on
// the walked path is repointed directly at the root.
func (uf *UnionFind) Find(id string) string {
	return uf.find("Find", id)
}

func (uf *UnionFind) find(op, id string) string {
	p, ok := uf.parent[id]
	if !ok {
		panic(&ContractViolation{Op: op, Vertex: id})
	}
	if p == id {
		return id
	}

	// First pass: walk up to the root, remembering the path.
	uf.path = uf.path[:0]
	root := id
	for uf.parent[root] != root {
		uf.path = append(uf.path, root)
		root = uf.parent[root]
	}
	// Second pass: repoint the whole path at the root.
	for _, node := range uf.path {
		uf.parent[node] = root
	}

	return root
}

// Union merges the sets containing a and b and reports whether a merge
// happened. The root of lower rank goes under the other; on equal ranks b's
// root goes under a's root and a's root gains one rank.
func (uf *UnionFind) Union(a, b string) bool {
	ra := uf.find("Union", a)
	rb := uf.find("Union", b)
	if ra == rb {
		return false
	}

	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	uf.sets--

	return true
}

// Connected reports whether a and b are in the same set.
func (uf *UnionFind) Connected(a, b string) bool {
	return uf.find("Connected", a) == uf.find("Connected", b)
}
