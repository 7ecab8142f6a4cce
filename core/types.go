// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge and Graph declarations, sentinel errors, GraphOption and NewGraph.
// Policy:
//   - Sentinels only; callers branch with errors.Is.
//   - Edge is a value type; algorithms copy it freely.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates an edge weight below MinWeight.
	ErrBadWeight = errors.New("core: edge weight must be a positive integer")
)

// MinWeight is the smallest admissible edge weight.
const MinWeight int64 = 1

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = "e"

// Edge is an undirected, weighted connection between two vertices.
//
// From/To record the orientation in which the edge was added; it carries no
// meaning beyond presentation. Seq is the zero-based encounter order of the
// edge in its graph and is the stable tie-breaker of the edge order.
type Edge struct {
	// ID uniquely identifies this edge in its Graph ("e" + Seq+1).
	ID string

	// From is the first endpoint as given to AddEdge.
	From string

	// To is the second endpoint as given to AddEdge.
	To string

	// Weight is the cost of the edge, always ≥ MinWeight.
	Weight int64

	// Seq is the encounter order of the edge within its graph.
	Seq int
}

// Equal reports whether e and o connect the same unordered pair of vertices
// with the same weight. ID and Seq are ignored, so parallel edges of equal
// weight compare equal.
func (e Edge) Equal(o Edge) bool {
	if e.Weight != o.Weight {
		return false
	}

	return (e.From == o.From && e.To == o.To) || (e.From == o.To && e.To == o.From)
}

// Less orders edges by Weight, then by Seq.
func (e Edge) Less(o Edge) bool {
	if e.Weight != o.Weight {
		return e.Weight < o.Weight
	}

	return e.Seq < o.Seq
}

// Touches reports whether v is one of the endpoints of e.
func (e Edge) Touches(v string) bool {
	return e.From == v || e.To == v
}

// Other returns the endpoint opposite to v. The boolean is false when v is
// not an endpoint of e. For a self-loop Other(v) returns v.
func (e Edge) Other(v string) (string, bool) {
	switch v {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	default:
		return "", false
	}
}

// String renders the edge as "From-To(Weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%s-%s(%d)", e.From, e.To, e.Weight)
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithVertexCapacity preallocates room for n vertices.
func WithVertexCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make([]string, 0, n)
			g.index = make(map[string]int, n)
			g.incidence = make([][]int, 0, n)
		}
	}
}

// WithEdgeCapacity preallocates room for m edges.
func WithEdgeCapacity(m int) GraphOption {
	return func(g *Graph) {
		if m > 0 {
			g.edges = make([]Edge, 0, m)
		}
	}
}

// Graph is a weighted, undirected multigraph with insertion-ordered vertices.
//
// vertices holds IDs in insertion order and index maps an ID to its position.
// edges holds every edge in encounter order (edges[i].Seq == i).
// incidence[k] lists, in encounter order, the positions in edges of all
// edges touching vertices[k]; a self-loop is listed once.
type Graph struct {
	mu sync.RWMutex

	vertices  []string
	index     map[string]int
	edges     []Edge
	incidence [][]int
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{index: make(map[string]int)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// MaxEdges returns the number of unordered vertex pairs, v·(v−1)/2, which is
// the edge count of the complete simple graph on v vertices.
func MaxEdges(v int) int {
	if v < 2 {
		return 0
	}

	return v * (v - 1) / 2
}
