// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: read-only summary of a graph for logs and reports.

package core

import "fmt"

// GraphStats is a snapshot of catalog sizes.
type GraphStats struct {
	// VertexCount is |V|.
	VertexCount int
	// EdgeCount is |E|, parallel edges included.
	EdgeCount int
	// MaxEdges is |V|·(|V|−1)/2.
	MaxEdges int
	// Density is EdgeCount / MaxEdges, or 0 when MaxEdges is 0.
	// It may exceed 1 for multigraphs.
	Density float64
}

// Stats returns a consistent snapshot of the graph's sizes.
// Complexity: O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	v, e := len(g.vertices), len(g.edges)
	g.mu.RUnlock()

	s := GraphStats{VertexCount: v, EdgeCount: e, MaxEdges: MaxEdges(v)}
	if s.MaxEdges > 0 {
		s.Density = float64(e) / float64(s.MaxEdges)
	}

	return s
}

// String renders the graph as "Graph{vertices=V, edges=E}".
func (g *Graph) String() string {
	s := g.Stats()

	return fmt.Sprintf("Graph{vertices=%d, edges=%d}", s.VertexCount, s.EdgeCount)
}
