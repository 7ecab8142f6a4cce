// Package core: vertex and edge catalog operations.
//
// Construction methods take the write lock, queries take the read lock.
// Every slice returned to callers is a fresh copy; mutating it never
// touches graph state.

package core

import (
	"fmt"
	"strconv"
)

// AddVertex inserts a vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty. Adding an existing ID is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[id]; exists {
		return nil
	}
	g.index[id] = len(g.vertices)
	g.vertices = append(g.vertices, id)
	g.incidence = append(g.incidence, nil)

	return nil
}

// AddEdge appends an undirected edge from-to with the given weight and
// returns it. Both endpoints must exist; parallel edges are kept.
//
// Returns ErrEmptyVertexID, ErrVertexNotFound or ErrBadWeight (wrapped with
// the offending values).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (Edge, error) {
	if from == "" || to == "" {
		return Edge{}, ErrEmptyVertexID
	}
	if weight < MinWeight {
		return Edge{}, fmt.Errorf("%s-%s weight %d: %w", from, to, weight, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	fi, ok := g.index[from]
	if !ok {
		return Edge{}, fmt.Errorf("edge endpoint %q: %w", from, ErrVertexNotFound)
	}
	ti, ok := g.index[to]
	if !ok {
		return Edge{}, fmt.Errorf("edge endpoint %q: %w", to, ErrVertexNotFound)
	}

	seq := len(g.edges)
	e := Edge{
		ID:     edgeIDPrefix + strconv.Itoa(seq+1),
		From:   from,
		To:     to,
		Weight: weight,
		Seq:    seq,
	}
	g.edges = append(g.edges, e)
	g.incidence[fi] = append(g.incidence[fi], seq)
	if ti != fi {
		g.incidence[ti] = append(g.incidence[ti], seq)
	}

	return e, nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether at least one edge connects u and v (either orientation).
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ui, ok := g.index[u]
	if !ok {
		return false
	}
	for _, pos := range g.incidence[ui] {
		if other, _ := g.edges[pos].Other(u); other == v {
			return true
		}
	}

	return false
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns all edges in encounter order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|, parallel edges included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// IncidentEdges returns every edge touching id, in encounter order.
// Returns ErrVertexNotFound for an unknown id.
// Complexity: O(deg(id)).
func (g *Graph) IncidentEdges(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	k, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("incident edges of %q: %w", id, ErrVertexNotFound)
	}
	out := make([]Edge, len(g.incidence[k]))
	for i, pos := range g.incidence[k] {
		out[i] = g.edges[pos]
	}

	return out, nil
}

// NeighborIDs returns the distinct neighbors of id in first-encounter order.
// A self-loop makes id its own neighbor.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	k, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("neighbors of %q: %w", id, ErrVertexNotFound)
	}
	seen := make(map[string]struct{}, len(g.incidence[k]))
	out := make([]string, 0, len(g.incidence[k]))
	for _, pos := range g.incidence[k] {
		other, _ := g.edges[pos].Other(id)
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}

	return out, nil
}
