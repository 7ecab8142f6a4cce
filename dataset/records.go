// SPDX-License-Identifier: MIT
// Package: mstbench/dataset
//
// records.go - JSON input records and their conversion to core.Graph.

package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// ErrMalformedInput marks a graph record that cannot be turned into a graph:
// empty or duplicate node ids, edges with unknown endpoints, or weights below 1.
var ErrMalformedInput = errors.New("dataset: malformed input")

// errDuplicateNode is wrapped under ErrMalformedInput.
var errDuplicateNode = errors.New("duplicate node id")

// InputData is the top-level input document: {"graphs": [...]}.
type InputData struct {
	Graphs []GraphRecord `json:"graphs"`
}

// GraphRecord is one graph of the input document.
type GraphRecord struct {
	ID    int          `json:"id"`
	Nodes []string     `json:"nodes"`
	Edges []EdgeRecord `json:"edges"`
}

// EdgeRecord is one undirected weighted edge.
type EdgeRecord struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// ToGraph builds a core.Graph with vertices in Nodes order and edges in
// Edges order, so edge Seq follows the file.
//
// Every failure wraps ErrMalformedInput together with the core error that
// caused it (core.ErrEmptyVertexID, core.ErrVertexNotFound, core.ErrBadWeight).
func (r GraphRecord) ToGraph() (*core.Graph, error) {
	g := core.NewGraph(
		core.WithVertexCapacity(len(r.Nodes)),
		core.WithEdgeCapacity(len(r.Edges)),
	)

	for _, id := range r.Nodes {
		if g.HasVertex(id) {
			return nil, r.malformed(fmt.Errorf("%w %q", errDuplicateNode, id))
		}
		if err := g.AddVertex(id); err != nil {
			return nil, r.malformed(err)
		}
	}
	for i, e := range r.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, r.malformed(fmt.Errorf("edge %d: %w", i, err))
		}
	}

	return g, nil
}

func (r GraphRecord) malformed(err error) error {
	return fmt.Errorf("%w: graph %d: %w", ErrMalformedInput, r.ID, err)
}

// FromGraph snapshots g into a record with the given id.
func FromGraph(id int, g *core.Graph) GraphRecord {
	rec := GraphRecord{ID: id, Nodes: []string{}, Edges: []EdgeRecord{}}
	if g == nil {
		return rec
	}
	rec.Nodes = g.Vertices()
	rec.Edges = edgeRecords(g.Edges())

	return rec
}

func edgeRecords(edges []core.Edge) []EdgeRecord {
	out := make([]EdgeRecord, len(edges))
	for i, e := range edges {
		out[i] = EdgeRecord{From: e.From, To: e.To, Weight: e.Weight}
	}

	return out
}
