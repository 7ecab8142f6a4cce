package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"), "re-adding is a no-op")

	assert.Equal(t, []string{"B", "A"}, g.Vertices(), "insertion order is kept")
	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("C"))
	assert.False(t, g.HasVertex(""))
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	_, err := g.AddEdge("", "B", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "X", 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.AddEdge("X", "A", 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "B", -3)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	assert.Zero(t, g.EdgeCount(), "rejected edges leave no trace")
}

func TestAddEdge_ParallelEdgesAndSeq(t *testing.T) {
	g := core.NewGraph(core.WithVertexCapacity(2), core.WithEdgeCapacity(3))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	e1, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	e2, err := g.AddEdge("B", "A", 1)
	require.NoError(t, err)

	assert.Equal(t, "e1", e1.ID)
	assert.Equal(t, "e2", e2.ID)
	assert.Equal(t, 0, e1.Seq)
	assert.Equal(t, 1, e2.Seq)

	edges := g.Edges()
	require.Len(t, edges, 2, "parallel edges are not deduplicated")
	assert.Equal(t, e1, edges[0])
	assert.Equal(t, e2, edges[1])
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))

	nbrs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nbrs)
}

func TestIncidentEdges(t *testing.T) {
	g := newSquare(t)

	inc, err := g.IncidentEdges("A")
	require.NoError(t, err)
	require.Len(t, inc, 3)
	assert.Equal(t, []int{0, 3, 4}, []int{inc[0].Seq, inc[1].Seq, inc[2].Seq})

	_, err = g.IncidentEdges("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.False(t, g.HasEdge("Z", "A"))
	assert.False(t, g.HasEdge("B", "D"))
}

func TestSelfLoopListedOnce(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	_, err := g.AddEdge("A", "A", 2)
	require.NoError(t, err)

	inc, err := g.IncidentEdges("A")
	require.NoError(t, err)
	assert.Len(t, inc, 1)
	nbrs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nbrs)
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	g := newSquare(t)

	vs := g.Vertices()
	vs[0] = "mutated"
	es := g.Edges()
	es[0].Weight = 99

	assert.Equal(t, "A", g.Vertices()[0])
	assert.Equal(t, int64(1), g.Edges()[0].Weight)
}

func TestStats(t *testing.T) {
	s := newSquare(t).Stats()
	assert.Equal(t, 4, s.VertexCount)
	assert.Equal(t, 5, s.EdgeCount)
	assert.Equal(t, 6, s.MaxEdges)
	assert.InDelta(t, 5.0/6.0, s.Density, 1e-12)

	assert.Equal(t, core.GraphStats{}, core.NewGraph().Stats())
	assert.Equal(t, "Graph{vertices=4, edges=5}", newSquare(t).String())
}
