package analyzer

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/bfs"
	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// Analyze runs Prim, then Kruskal, on g and returns the comparison.
// A nil g is treated as the empty graph.
func Analyze(g *core.Graph, opts ...Option) Comparison {
	c := newConfig(opts)
	if g == nil {
		g = core.NewGraph()
	}

	mstOpts := []prim_kruskal.Option{
		prim_kruskal.WithLogger(c.logger),
		prim_kruskal.WithClock(c.clock),
	}
	v, e := g.VertexCount(), g.EdgeCount()
	components := len(bfs.Components(g))

	return Comparison{
		Vertices:           v,
		Edges:              e,
		Components:         components,
		Connected:          components <= 1,
		Prim:               prim_kruskal.Prim(g, mstOpts...),
		Kruskal:            prim_kruskal.Kruskal(g, mstOpts...),
		PrimTheoretical:    PrimTheoretical(v, e),
		KruskalTheoretical: KruskalTheoretical(e),
	}
}

// PrimTheoretical returns trunc(E·log2 V); 0 when E = 0 or V ≤ 1.
func PrimTheoretical(v, e int) int64 {
	if e == 0 || v <= 1 {
		return 0
	}

	return int64(float64(e) * math.Log2(float64(v)))
}

// KruskalTheoretical returns trunc(E·log2 E) + E; 0 when E = 0.
func KruskalTheoretical(e int) int64 {
	if e == 0 {
		return 0
	}

	return int64(float64(e)*math.Log2(float64(e))) + int64(e)
}

func logComparison(l *zap.Logger, cmp Comparison) {
	l.Info("graph analyzed",
		zap.Int("vertices", cmp.Vertices),
		zap.Int("edges", cmp.Edges),
		zap.Int("components", cmp.Components),
		zap.Int64("prim_ops", cmp.Prim.Operations),
		zap.Int64("kruskal_ops", cmp.Kruskal.Operations),
		zap.Int64("prim_cost", cmp.Prim.TotalCost),
		zap.Int64("kruskal_cost", cmp.Kruskal.TotalCost),
		zap.Duration("prim_elapsed", cmp.Prim.Elapsed),
		zap.Duration("kruskal_elapsed", cmp.Kruskal.Elapsed))
}
