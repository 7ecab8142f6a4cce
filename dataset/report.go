package dataset

import (
	"github.com/katalvlaran/mstbench/analyzer"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// Report is the output document: {"results": [...]}.
type Report struct {
	Results []ResultRecord `json:"results"`
}

// ResultRecord is the per-graph entry of a Report. A failed graph carries
// only GraphID and Error.
type ResultRecord struct {
	GraphID    int              `json:"graph_id"`
	InputStats *InputStats      `json:"input_stats,omitempty"`
	Prim       *AlgorithmRecord `json:"prim,omitempty"`
	Kruskal    *AlgorithmRecord `json:"kruskal,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// InputStats records the size of the analyzed graph.
type InputStats struct {
	Vertices int `json:"vertices"`
	Edges    int `json:"edges"`
}

// AlgorithmRecord is the serialized form of one prim_kruskal.Result.
type AlgorithmRecord struct {
	MSTEdges        []EdgeRecord `json:"mst_edges"`
	TotalCost       int64        `json:"total_cost"`
	OperationsCount int64        `json:"operations_count"`
	ExecutionTimeMS int64        `json:"execution_time_ms"`
}

// NewReport converts batch outcomes into a Report, keeping their order.
func NewReport(outcomes []analyzer.Outcome) Report {
	r := Report{Results: make([]ResultRecord, 0, len(outcomes))}
	for _, o := range outcomes {
		if !o.OK() {
			r.Results = append(r.Results, ResultRecord{GraphID: o.ID, Error: o.Err.Error()})
			continue
		}
		cmp := o.Comparison
		r.Results = append(r.Results, ResultRecord{
			GraphID:    o.ID,
			InputStats: &InputStats{Vertices: cmp.Vertices, Edges: cmp.Edges},
			Prim:       newAlgorithmRecord(cmp.Prim),
			Kruskal:    newAlgorithmRecord(cmp.Kruskal),
		})
	}

	return r
}

func newAlgorithmRecord(res prim_kruskal.Result) *AlgorithmRecord {
	return &AlgorithmRecord{
		MSTEdges:        edgeRecords(res.Edges),
		TotalCost:       res.TotalCost,
		OperationsCount: res.Operations,
		ExecutionTimeMS: res.ElapsedMillis(),
	}
}

// Succeeded counts the results without an error.
func (r Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Error == "" {
			n++
		}
	}

	return n
}
