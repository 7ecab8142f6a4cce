// Package mstbench benchmarks Prim's and Kruskal's minimum spanning tree
// algorithms side by side on weighted, undirected graphs.
//
// Every run records the selected edges, the total cost, an operation count
// and the wall-clock time, so the two algorithms can be compared on the
// same input against their theoretical E·log V and E·log E + E bounds.
//
// Packages, leaves first:
//
//	core/         - Graph and Edge: insertion-ordered, thread-safe multigraph
//	unionfind/    - disjoint sets with path compression and union by rank
//	bfs/          - breadth-first walk, connected components
//	prim_kruskal/ - Prim (min-heap), Kruskal (sort + Union-Find), Result
//	builder/      - seeded random connected graphs, G(n, p), fixture topologies
//	analyzer/     - one-graph Comparison and the parallel Batch
//	dataset/      - JSON datasets and reports, preset suites, HCL plans
//	logutil/      - zap logger construction for the CLI
//	cmd/          - cobra commands: generate, analyze, run
//
// Quick ASCII example:
//
//	    A──1──B
//	    │ ╲   │
//	    4  5  2
//	    │   ╲ │
//	    D──3──C
//
// Both algorithms pick A-B, B-C, C-D for a total cost of 6.
//
//	go run ./cmd/mstbench run --suite small
package mstbench
