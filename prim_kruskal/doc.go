// Package prim_kruskal computes the Minimum Spanning Tree (MST) of a weighted,
// undirected *core.Graph with Prim's and Kruskal's algorithms and instruments
// every run with an operation count and a wall-clock measurement, so the two
// cost models can be compared side by side.
//
// What & Why
//
//   - An MST of G = (V, E) is a subset T ⊆ E that connects all of V without
//     cycles and minimizes Σ w(e) for e ∈ T.
//   - Both algorithms return the same total weight on a connected graph; the
//     selected edge sets may differ only when equal-weight ties exist.
//
// Algorithms Provided
//
//   - Prim(g, opts...) Result
//
//   - Grows one tree from the first vertex of g (or WithRoot). A min-heap
//     holds candidate edges ordered by weight; equal weights pop in push
//     order.
//
//   - Operations: 1 per heap push + 1 per heap pop. Membership checks, cost
//     accumulation and set insertions are not counted.
//
//   - Cost model: O(E log E) heap work, reported against E·log2(V).
//
//   - Kruskal(g, opts...) Result
//
//   - Stable sort of all edges by (weight, encounter order), then a scan that
//     accepts every edge joining two different Union-Find sets, stopping
//     once |V|−1 edges are accepted.
//
//   - Operations: E·⌊log2 E⌋ for the sort (a closed-form estimate, not a
//     comparison counter) + 2 finds per scanned edge + 1 union per accepted edge.
//
//   - Cost model: O(E log E), reported against E·log2(E) + E.
//
// Base case and partial results
//
//	A graph with 0 or 1 vertices (or a nil graph) yields an empty result with
//	zero cost, zero operations and zero elapsed time.
//
//	A disconnected graph is not an error. Prim returns the MST of the start
//	vertex's component; Kruskal returns the minimum spanning forest. In both
//	cases Result.Partial() is true and an Info entry is written to the logger
//	supplied with WithLogger.
//
// Errors
//
//	Prim and Kruskal never return errors. Compute, the option-driven
//	dispatcher, validates its input first:
//
//	- ErrInvalidGraph  : graph is nil.
//	- ErrUnknownMethod : Method is neither MethodPrim nor MethodKruskal.
//	- ErrRootNotFound  : WithRoot names a vertex the graph does not have.
//
//	Calling Prim directly with an unknown root is a contract violation and panics.
//
// Determinism
//
//	Operation counts and selected edges are reproducible for a fixed graph.
//	Elapsed time depends on the environment and is an independent observation.
//
// Every invocation owns its heap, sorted buffer and Union-Find; any number of
// runs may share one graph concurrently.
package prim_kruskal
