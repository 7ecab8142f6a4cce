// Package bfs provides breadth-first search and connected-component
// discovery over a core.Graph.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a
//     start vertex and returns a Result with the visit Order, Depth and
//     Parent links. Edge weights are ignored.
//   - Components partitions the vertex set into connected components.
//   - IsConnected reports whether the graph has at most one component.
//
// Why
//
//	The random generator promises a connected graph and the MST engines return
//	partial results on disconnected input. Both claims are checked with this
//	package: generator tests and the analyzer report the component count.
//
// Determinism
//
//	BFS expands a vertex through core.Graph.IncidentEdges, which lists edges
//	in encounter order, so the visit sequence is reproducible.
//	Components are emitted in order of their first vertex in insertion order.
//
// Options
//
//   - WithContext(ctx): cancellation, checked once per dequeued vertex.
//   - WithOnVisit(fn): hook on every visit; a returned error aborts the search.
//   - WithMaxDepth(d): d > 0 limits the depth, d == 0 means no limit,
//     d < 0 is rejected with ErrOptionViolation.
//   - WithEdgeFilter(keep): cross only edges for which keep returns true.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
