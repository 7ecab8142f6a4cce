// Package core defines the Graph, Vertex and Edge types that every MST
// engine, generator and analyzer in this module consumes.
//
// The Graph G = (V,E) is a weighted, undirected multigraph:
//
//   - Vertices are opaque string identifiers, unique within a graph and
//     iterated in insertion order (the order carries no algorithmic meaning).
//   - Edges are unordered endpoint pairs with an integer weight ≥ 1.
//     Parallel edges between the same pair are kept, each is a distinct
//     MST candidate.
//   - Every edge carries its encounter sequence (Edge.Seq). The total order
//     on edges is (Weight, Seq): equal-weight ties are broken by encounter
//     order, never by vertex identity.
//
// Lifecycle:
//
//	NewGraph()           // empty graph
//	AddVertex(id)        // O(1), idempotent for an existing id
//	AddEdge(u, v, w)     // O(1), both endpoints must already exist
//	...                  // afterwards the graph is a read-only input
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - an edge endpoint or queried vertex does not exist.
//	ErrBadWeight      - edge weight is not a positive integer.
//
// Concurrency:
//
//	A single sync.RWMutex guards the catalogs. Reads take the read lock, so
//	any number of algorithm runs may share one graph. Callers must not keep
//	mutating a graph once it has been handed to an algorithm.
//
// Traversal state never lives in the Graph: the Prim heap, the Kruskal
// buffer and the BFS queue are owned by the invocation that creates them.
package core
