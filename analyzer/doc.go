// Package analyzer runs Prim and Kruskal side by side on the same graph and
// aggregates their measurements with the theoretical reference values
// E·log2(V) (Prim) and E·log2(E) + E (Kruskal).
//
// Analyze handles one graph. Batch handles many, isolating failures per
// graph: a graph that cannot be loaded, or whose analysis trips a contract
// violation, is recorded as failed while the others proceed. Batch runs up to
// WithWorkers graphs concurrently and always returns outcomes in input order.
package analyzer
