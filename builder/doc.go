// Package builder constructs weighted undirected *core.Graph values for MST
// benchmarking, in the functional-options style used across mstbench.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a graph, resolve options,
//     run constructors in order.
//     – GenerateGraph(n, density, seed): the benchmark generator, ids
//     "N0".."N(n-1)", weights uniform in [1, DefaultMaxWeight].
//     – GenerateSparse(n, p, seed): G(n, p), possibly disconnected.
//   - Constructors:
//     – RandomConnected(n, density): random spanning tree, then densified
//     up to TargetEdges(n, density) distinct pairs.
//     – RandomSparse(n, p): independent Bernoulli trial per pair.
//     – Complete, Path, Cycle, Star: deterministic fixtures.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, PrefixIDFn, SymbolIDFn, ExcelColumnIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn (integers, inclusive bounds).
//
// Guarantees:
//
//   - Identical inputs, options and seed reproduce an identical edge list,
//     including order and weights.
//   - RandomConnected never emits self-loops or repeated pairs and always
//     yields a connected graph.
//   - Option constructors panic on meaningless values (nil functions, bad
//     weight bounds); constructors return sentinel errors instead.
package builder
