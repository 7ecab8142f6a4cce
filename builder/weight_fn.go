// Package builder provides the edge-weight distributions used by graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < DefaultEdgeWeight.
func ConstantWeightFn(value int64) WeightFn {
	if value < DefaultEdgeWeight {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ %d, got %d", DefaultEdgeWeight, value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in
// [min, max] inclusive. Each call consumes exactly one draw from rng.
// If rng is nil, yields min.
// Panics if min < DefaultEdgeWeight or max < min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < DefaultEdgeWeight || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require %d ≤ min ≤ max, got min=%d, max=%d", DefaultEdgeWeight, min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return min
		}

		return min + rng.Int63n(span)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U{min..max} via UniformWeightFn.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
