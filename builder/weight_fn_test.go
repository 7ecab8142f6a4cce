package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mstbench/builder"
)

func TestWeightFnConstructors_Panic(t *testing.T) {
	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_zero", func() builder.WeightFn { return builder.ConstantWeightFn(0) }},
		{"UniformWeightFn_minZero", func() builder.WeightFn { return builder.UniformWeightFn(0, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

func TestDefaultAndConstantWeightFn(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, int64(9), builder.ConstantWeightFn(9)(rand.New(rand.NewSource(1))))
}

func TestUniformWeightFn_InclusiveRange(t *testing.T) {
	fn := builder.UniformWeightFn(1, 3)
	rng := rand.New(rand.NewSource(7))
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, int64(1))
		assert.LessOrEqual(t, w, int64(3))
		seen[w] = true
	}
	assert.Len(t, seen, 3, "both bounds must be reachable")

	assert.Equal(t, int64(4), builder.UniformWeightFn(4, 4)(rng))
	assert.Equal(t, int64(2), builder.UniformWeightFn(2, 10)(nil))
}
