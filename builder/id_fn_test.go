package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mstbench/builder"
)

func TestIDFns(t *testing.T) {
	cases := []struct {
		name string
		fn   builder.IDFn
		idx  int
		want string
	}{
		{"Default_0", builder.DefaultIDFn, 0, "0"},
		{"Default_42", builder.DefaultIDFn, 42, "42"},
		{"Prefix_N7", builder.PrefixIDFn("N"), 7, "N7"},
		{"Symbol_A", builder.SymbolIDFn, 0, "A"},
		{"Symbol_Z", builder.SymbolIDFn, 25, "Z"},
		{"Excel_Z", builder.ExcelColumnIDFn, 25, "Z"},
		{"Excel_AA", builder.ExcelColumnIDFn, 26, "AA"},
		{"Excel_AZ", builder.ExcelColumnIDFn, 51, "AZ"},
		{"Excel_BA", builder.ExcelColumnIDFn, 52, "BA"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fn(tc.idx))
		})
	}
}

func TestIDFns_PanicOnOutOfRange(t *testing.T) {
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.SymbolIDFn(-1) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.PrefixIDFn("v")(-1) })
}
