package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mpm/builder"
)

// TestIDFns verifies each IDFn implementation both for correct outputs on valid inputs
// and for panics on invalid inputs.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"OneBasedIDFn_zero", builder.OneBasedIDFn, 0, "1", false},
		{"OneBasedIDFn_nine", builder.OneBasedIDFn, 9, "10", false},

		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},

		{"ExcelColumnIDFn_zero", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_startDouble", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},

		{"PaddedIDFn_3", builder.PaddedIDFn(3), 7, "007", false},
		{"PaddedIDFn_overflow", builder.PaddedIDFn(2), 123, "123", false},
		{"PaddedIDFn_neg", builder.PaddedIDFn(2), -1, "", true},

		{"SymbolNumberIDFn_v", builder.SymbolNumberIDFn("v"), 4, "v4", false},
		{"SymbolNumberIDFn_neg", builder.SymbolNumberIDFn("v"), -4, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestPriorityFns checks the priority policies, including the nil-rng fallback.
func TestPriorityFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, builder.ConstantPriorityFn(2)(5, 9, nil))
	assert.Equal(t, 6, builder.DistinctPriorityFn(5, 9, nil))

	cyc := builder.CyclicPriorityFn(3)
	got := make([]int, 0, 7)
	for i := 0; i < 7; i++ {
		got = append(got, cyc(i, 7, nil))
	}
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1}, got)
	assert.Equal(t, 1, cyc(1, 1, nil), "k is clipped to n")

	uni := builder.UniformPriorityFn(4)
	assert.Equal(t, 3, uni(6, 10, nil), "nil rng falls back to idx%k+1")
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		p := uni(i, 10, rng)
		assert.True(t, p >= 1 && p <= 4, "p=%d", p)
	}

	assert.Panics(t, func() { builder.ConstantPriorityFn(0) })
	assert.Panics(t, func() { builder.UniformPriorityFn(0) })
	assert.Panics(t, func() { builder.CyclicPriorityFn(-1) })
}
