package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTenor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{"1W", 7.0 / 365.0},
		{"3M", 0.25},
		{"6m", 0.5},
		{"10Y", 10},
		{"90D", 90.0 / 365.0},
		{" 2Y ", 2},
		{"1.5", 1.5},
		{"garbage", 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, ParseTenor(tc.in), 1e-12, "tenor %q", tc.in)
	}
}

func TestEnsureSortedUnique(t *testing.T) {
	t.Parallel()

	tenors := []float64{2, 0.5, 1, 0.5, 3}
	rates := []float64{0.03, 0.02, 0.025, 0.021, 0.032}

	gotTenors, gotRates := EnsureSortedUnique(tenors, rates)

	assert.Equal(t, []float64{0.5, 1, 2, 3}, gotTenors)
	// First occurrence of the duplicated 0.5 tenor wins.
	assert.Equal(t, []float64{0.02, 0.025, 0.03, 0.032}, gotRates)
}

func TestRoundTo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0556, RoundTo(0.05555555, 4))
	assert.Equal(t, -1.23, RoundTo(-1.2345, 2))
}
