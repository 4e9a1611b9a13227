package curve_test

import (
	"testing"
	"time"

	"github.com/meenmo/curvelib/curve"
	"github.com/meenmo/curvelib/curveerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCurve(t *testing.T) *curve.Curve {
	t.Helper()
	factory := curve.NewFactory(curve.NewCatalog())
	c, err := factory.CreateSpotCurve(
		[]float64{1, 2, 3},
		[]float64{0.02, 0.025, 0.03},
		"linear", "ACT/365", "simple",
	)
	require.NoError(t, err)
	return c
}

func TestSpotRateOnNodesIsExact(t *testing.T) {
	t.Parallel()

	c := newTestCurve(t)
	for tenor, want := range map[float64]float64{1: 0.02, 2: 0.025, 3: 0.03} {
		got, err := c.SpotRate(tenor)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9)
	}
}

func TestSpotRateInterpolates(t *testing.T) {
	t.Parallel()

	c := newTestCurve(t)
	got, err := c.SpotRate(1.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0225, got, 1e-12)
}

func TestSpotRateExtrapolatesOutsideRange(t *testing.T) {
	t.Parallel()

	c := newTestCurve(t)
	// Linear extrapolation continues the last segment's 0.005/yr slope.
	got, err := c.SpotRate(4)
	require.NoError(t, err)
	assert.InDelta(t, 0.035, got, 1e-12)

	got, err = c.SpotRate(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0175, got, 1e-12)
}

func TestSpotRateRejectsNonPositiveTenor(t *testing.T) {
	t.Parallel()

	c := newTestCurve(t)
	_, err := c.SpotRate(0)
	var verr *curveerr.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestConstructionSortsUnsortedInput(t *testing.T) {
	t.Parallel()

	c, err := curve.New([]float64{3, 1, 2}, []float64{0.03, 0.02, 0.025}, nil, nil, nil, "")
	require.NoError(t, err)

	rep := c.Representation()
	assert.Equal(t, []float64{1, 2, 3}, rep.Tenors)
	assert.Equal(t, []float64{0.02, 0.025, 0.03}, rep.Rates)
	assert.Equal(t, "spot", rep.CurveType)
}

func TestConstructionValidation(t *testing.T) {
	t.Parallel()

	var verr *curveerr.ValidationError

	_, err := curve.New([]float64{1, 2}, []float64{0.02}, nil, nil, nil, "")
	require.ErrorAs(t, err, &verr)

	_, err = curve.New([]float64{1, -2}, []float64{0.02, 0.025}, nil, nil, nil, "")
	require.ErrorAs(t, err, &verr)
}

func TestDiscountFactorSimple(t *testing.T) {
	t.Parallel()

	c := newTestCurve(t)
	df, err := c.DiscountFactor(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/1.02, df, 1e-9)
}

func TestDiscountFactorsDecreaseOnFlatCurve(t *testing.T) {
	t.Parallel()

	factory := curve.NewFactory(curve.NewCatalog())
	c, err := factory.CreateSpotCurve([]float64{1, 2, 5, 10}, []float64{0.03, 0.03, 0.03, 0.03}, "linear", "ACT/365", "simple")
	require.NoError(t, err)

	prev := 1.0
	for _, tenor := range []float64{0.5, 1, 2, 3, 5, 7, 10} {
		df, err := c.DiscountFactor(tenor)
		require.NoError(t, err)
		assert.Less(t, df, prev, "df at tenor %v", tenor)
		prev = df
	}
}

func TestForwardRateIdentity(t *testing.T) {
	t.Parallel()

	c := newTestCurve(t)
	fwd, err := c.ForwardRate(1, 2)
	require.NoError(t, err)

	df1 := 1.0 / (1.0 + 0.02*1)
	df2 := 1.0 / (1.0 + 0.025*2)
	assert.InDelta(t, (df1/df2-1.0)/1.0, fwd, 1e-12)
}

func TestForwardRateRejectsInvertedInterval(t *testing.T) {
	t.Parallel()

	c := newTestCurve(t)
	_, err := c.ForwardRate(5, 2)
	var verr *curveerr.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestZeroCouponPrice(t *testing.T) {
	t.Parallel()

	c := newTestCurve(t)
	price, err := c.ZeroCouponPrice(1, 100)
	require.NoError(t, err)
	assert.InDelta(t, 100.0/1.02, price, 1e-9)
}

func TestParYieldFlatCurve(t *testing.T) {
	t.Parallel()

	factory := curve.NewFactory(curve.NewCatalog())
	c, err := factory.CreateSpotCurve([]float64{1, 2, 3}, []float64{0.03, 0.03, 0.03}, "linear", "ACT/365", "simple")
	require.NoError(t, err)

	// Par yield of a flat curve matches the flat rate to first order.
	py, err := c.ParYield(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.03, py, 5e-4)

	_, err = c.ParYield(-1, 2)
	var verr *curveerr.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSpotRateBetweenUsesDayCount(t *testing.T) {
	t.Parallel()

	c := newTestCurve(t)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 365) // exactly 1y under ACT/365

	got, err := c.SpotRateBetween(start, end)
	require.NoError(t, err)
	assert.InDelta(t, 0.02, got, 1e-9)
}
