package curve_test

import (
	"testing"

	"github.com/meenmo/curvelib/bootstrap"
	"github.com/meenmo/curvelib/curve"
	"github.com/meenmo/curvelib/curveerr"
	"github.com/meenmo/curvelib/interpolation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	cat := curve.NewCatalog()

	for _, name := range []string{"linear", "LINEAR", "Linear"} {
		_, err := cat.Interpolator(name)
		assert.NoError(t, err, "name %q", name)
	}
	_, err := cat.DayCount("act/365")
	assert.NoError(t, err)
	_, err = cat.Compounding("Continuous")
	assert.NoError(t, err)
	_, err = cat.Bootstrapper("BOND")
	assert.NoError(t, err)
}

func TestCatalogUnknownStrategyListsAvailable(t *testing.T) {
	t.Parallel()

	cat := curve.NewCatalog()
	_, err := cat.Interpolator("bogus")

	var uerr *curveerr.UnknownStrategyError
	require.ErrorAs(t, err, &uerr)
	assert.ElementsMatch(t, []string{"linear", "cubic_spline", "log_linear"}, uerr.Available)
	assert.Contains(t, err.Error(), "cubic_spline, linear, log_linear")
}

func TestFactoryUnknownStrategy(t *testing.T) {
	t.Parallel()

	factory := curve.NewFactory(curve.NewCatalog())
	var uerr *curveerr.UnknownStrategyError

	_, err := factory.CreateSpotCurve([]float64{1}, []float64{0.02}, "bogus", "ACT/365", "simple")
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "interpolation", uerr.Kind)

	_, err = factory.CreateSpotCurve([]float64{1}, []float64{0.02}, "linear", "ACT/252", "simple")
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "day count", uerr.Kind)

	_, err = factory.CreateFromDeposits([]bootstrap.Deposit{{Maturity: 1, Rate: 0.02}}, "swap", "", "", "")
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "bootstrapper", uerr.Kind)
}

func TestCatalogExtension(t *testing.T) {
	t.Parallel()

	cat := curve.NewCatalog()
	cat.RegisterInterpolator("flat", func() interpolation.Interpolator { return interpolation.LogLinear{} })

	_, err := cat.Interpolator("flat")
	assert.NoError(t, err)
}

func TestCreateFromBondsEndToEnd(t *testing.T) {
	t.Parallel()

	factory := curve.NewFactory(curve.NewCatalog())
	c, err := factory.CreateFromBonds([]bootstrap.Bond{
		{Maturity: 1, Coupon: 0, Price: 100.0 / 1.02},
		{Maturity: 2, Coupon: 0, Price: 90},
	}, "", "linear", "", "")
	require.NoError(t, err)

	got, err := c.SpotRate(2)
	require.NoError(t, err)
	assert.InDelta(t, (100.0/90.0-1.0)/2.0, got, 1e-9)
}

func TestCreateFromDepositsEndToEnd(t *testing.T) {
	t.Parallel()

	factory := curve.NewFactory(curve.NewCatalog())
	c, err := factory.CreateFromDeposits([]bootstrap.Deposit{
		{Maturity: 0.5, Rate: 0.021},
		{Maturity: 0.25, Rate: 0.02},
	}, "", "", "", "")
	require.NoError(t, err)

	rep := c.Representation()
	assert.Equal(t, []float64{0.25, 0.5}, rep.Tenors)
	assert.Equal(t, []float64{0.02, 0.021}, rep.Rates)
}
