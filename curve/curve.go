// Package curve holds the yield-curve value object, the strategy catalog and
// the factories that assemble curves from market instruments.
//
// A Curve is immutable after construction: the tenor/rate arrays are copied
// in, and the bound strategies are stateless, so curves may be built and
// queried concurrently without coordination.
package curve

import (
	"math"
	"sort"
	"time"

	"github.com/meenmo/curvelib/compounding"
	"github.com/meenmo/curvelib/curveerr"
	"github.com/meenmo/curvelib/daycount"
	"github.com/meenmo/curvelib/interpolation"
)

// tenorMatchTol is the absolute tolerance for treating a queried tenor as an
// exact curve node.
const tenorMatchTol = 1e-9

// Curve is a spot yield curve: sorted tenors (years) with index-aligned
// rates, plus the bound interpolation, day-count and compounding strategies.
type Curve struct {
	tenors    []float64
	rates     []float64
	curveType string
	interp    interpolation.Interpolator
	dayCount  daycount.Convention
	comp      compounding.Convention
}

// Representation is the curve's only externally visible form. Strategies are
// not serialized; they are re-selected by name at reconstruction time.
type Representation struct {
	Tenors    []float64 `json:"tenors" yaml:"tenors"`
	Rates     []float64 `json:"rates" yaml:"rates"`
	CurveType string    `json:"curve_type" yaml:"curve_type"`
}

// New builds a curve from tenor/rate points. Inputs are copied and stable-
// sorted by tenor ascending. Nil strategies fall back to linear
// interpolation, ACT/365 and simple compounding; an empty curveType becomes
// "spot".
func New(tenors, rates []float64, interp interpolation.Interpolator, dc daycount.Convention, comp compounding.Convention, curveType string) (*Curve, error) {
	if len(tenors) != len(rates) {
		return nil, curveerr.Validationf("tenors and rates must have the same length, got %d and %d", len(tenors), len(rates))
	}
	for _, t := range tenors {
		if t <= 0 {
			return nil, curveerr.Validationf("tenors must be positive, got %v", t)
		}
	}

	c := &Curve{
		tenors:    append([]float64(nil), tenors...),
		rates:     append([]float64(nil), rates...),
		curveType: curveType,
		interp:    interp,
		dayCount:  dc,
		comp:      comp,
	}
	if c.curveType == "" {
		c.curveType = "spot"
	}
	if c.interp == nil {
		c.interp = interpolation.Linear{}
	}
	if c.dayCount == nil {
		c.dayCount = daycount.ACT365{}
	}
	if c.comp == nil {
		c.comp = compounding.Simple{}
	}

	// Sort both arrays by tenor, rates following their tenor.
	idx := make([]int, len(c.tenors))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return c.tenors[idx[a]] < c.tenors[idx[b]] })
	sortedTenors := make([]float64, len(idx))
	sortedRates := make([]float64, len(idx))
	for i, j := range idx {
		sortedTenors[i] = c.tenors[j]
		sortedRates[i] = c.rates[j]
	}
	c.tenors = sortedTenors
	c.rates = sortedRates

	return c, nil
}

// SpotRate returns the rate at the given tenor: the stored rate on an exact
// node match, the bound interpolator's extrapolation outside the node range,
// and its interpolation in between.
func (c *Curve) SpotRate(tenor float64) (float64, error) {
	if tenor <= 0 {
		return 0, curveerr.Validationf("tenor must be positive, got %v", tenor)
	}
	for i, t := range c.tenors {
		if math.Abs(t-tenor) <= tenorMatchTol {
			return c.rates[i], nil
		}
	}
	if len(c.tenors) == 0 {
		return 0, curveerr.Validationf("curve has no points")
	}
	if tenor < c.tenors[0] || tenor > c.tenors[len(c.tenors)-1] {
		return c.interp.Extrapolate(c.tenors, c.rates, tenor), nil
	}
	return c.interp.Interpolate(c.tenors, c.rates, tenor), nil
}

// DiscountFactor returns the discount factor at tenor under the bound
// compounding convention.
func (c *Curve) DiscountFactor(tenor float64) (float64, error) {
	rate, err := c.SpotRate(tenor)
	if err != nil {
		return 0, err
	}
	return c.comp.DiscountFactor(rate, tenor), nil
}

// ForwardRate returns the rate implied between t1 and t2 (t2 > t1) by the
// spot curve under the bound compounding convention.
func (c *Curve) ForwardRate(t1, t2 float64) (float64, error) {
	if t2 <= t1 {
		return 0, curveerr.Validationf("forward rate requires t2 > t1, got t1=%v t2=%v", t1, t2)
	}
	r1, err := c.SpotRate(t1)
	if err != nil {
		return 0, err
	}
	r2, err := c.SpotRate(t2)
	if err != nil {
		return 0, err
	}
	return c.comp.ForwardRate(r1, t1, r2, t2), nil
}

// ZeroCouponPrice prices a zero-coupon bond paying faceValue at tenor.
func (c *Curve) ZeroCouponPrice(tenor, faceValue float64) (float64, error) {
	df, err := c.DiscountFactor(tenor)
	if err != nil {
		return 0, err
	}
	return faceValue * df, nil
}

// ParYield returns the coupon rate (decimal) at which a bond of the given
// maturity and coupon frequency prices at par on this curve.
func (c *Curve) ParYield(maturity float64, frequency int) (float64, error) {
	if maturity <= 0 {
		return 0, curveerr.Validationf("maturity must be positive, got %v", maturity)
	}
	if frequency <= 0 {
		frequency = 2
	}
	periods := int(math.Round(maturity * float64(frequency)))
	if periods == 0 {
		return 0, curveerr.Validationf("maturity %v too short for frequency %d", maturity, frequency)
	}

	annuity := 0.0
	dfFinal := 0.0
	for n := 1; n <= periods; n++ {
		t := float64(n) / float64(frequency)
		df, err := c.DiscountFactor(t)
		if err != nil {
			return 0, err
		}
		annuity += df
		dfFinal = df
	}
	return float64(frequency) * (1.0 - dfFinal) / annuity, nil
}

// SpotRateBetween converts the date span to a tenor with the bound day-count
// convention and returns the spot rate at that tenor.
func (c *Curve) SpotRateBetween(start, end time.Time) (float64, error) {
	return c.SpotRate(c.dayCount.YearFraction(start, end))
}

// YearFraction exposes the bound day-count convention.
func (c *Curve) YearFraction(start, end time.Time) float64 {
	return c.dayCount.YearFraction(start, end)
}

// Representation serializes the curve points and type tag.
func (c *Curve) Representation() Representation {
	return Representation{
		Tenors:    append([]float64(nil), c.tenors...),
		Rates:     append([]float64(nil), c.rates...),
		CurveType: c.curveType,
	}
}
