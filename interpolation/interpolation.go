// Package interpolation implements the rate interpolation and extrapolation
// strategies a yield curve dispatches its off-node queries to.
//
// Tenors are assumed sorted ascending (the curve guarantees this at
// construction). All strategies are stateless and safe to share.
package interpolation

import "sort"

// Interpolator evaluates a rate curve at an arbitrary tenor.
//
// Interpolate is intended for targets inside [tenors[0], tenors[len-1]]; when
// handed an out-of-range target it clamps to the boundary value, which the
// bond bootstrapper relies on while the curve is still growing. Extrapolate
// handles targets outside the range. With fewer than two points both return
// the single known rate.
type Interpolator interface {
	Interpolate(tenors, rates []float64, target float64) float64
	Extrapolate(tenors, rates []float64, target float64) float64
}

// lerpClamped is piecewise-linear interpolation with flat clamping outside
// the node range. Requires len(tenors) >= 2.
func lerpClamped(tenors, rates []float64, target float64) float64 {
	n := len(tenors)
	if target <= tenors[0] {
		return rates[0]
	}
	if target >= tenors[n-1] {
		return rates[n-1]
	}
	i := sort.SearchFloat64s(tenors, target)
	x0, x1 := tenors[i-1], tenors[i]
	y0, y1 := rates[i-1], rates[i]
	return y0 + (y1-y0)*(target-x0)/(x1-x0)
}
