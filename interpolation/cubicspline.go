package interpolation

import "sort"

// CubicSpline fits a natural cubic spline (zero second derivative at both
// boundaries) through all nodes. Extrapolation continues linearly along the
// spline's boundary slope rather than the raw boundary polynomial, which
// diverges quickly outside the data range.
//
// The spline is refit on every call; node counts on rate curves are small
// enough that this stays cheap.
type CubicSpline struct{}

func (CubicSpline) Interpolate(tenors, rates []float64, target float64) float64 {
	if len(tenors) < 2 {
		if len(rates) > 0 {
			return rates[0]
		}
		return 0
	}
	m := naturalSecondDerivs(tenors, rates)
	return splineEval(tenors, rates, m, target)
}

func (CubicSpline) Extrapolate(tenors, rates []float64, target float64) float64 {
	n := len(tenors)
	if n < 2 {
		if len(rates) > 0 {
			return rates[0]
		}
		return 0
	}
	m := naturalSecondDerivs(tenors, rates)

	if target < tenors[0] {
		h := tenors[1] - tenors[0]
		// Natural boundary: m[0] = 0.
		slope := (rates[1]-rates[0])/h - h*m[1]/6.0
		return rates[0] + slope*(target-tenors[0])
	}
	h := tenors[n-1] - tenors[n-2]
	slope := (rates[n-1]-rates[n-2])/h + h*m[n-2]/6.0
	return rates[n-1] + slope*(target-tenors[n-1])
}

// naturalSecondDerivs solves the tridiagonal system for the spline's second
// derivatives at each node, with natural boundary conditions.
func naturalSecondDerivs(x, y []float64) []float64 {
	n := len(x)
	m := make([]float64, n)
	if n < 3 {
		return m
	}

	// Interior equations:
	// h[i-1]*m[i-1] + 2(h[i-1]+h[i])*m[i] + h[i]*m[i+1] = rhs[i]
	diag := make([]float64, n)
	upper := make([]float64, n)
	rhs := make([]float64, n)
	for i := 1; i < n-1; i++ {
		h0 := x[i] - x[i-1]
		h1 := x[i+1] - x[i]
		diag[i] = 2.0 * (h0 + h1)
		upper[i] = h1
		rhs[i] = 6.0 * ((y[i+1]-y[i])/h1 - (y[i]-y[i-1])/h0)
	}

	// Thomas algorithm over m[1..n-2]; m[0] and m[n-1] stay zero.
	for i := 2; i < n-1; i++ {
		lower := x[i] - x[i-1]
		w := lower / diag[i-1]
		diag[i] -= w * upper[i-1]
		rhs[i] -= w * rhs[i-1]
	}
	for i := n - 2; i >= 1; i-- {
		m[i] = (rhs[i] - upper[i]*m[i+1]) / diag[i]
	}
	return m
}

// splineEval evaluates the spline at target. Out-of-range targets evaluate
// the boundary polynomial.
func splineEval(x, y, m []float64, target float64) float64 {
	n := len(x)
	i := sort.SearchFloat64s(x, target) - 1
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}

	h := x[i+1] - x[i]
	a := (x[i+1] - target) / h
	b := (target - x[i]) / h
	return a*y[i] + b*y[i+1] + ((a*a*a-a)*m[i]+(b*b*b-b)*m[i+1])*h*h/6.0
}
