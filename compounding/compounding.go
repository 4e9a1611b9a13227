// Package compounding implements the conventions relating a rate and tenor to
// a discount factor, and the forward rates implied between two spot points.
package compounding

import (
	"math"

	"github.com/meenmo/curvelib/curveerr"
)

// Convention maps spot rates to discount factors and implied forwards.
// Implementations are stateless; ForwardRate assumes the caller guarantees
// t2 != t1 (the curve validates ordering before delegating).
type Convention interface {
	DiscountFactor(rate, tenor float64) float64
	ForwardRate(r1, t1, r2, t2 float64) float64
}

// Simple is simple (linear) interest: df = 1 / (1 + r*t).
type Simple struct{}

func (Simple) DiscountFactor(rate, tenor float64) float64 {
	return 1.0 / (1.0 + rate*tenor)
}

func (s Simple) ForwardRate(r1, t1, r2, t2 float64) float64 {
	df1 := s.DiscountFactor(r1, t1)
	df2 := s.DiscountFactor(r2, t2)
	return (df1/df2 - 1.0) / (t2 - t1)
}

// Continuous is continuous compounding: df = exp(-r*t).
type Continuous struct{}

func (Continuous) DiscountFactor(rate, tenor float64) float64 {
	return math.Exp(-rate * tenor)
}

func (Continuous) ForwardRate(r1, t1, r2, t2 float64) float64 {
	return (r2*t2 - r1*t1) / (t2 - t1)
}

// ForwardRateFromDFs returns the simple forward rate implied by two discount
// factors over (t1, t2].
func ForwardRateFromDFs(df1, df2, t1, t2 float64) (float64, error) {
	if t2 <= t1 {
		return 0, curveerr.Validationf("forward rate requires t2 > t1, got t1=%v t2=%v", t1, t2)
	}
	return (df1/df2 - 1.0) / (t2 - t1), nil
}
