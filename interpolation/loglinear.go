package interpolation

import "math"

// rateFloor guards the log transform against zero or negative rates.
const rateFloor = 1e-8

// LogLinear interpolates linearly in log-rate space and exponentiates back.
// Extrapolation is flat at the nearest endpoint rate.
type LogLinear struct{}

func (LogLinear) Interpolate(tenors, rates []float64, target float64) float64 {
	if len(tenors) < 2 {
		if len(rates) > 0 {
			return rates[0]
		}
		return 0
	}
	logRates := make([]float64, len(rates))
	for i, r := range rates {
		logRates[i] = math.Log(math.Max(r, rateFloor))
	}
	return math.Exp(lerpClamped(tenors, logRates, target))
}

func (LogLinear) Extrapolate(tenors, rates []float64, target float64) float64 {
	if len(rates) == 0 {
		return 0
	}
	if target < tenors[0] {
		return rates[0]
	}
	return rates[len(rates)-1]
}
