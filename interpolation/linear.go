package interpolation

// Linear interpolates piecewise-linearly between bracketing nodes and
// extrapolates by continuing the slope of the nearest boundary segment.
type Linear struct{}

func (Linear) Interpolate(tenors, rates []float64, target float64) float64 {
	if len(tenors) < 2 {
		if len(rates) > 0 {
			return rates[0]
		}
		return 0
	}
	return lerpClamped(tenors, rates, target)
}

func (Linear) Extrapolate(tenors, rates []float64, target float64) float64 {
	n := len(tenors)
	if n < 2 {
		if len(rates) > 0 {
			return rates[0]
		}
		return 0
	}
	if target < tenors[0] {
		slope := (rates[1] - rates[0]) / (tenors[1] - tenors[0])
		return rates[0] + slope*(target-tenors[0])
	}
	slope := (rates[n-1] - rates[n-2]) / (tenors[n-1] - tenors[n-2])
	return rates[n-1] + slope*(target-tenors[n-1])
}
