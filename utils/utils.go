// Package utils holds small numeric and parsing helpers shared across the
// curve engine.
package utils

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// RoundTo rounds a float to the specified decimal places.
func RoundTo(val float64, decimals uint32) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}

// ParseTenor converts tenor strings like "1W", "3M", "10Y" to year fractions.
// Bare numbers are read as years. Returns 0 for unparseable input.
func ParseTenor(tenor string) float64 {
	tenor = strings.TrimSpace(strings.ToUpper(tenor))
	if strings.HasSuffix(tenor, "W") {
		v, _ := strconv.Atoi(strings.TrimSuffix(tenor, "W"))
		return float64(v) * 7.0 / 365.0
	}
	if strings.HasSuffix(tenor, "M") {
		v, _ := strconv.Atoi(strings.TrimSuffix(tenor, "M"))
		return float64(v) / 12.0
	}
	if strings.HasSuffix(tenor, "Y") {
		v, _ := strconv.Atoi(strings.TrimSuffix(tenor, "Y"))
		return float64(v)
	}
	if strings.HasSuffix(tenor, "D") {
		v, _ := strconv.Atoi(strings.TrimSuffix(tenor, "D"))
		return float64(v) / 365.0
	}
	if v, err := strconv.ParseFloat(tenor, 64); err == nil {
		return v
	}
	return 0
}

// EnsureSortedUnique sorts the tenor/rate pairs by tenor ascending and drops
// duplicate tenors, keeping the first occurrence. The sort is stable so the
// caller's ordering decides which duplicate survives.
func EnsureSortedUnique(tenors, rates []float64) ([]float64, []float64) {
	n := len(tenors)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return tenors[idx[a]] < tenors[idx[b]]
	})

	outTenors := make([]float64, 0, n)
	outRates := make([]float64, 0, n)
	for _, i := range idx {
		if len(outTenors) > 0 && tenors[i] == outTenors[len(outTenors)-1] {
			continue
		}
		outTenors = append(outTenors, tenors[i])
		outRates = append(outRates, rates[i])
	}
	return outTenors, outRates
}
