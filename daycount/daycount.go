// Package daycount implements day-count conventions for converting calendar
// date spans into year fractions.
//
// All conventions are stateless and safe to share across goroutines. An end
// date before the start date yields a negative fraction.
package daycount

import "time"

// Convention computes the year fraction between two dates.
type Convention interface {
	YearFraction(start, end time.Time) float64
}

// ACT365 is the Actual/365 Fixed convention.
type ACT365 struct{}

func (ACT365) YearFraction(start, end time.Time) float64 {
	days := end.Sub(start).Hours() / 24
	return days / 365.0
}

// ACT360 is the Actual/360 money-market convention.
type ACT360 struct{}

func (ACT360) YearFraction(start, end time.Time) float64 {
	days := end.Sub(start).Hours() / 24
	return days / 360.0
}

// Thirty360 is the 30/360 US (bond basis) convention: day-of-month capped at
// 30, with the end day capped only when the capped start day is 30.
type Thirty360 struct{}

func (Thirty360) YearFraction(start, end time.Time) float64 {
	d1 := start.Day()
	if d1 > 30 {
		d1 = 30
	}
	d2 := end.Day()
	if d1 == 30 && d2 > 30 {
		d2 = 30
	}
	y1, m1 := start.Year(), int(start.Month())
	y2, m2 := end.Year(), int(end.Month())
	return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
}
