package daycount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestACT365(t *testing.T) {
	t.Parallel()

	// 2024 is a leap year: 366 actual days.
	got := ACT365{}.YearFraction(date(2024, 1, 1), date(2025, 1, 1))
	assert.InDelta(t, 366.0/365.0, got, 1e-12)
}

func TestACT360(t *testing.T) {
	t.Parallel()

	got := ACT360{}.YearFraction(date(2024, 1, 1), date(2024, 7, 1))
	assert.InDelta(t, 182.0/360.0, got, 1e-12)
}

func TestReversedDatesAreNegative(t *testing.T) {
	t.Parallel()

	got := ACT365{}.YearFraction(date(2025, 1, 1), date(2024, 1, 1))
	assert.InDelta(t, -366.0/365.0, got, 1e-12)
}

func TestThirty360(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		start, end time.Time
		want       float64
	}{
		{"month-end to month-end", date(2024, 1, 31), date(2024, 7, 31), 180.0 / 360.0},
		{"mid-month", date(2024, 1, 15), date(2024, 2, 15), 30.0 / 360.0},
		{"start on 31st caps both", date(2024, 1, 31), date(2024, 3, 15), 45.0 / 360.0},
		{"end on 31st kept when start below 30", date(2024, 1, 15), date(2024, 1, 31), 16.0 / 360.0},
		{"full year", date(2024, 3, 1), date(2025, 3, 1), 1.0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tc.want, Thirty360{}.YearFraction(tc.start, tc.end), 1e-12)
		})
	}
}
