package curve

import (
	"strings"

	"github.com/meenmo/curvelib/bootstrap"
	"github.com/meenmo/curvelib/compounding"
	"github.com/meenmo/curvelib/curveerr"
	"github.com/meenmo/curvelib/daycount"
	"github.com/meenmo/curvelib/interpolation"
)

// Catalog maps strategy names to constructors for each strategy family.
// Lookups are case-insensitive. A catalog is meant to be populated once at
// process start and treated as read-only afterwards; concurrent registration
// is not synchronized.
type Catalog struct {
	interpolators map[string]func() interpolation.Interpolator
	dayCounts     map[string]func() daycount.Convention
	compoundings  map[string]func() compounding.Convention
	bootstrappers map[string]func() bootstrap.Bootstrapper
}

// NewCatalog returns a catalog pre-populated with the standard strategies:
// interpolation linear/cubic_spline/log_linear, day counts ACT/365, ACT/360,
// 30/360, compounding simple/continuous and the bond/deposit bootstrappers.
func NewCatalog() *Catalog {
	c := &Catalog{
		interpolators: map[string]func() interpolation.Interpolator{},
		dayCounts:     map[string]func() daycount.Convention{},
		compoundings:  map[string]func() compounding.Convention{},
		bootstrappers: map[string]func() bootstrap.Bootstrapper{},
	}

	c.RegisterInterpolator("linear", func() interpolation.Interpolator { return interpolation.Linear{} })
	c.RegisterInterpolator("cubic_spline", func() interpolation.Interpolator { return interpolation.CubicSpline{} })
	c.RegisterInterpolator("log_linear", func() interpolation.Interpolator { return interpolation.LogLinear{} })

	c.RegisterDayCount("ACT/365", func() daycount.Convention { return daycount.ACT365{} })
	c.RegisterDayCount("ACT/360", func() daycount.Convention { return daycount.ACT360{} })
	c.RegisterDayCount("30/360", func() daycount.Convention { return daycount.Thirty360{} })

	c.RegisterCompounding("simple", func() compounding.Convention { return compounding.Simple{} })
	c.RegisterCompounding("continuous", func() compounding.Convention { return compounding.Continuous{} })

	c.RegisterBootstrapper("bond", func() bootstrap.Bootstrapper { return bootstrap.NewBondBootstrapper() })
	c.RegisterBootstrapper("deposit", func() bootstrap.Bootstrapper { return bootstrap.NewDepositBootstrapper() })

	return c
}

func (c *Catalog) RegisterInterpolator(name string, ctor func() interpolation.Interpolator) {
	c.interpolators[strings.ToLower(name)] = ctor
}

func (c *Catalog) RegisterDayCount(name string, ctor func() daycount.Convention) {
	c.dayCounts[strings.ToLower(name)] = ctor
}

func (c *Catalog) RegisterCompounding(name string, ctor func() compounding.Convention) {
	c.compoundings[strings.ToLower(name)] = ctor
}

func (c *Catalog) RegisterBootstrapper(name string, ctor func() bootstrap.Bootstrapper) {
	c.bootstrappers[strings.ToLower(name)] = ctor
}

// Interpolator resolves an interpolation strategy by name.
func (c *Catalog) Interpolator(name string) (interpolation.Interpolator, error) {
	ctor, ok := c.interpolators[strings.ToLower(name)]
	if !ok {
		return nil, &curveerr.UnknownStrategyError{Kind: "interpolation", Name: name, Available: keys(c.interpolators)}
	}
	return ctor(), nil
}

// DayCount resolves a day-count convention by name.
func (c *Catalog) DayCount(name string) (daycount.Convention, error) {
	ctor, ok := c.dayCounts[strings.ToLower(name)]
	if !ok {
		return nil, &curveerr.UnknownStrategyError{Kind: "day count", Name: name, Available: keys(c.dayCounts)}
	}
	return ctor(), nil
}

// Compounding resolves a compounding convention by name.
func (c *Catalog) Compounding(name string) (compounding.Convention, error) {
	ctor, ok := c.compoundings[strings.ToLower(name)]
	if !ok {
		return nil, &curveerr.UnknownStrategyError{Kind: "compounding", Name: name, Available: keys(c.compoundings)}
	}
	return ctor(), nil
}

// Bootstrapper resolves a bootstrapping strategy by name.
func (c *Catalog) Bootstrapper(name string) (bootstrap.Bootstrapper, error) {
	ctor, ok := c.bootstrappers[strings.ToLower(name)]
	if !ok {
		return nil, &curveerr.UnknownStrategyError{Kind: "bootstrapper", Name: name, Available: keys(c.bootstrappers)}
	}
	return ctor(), nil
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
