package curve

import "github.com/meenmo/curvelib/bootstrap"

// Default strategy names applied when a caller leaves a name empty.
const (
	DefaultInterpolation     = "linear"
	DefaultBondInterpolation = "cubic_spline"
	DefaultDayCount          = "ACT/365"
	DefaultCompounding       = "simple"
)

// Factory constructs curves with strategies resolved from an explicit
// catalog, passed in by reference instead of reached through global state.
type Factory struct {
	catalog *Catalog
}

func NewFactory(catalog *Catalog) *Factory {
	return &Factory{catalog: catalog}
}

// Catalog returns the catalog the factory resolves strategies from.
func (f *Factory) Catalog() *Catalog { return f.catalog }

// CreateCurve resolves the named strategies and builds a curve tagged with
// curveType. Empty strategy names fall back to the package defaults.
func (f *Factory) CreateCurve(tenors, rates []float64, interpolationName, dayCountName, compoundingName, curveType string) (*Curve, error) {
	if interpolationName == "" {
		interpolationName = DefaultInterpolation
	}
	if dayCountName == "" {
		dayCountName = DefaultDayCount
	}
	if compoundingName == "" {
		compoundingName = DefaultCompounding
	}

	interp, err := f.catalog.Interpolator(interpolationName)
	if err != nil {
		return nil, err
	}
	dc, err := f.catalog.DayCount(dayCountName)
	if err != nil {
		return nil, err
	}
	comp, err := f.catalog.Compounding(compoundingName)
	if err != nil {
		return nil, err
	}
	return New(tenors, rates, interp, dc, comp, curveType)
}

// CreateSpotCurve builds a "spot" curve directly from tenor/rate points.
func (f *Factory) CreateSpotCurve(tenors, rates []float64, interpolationName, dayCountName, compoundingName string) (*Curve, error) {
	return f.CreateCurve(tenors, rates, interpolationName, dayCountName, compoundingName, "spot")
}

// CreateFromBonds bootstraps a spot curve from coupon bond quotes. An empty
// bootstrapperName selects "bond"; an empty interpolation defaults to
// cubic_spline, the usual choice for stripped bond curves.
func (f *Factory) CreateFromBonds(bonds []bootstrap.Bond, bootstrapperName, interpolationName, dayCountName, compoundingName string) (*Curve, error) {
	if bootstrapperName == "" {
		bootstrapperName = "bond"
	}
	if interpolationName == "" {
		interpolationName = DefaultBondInterpolation
	}
	instruments := make([]bootstrap.Instrument, len(bonds))
	for i, b := range bonds {
		instruments[i] = b
	}
	return f.createFromInstruments(instruments, bootstrapperName, interpolationName, dayCountName, compoundingName)
}

// CreateFromDeposits bootstraps a spot curve from money-market deposit
// quotes. An empty bootstrapperName selects "deposit".
func (f *Factory) CreateFromDeposits(deposits []bootstrap.Deposit, bootstrapperName, interpolationName, dayCountName, compoundingName string) (*Curve, error) {
	if bootstrapperName == "" {
		bootstrapperName = "deposit"
	}
	instruments := make([]bootstrap.Instrument, len(deposits))
	for i, d := range deposits {
		instruments[i] = d
	}
	return f.createFromInstruments(instruments, bootstrapperName, interpolationName, dayCountName, compoundingName)
}

func (f *Factory) createFromInstruments(instruments []bootstrap.Instrument, bootstrapperName, interpolationName, dayCountName, compoundingName string) (*Curve, error) {
	bootstrapper, err := f.catalog.Bootstrapper(bootstrapperName)
	if err != nil {
		return nil, err
	}
	tenors, rates, err := bootstrapper.Bootstrap(instruments)
	if err != nil {
		return nil, err
	}
	return f.CreateSpotCurve(tenors, rates, interpolationName, dayCountName, compoundingName)
}
