package index

import (
	"sort"
	"strings"

	"github.com/meenmo/curvelib/bootstrap"
	"github.com/meenmo/curvelib/curve"
	"github.com/meenmo/curvelib/curveerr"
	"github.com/meenmo/curvelib/utils"
)

// CurveFactory builds yield curves from index fixings, filling in each
// index's default conventions where the caller does not override them.
type CurveFactory struct {
	factory  *curve.Factory
	registry *Registry
}

// NewCurveFactory wires the index bootstrapper into the catalog under the
// name "index" and returns a factory bound to the given registry.
func NewCurveFactory(catalog *curve.Catalog, registry *Registry) *CurveFactory {
	catalog.RegisterBootstrapper("index", func() bootstrap.Bootstrapper { return NewBootstrapper(registry) })
	return &CurveFactory{factory: curve.NewFactory(catalog), registry: registry}
}

// CreateFromIndex builds a curve from fixings of a single index. Empty
// dayCountName/compoundingName fall back to the index's defaults; an empty
// interpolationName defaults to cubic_spline.
func (f *CurveFactory) CreateFromIndex(indexCode string, observations []Observation, interpolationName, dayCountName, compoundingName string) (*curve.Curve, error) {
	ix, ok := f.registry.Get(indexCode)
	if !ok {
		return nil, &curveerr.UnknownStrategyError{Kind: "index", Name: indexCode, Available: f.registry.Codes()}
	}

	tagged := make([]bootstrap.Instrument, len(observations))
	for i, obs := range observations {
		obs.Index = ix.Code
		tagged[i] = obs
	}

	tenors, rates, err := NewBootstrapper(f.registry).Bootstrap(tagged)
	if err != nil {
		return nil, err
	}

	if interpolationName == "" {
		interpolationName = curve.DefaultBondInterpolation
	}
	if dayCountName == "" {
		dayCountName = ix.DayCount
	}
	if compoundingName == "" {
		compoundingName = ix.Compounding
	}
	return f.factory.CreateCurve(tenors, rates, interpolationName, dayCountName, compoundingName, "index_based")
}

// CreateFromMultipleIndexes flattens fixings from several indexes into one
// curve. Observations from primaryIndex win equal-tenor ties; duplicate
// tenors are collapsed keeping the first occurrence. When primaryIndex is set
// its conventions serve as the defaults for unset day count and compounding.
func (f *CurveFactory) CreateFromMultipleIndexes(ratesByIndex map[string][]Observation, primaryIndex, interpolationName, dayCountName, compoundingName string) (*curve.Curve, error) {
	var all []Observation
	for code, observations := range ratesByIndex {
		for _, obs := range observations {
			obs.Index = code
			all = append(all, obs)
		}
	}

	if primaryIndex != "" {
		primary := strings.ToUpper(primaryIndex)
		// Primary-index entries ahead of the rest; the bootstrapper's stable
		// tenor sort then resolves equal-tenor ties in the primary's favor.
		sort.SliceStable(all, func(i, j int) bool {
			pi := strings.ToUpper(all[i].Index) == primary
			pj := strings.ToUpper(all[j].Index) == primary
			if pi != pj {
				return pi
			}
			return all[i].Tenor < all[j].Tenor
		})

		ix, ok := f.registry.Get(primary)
		if !ok {
			return nil, &curveerr.UnknownStrategyError{Kind: "index", Name: primaryIndex, Available: f.registry.Codes()}
		}
		if dayCountName == "" {
			dayCountName = ix.DayCount
		}
		if compoundingName == "" {
			compoundingName = ix.Compounding
		}
	}

	instruments := make([]bootstrap.Instrument, len(all))
	for i, obs := range all {
		instruments[i] = obs
	}
	tenors, rates, err := NewBootstrapper(f.registry).Bootstrap(instruments)
	if err != nil {
		return nil, err
	}
	tenors, rates = utils.EnsureSortedUnique(tenors, rates)

	if interpolationName == "" {
		interpolationName = curve.DefaultBondInterpolation
	}
	return f.factory.CreateCurve(tenors, rates, interpolationName, dayCountName, compoundingName, "index_based")
}
