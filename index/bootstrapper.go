package index

import (
	"sort"
	"strings"

	"github.com/meenmo/curvelib/bootstrap"
	"github.com/meenmo/curvelib/curveerr"
)

// Observation is a single index fixing: the benchmark code, the tenor in
// years and the observed rate as a decimal.
type Observation struct {
	Index string
	Tenor float64
	Rate  float64
}

func (o Observation) YearsToMaturity() float64 { return o.Tenor }

// Bootstrapper turns index fixings into curve points. It validates every
// observation's code against the registry and sorts by tenor, but returns the
// fixings as spot rates directly: there is no curve stripping here. A real
// trading system would bootstrap each index from futures- or swap-implied
// instruments; this aggregation step deliberately does not.
type Bootstrapper struct {
	registry *Registry
}

func NewBootstrapper(registry *Registry) *Bootstrapper {
	return &Bootstrapper{registry: registry}
}

func (b *Bootstrapper) Bootstrap(instruments []bootstrap.Instrument) ([]float64, []float64, error) {
	if len(instruments) == 0 {
		return nil, nil, curveerr.Validationf("no index data provided for bootstrapping")
	}

	observations := make([]Observation, 0, len(instruments))
	for _, inst := range instruments {
		obs, ok := inst.(Observation)
		if !ok {
			return nil, nil, curveerr.Validationf("index bootstrapper: unsupported instrument type %T", inst)
		}
		code := strings.ToUpper(obs.Index)
		if _, ok := b.registry.Get(code); !ok {
			return nil, nil, &curveerr.UnknownStrategyError{Kind: "index", Name: obs.Index, Available: b.registry.Codes()}
		}
		if obs.Tenor <= 0 {
			return nil, nil, curveerr.Validationf("invalid tenor for index %s: %v", code, obs.Tenor)
		}
		obs.Index = code
		observations = append(observations, obs)
	}

	// Stable sort keeps the caller's ordering at equal tenors, which is how
	// primary-index precedence survives the merge.
	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].Tenor < observations[j].Tenor
	})

	tenors := make([]float64, len(observations))
	rates := make([]float64, len(observations))
	for i, obs := range observations {
		tenors[i] = obs.Tenor
		rates[i] = obs.Rate
	}
	return tenors, rates, nil
}
