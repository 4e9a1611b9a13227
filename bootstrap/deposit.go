package bootstrap

import (
	"sort"

	"github.com/meenmo/curvelib/curveerr"
)

// DepositBootstrapper builds curve points from money-market deposit quotes.
// Deposit rates are already spot rates, so this is a sort-and-validate
// pass-through with no root-finding.
type DepositBootstrapper struct{}

func NewDepositBootstrapper() *DepositBootstrapper { return &DepositBootstrapper{} }

func (*DepositBootstrapper) Bootstrap(instruments []Instrument) ([]float64, []float64, error) {
	if len(instruments) == 0 {
		return nil, nil, curveerr.Validationf("no deposit data provided for bootstrapping")
	}

	deposits := make([]Deposit, 0, len(instruments))
	for _, inst := range instruments {
		deposit, ok := inst.(Deposit)
		if !ok {
			return nil, nil, curveerr.Validationf("deposit bootstrapper: unsupported instrument type %T", inst)
		}
		if deposit.Maturity <= 0 {
			return nil, nil, curveerr.Validationf("deposit maturity must be positive, got %v", deposit.Maturity)
		}
		deposits = append(deposits, deposit)
	}
	sort.SliceStable(deposits, func(i, j int) bool { return deposits[i].Maturity < deposits[j].Maturity })

	tenors := make([]float64, len(deposits))
	rates := make([]float64, len(deposits))
	for i, d := range deposits {
		tenors[i] = d.Maturity
		rates[i] = d.Rate
	}
	return tenors, rates, nil
}
