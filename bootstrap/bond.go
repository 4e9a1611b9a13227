package bootstrap

import (
	"errors"
	"math"
	"sort"

	"github.com/meenmo/curvelib/compounding"
	"github.com/meenmo/curvelib/curveerr"
	"github.com/meenmo/curvelib/interpolation"
)

// Root-finder configuration for the spot-rate solve. The initial bracket is
// widened once before giving up.
const (
	bracketLow      = -0.05
	bracketHigh     = 0.50
	wideBracketLow  = -0.10
	wideBracketHigh = 1.00
	priceTolerance  = 1e-10
	solveMaxIter    = 100
	wideMaxIter     = 200
)

// BondBootstrapper strips a spot curve from coupon bond prices.
//
// Bonds are processed in increasing maturity order. For each bond the solver
// finds the single spot rate at the bond's maturity that reprices it, while
// cash flows before that maturity are discounted at rates interpolated from
// the points already solved. Zero-coupon bonds and bonds inside one year are
// solved closed-form.
type BondBootstrapper struct {
	comp   compounding.Convention
	interp interpolation.Interpolator
}

// NewBondBootstrapper returns a bootstrapper using simple compounding and
// linear interpolation over the growing curve, the market-standard pairing
// for stripping government coupon curves.
func NewBondBootstrapper() *BondBootstrapper {
	return &BondBootstrapper{comp: compounding.Simple{}, interp: interpolation.Linear{}}
}

func (bb *BondBootstrapper) Bootstrap(instruments []Instrument) ([]float64, []float64, error) {
	if len(instruments) == 0 {
		return nil, nil, curveerr.Validationf("no bond data provided for bootstrapping")
	}

	bonds := make([]Bond, 0, len(instruments))
	for _, inst := range instruments {
		bond, ok := inst.(Bond)
		if !ok {
			return nil, nil, curveerr.Validationf("bond bootstrapper: unsupported instrument type %T", inst)
		}
		if bond.Maturity <= 0 {
			return nil, nil, curveerr.Validationf("bond maturity must be positive, got %v", bond.Maturity)
		}
		bonds = append(bonds, bond)
	}
	sort.SliceStable(bonds, func(i, j int) bool { return bonds[i].Maturity < bonds[j].Maturity })

	tenors := make([]float64, 0, len(bonds))
	rates := make([]float64, 0, len(bonds))

	for _, bond := range bonds {
		var rate float64
		if bond.Coupon == 0 || bond.Maturity <= 1.0 {
			// Short or zero-coupon: single repayment, closed form.
			rate = (bond.faceValue()/bond.Price - 1.0) / bond.Maturity
		} else {
			var err error
			rate, err = bb.solveSpotRate(bond, tenors, rates)
			if err != nil {
				return nil, nil, err
			}
		}
		tenors = append(tenors, bond.Maturity)
		rates = append(rates, rate)
	}

	return tenors, rates, nil
}

// priceWithRate discounts the bond's cash-flow schedule, using previously
// bootstrapped points for interior flows and rate for the flow at maturity.
func (bb *BondBootstrapper) priceWithRate(bond Bond, rate float64, knownTenors, knownRates []float64) float64 {
	frequency := bond.frequency()
	faceValue := bond.faceValue()
	periods := int(math.Round(bond.Maturity * float64(frequency)))
	couponPayment := faceValue * bond.Coupon / float64(frequency)

	price := 0.0
	for n := 1; n <= periods; n++ {
		t := float64(n) / float64(frequency)
		cf := couponPayment
		if n == periods {
			cf += faceValue
		}

		var df float64
		if t < bond.Maturity && len(knownTenors) > 0 {
			interpRate := bb.interp.Interpolate(knownTenors, knownRates, t)
			df = bb.comp.DiscountFactor(interpRate, t)
		} else {
			df = bb.comp.DiscountFactor(rate, t)
		}
		price += cf * df
	}
	return price
}

func (bb *BondBootstrapper) solveSpotRate(bond Bond, knownTenors, knownRates []float64) (float64, error) {
	objective := func(r float64) float64 {
		return bb.priceWithRate(bond, r, knownTenors, knownRates) - bond.Price
	}

	rate, err := brent(objective, bracketLow, bracketHigh, priceTolerance, solveMaxIter)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, errNoBracket) {
		return 0, err
	}

	// Retry once with a widened bracket before raising a convergence failure.
	rate, err = brent(objective, wideBracketLow, wideBracketHigh, priceTolerance, wideMaxIter)
	if err != nil {
		return 0, curveerr.Convergencef(
			"bond bootstrap failed at maturity %v: no spot rate in [%v, %v] reprices the bond",
			bond.Maturity, wideBracketLow, wideBracketHigh)
	}
	return rate, nil
}
