// Package bootstrap derives (tenor, spot-rate) curve points from raw market
// instruments: coupon bonds via recursive root-finding, money-market deposits
// via direct pass-through. Index fixings are handled by package index, which
// implements the same Bootstrapper contract.
package bootstrap

// Instrument is a raw market observation accepted by a Bootstrapper.
type Instrument interface {
	// YearsToMaturity returns the instrument's time to maturity in years.
	YearsToMaturity() float64
}

// Bootstrapper derives sorted (tenors, rates) arrays from instruments.
// Implementations reject empty input and instrument types they do not price.
type Bootstrapper interface {
	Bootstrap(instruments []Instrument) (tenors, rates []float64, err error)
}

// Bond is a coupon bond quote. Coupon is the annual rate as a decimal,
// Price and FaceValue share the same unit basis.
type Bond struct {
	Maturity  float64
	Coupon    float64
	Price     float64
	Frequency int     // coupons per year; 0 means the market default of 2
	FaceValue float64 // 0 means the market default of 100
}

func (b Bond) YearsToMaturity() float64 { return b.Maturity }

// frequency returns the coupon frequency with the semi-annual default applied.
func (b Bond) frequency() int {
	if b.Frequency <= 0 {
		return 2
	}
	return b.Frequency
}

// faceValue returns the face value with the per-100 default applied.
func (b Bond) faceValue() float64 {
	if b.FaceValue <= 0 {
		return 100.0
	}
	return b.FaceValue
}

// Deposit is a money-market deposit quote with a simple annualized rate.
type Deposit struct {
	Maturity float64
	Rate     float64
}

func (d Deposit) YearsToMaturity() float64 { return d.Maturity }
