// Package index defines interest-rate benchmark descriptors (SOFR, EURIBOR,
// SONIA, ...), the process-wide registry they live in, and the factory that
// builds yield curves from index fixings.
package index

import (
	"sort"
	"strings"
)

// Type classifies an interest rate benchmark.
type Type string

const (
	TypeOIS      Type = "OIS"
	TypeIBOR     Type = "IBOR"
	TypeTreasury Type = "TREASURY"
	TypeSwap     Type = "SWAP"
)

// InterestRateIndex is a static benchmark descriptor: identity plus the
// market conventions a curve built on the index defaults to.
type InterestRateIndex struct {
	Code            string
	Name            string
	Currency        string
	Type            Type
	DayCount        string // default day-count convention name
	Compounding     string // default compounding convention name
	FixingFrequency string
	Description     string
}

func (ix InterestRateIndex) String() string {
	return ix.Code + " (" + ix.Currency + ")"
}

// Registry is a catalog of benchmark indexes keyed by uppercased code.
// Populate it once at process start and treat it as read-only afterwards;
// registration is not synchronized.
type Registry struct {
	indexes map[string]InterestRateIndex
}

func NewRegistry() *Registry {
	return &Registry{indexes: map[string]InterestRateIndex{}}
}

func (r *Registry) Register(ix InterestRateIndex) {
	r.indexes[strings.ToUpper(ix.Code)] = ix
}

// Get returns the index registered under code, if any.
func (r *Registry) Get(code string) (InterestRateIndex, bool) {
	ix, ok := r.indexes[strings.ToUpper(code)]
	return ix, ok
}

// ListAll returns a copy of the full catalog keyed by code.
func (r *Registry) ListAll() map[string]InterestRateIndex {
	out := make(map[string]InterestRateIndex, len(r.indexes))
	for code, ix := range r.indexes {
		out[code] = ix
	}
	return out
}

// Codes returns the registered index codes, sorted.
func (r *Registry) Codes() []string {
	out := make([]string, 0, len(r.indexes))
	for code := range r.indexes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// ByCurrency returns the indexes quoted in the given currency.
func (r *Registry) ByCurrency(currency string) []InterestRateIndex {
	ccy := strings.ToUpper(currency)
	var out []InterestRateIndex
	for _, code := range r.Codes() {
		if ix := r.indexes[code]; strings.ToUpper(ix.Currency) == ccy {
			out = append(out, ix)
		}
	}
	return out
}

// DefaultRegistry returns a registry populated with the standard market
// benchmarks.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(InterestRateIndex{
		Code: "SOFR", Name: "Secured Overnight Financing Rate", Currency: "USD",
		Type: TypeOIS, DayCount: "ACT/360", Compounding: "simple", FixingFrequency: "daily",
		Description: "US Dollar overnight rate, replacement for LIBOR",
	})
	r.Register(InterestRateIndex{
		Code: "USD-LIBOR-1M", Name: "US Dollar LIBOR 1 Month", Currency: "USD",
		Type: TypeIBOR, DayCount: "ACT/360", Compounding: "simple", FixingFrequency: "monthly",
		Description: "US Dollar 1-month interbank offered rate (legacy)",
	})
	r.Register(InterestRateIndex{
		Code: "USD-LIBOR-3M", Name: "US Dollar LIBOR 3 Month", Currency: "USD",
		Type: TypeIBOR, DayCount: "ACT/360", Compounding: "simple", FixingFrequency: "quarterly",
		Description: "US Dollar 3-month interbank offered rate (legacy)",
	})
	r.Register(InterestRateIndex{
		Code: "USD-LIBOR-6M", Name: "US Dollar LIBOR 6 Month", Currency: "USD",
		Type: TypeIBOR, DayCount: "ACT/360", Compounding: "simple", FixingFrequency: "semi-annual",
		Description: "US Dollar 6-month interbank offered rate (legacy)",
	})
	r.Register(InterestRateIndex{
		Code: "EURIBOR-1M", Name: "Euro Interbank Offered Rate 1 Month", Currency: "EUR",
		Type: TypeIBOR, DayCount: "ACT/360", Compounding: "simple", FixingFrequency: "monthly",
		Description: "Euro 1-month interbank offered rate",
	})
	r.Register(InterestRateIndex{
		Code: "EURIBOR-3M", Name: "Euro Interbank Offered Rate 3 Month", Currency: "EUR",
		Type: TypeIBOR, DayCount: "ACT/360", Compounding: "simple", FixingFrequency: "quarterly",
		Description: "Euro 3-month interbank offered rate",
	})
	r.Register(InterestRateIndex{
		Code: "EURIBOR-6M", Name: "Euro Interbank Offered Rate 6 Month", Currency: "EUR",
		Type: TypeIBOR, DayCount: "ACT/360", Compounding: "simple", FixingFrequency: "semi-annual",
		Description: "Euro 6-month interbank offered rate",
	})
	r.Register(InterestRateIndex{
		Code: "EONIA", Name: "Euro Overnight Index Average", Currency: "EUR",
		Type: TypeOIS, DayCount: "ACT/360", Compounding: "simple", FixingFrequency: "daily",
		Description: "Euro overnight rate (replaced by ESTR)",
	})
	r.Register(InterestRateIndex{
		Code: "ESTR", Name: "Euro Short-Term Rate", Currency: "EUR",
		Type: TypeOIS, DayCount: "ACT/360", Compounding: "simple", FixingFrequency: "daily",
		Description: "Euro overnight rate, replacement for EONIA",
	})
	r.Register(InterestRateIndex{
		Code: "GBP-LIBOR-3M", Name: "British Pound LIBOR 3 Month", Currency: "GBP",
		Type: TypeIBOR, DayCount: "ACT/365", Compounding: "simple", FixingFrequency: "quarterly",
		Description: "British Pound 3-month interbank offered rate",
	})
	r.Register(InterestRateIndex{
		Code: "SONIA", Name: "Sterling Overnight Index Average", Currency: "GBP",
		Type: TypeOIS, DayCount: "ACT/365", Compounding: "simple", FixingFrequency: "daily",
		Description: "British Pound overnight rate",
	})
	r.Register(InterestRateIndex{
		Code: "USD-TREASURY", Name: "US Treasury Constant Maturity", Currency: "USD",
		Type: TypeTreasury, DayCount: "ACT/365", Compounding: "simple", FixingFrequency: "daily",
		Description: "US Treasury constant maturity rates",
	})

	return r
}
