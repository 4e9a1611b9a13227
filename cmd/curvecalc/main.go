// Command curvecalc builds a yield curve from a YAML instrument file and
// prints the curve points plus any requested tenor queries as JSON.
//
// The input names the strategy set and carries exactly one instrument block:
//
//	curve:
//	  interpolation: cubic_spline
//	  day_count: ACT/365
//	  compounding: simple
//	bonds:
//	  - maturity: 2
//	    coupon: 0.05
//	    price: 98.25
//	deposits:
//	  - tenor: 3M
//	    rate: 0.052
//	points:
//	  - {tenor: 1Y, rate: 0.02}
//	queries: [0.5, 1, 2]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/curvelib/bootstrap"
	"github.com/meenmo/curvelib/curve"
	"github.com/meenmo/curvelib/utils"
)

type curveConfig struct {
	Interpolation string `yaml:"interpolation"`
	DayCount      string `yaml:"day_count"`
	Compounding   string `yaml:"compounding"`
	Bootstrapper  string `yaml:"bootstrapper"`
}

type bondInput struct {
	Maturity  float64 `yaml:"maturity"`
	Tenor     string  `yaml:"tenor"`
	Coupon    float64 `yaml:"coupon"`
	Price     float64 `yaml:"price"`
	Frequency int     `yaml:"frequency"`
	FaceValue float64 `yaml:"face_value"`
}

type depositInput struct {
	Maturity float64 `yaml:"maturity"`
	Tenor    string  `yaml:"tenor"`
	Rate     float64 `yaml:"rate"`
}

type pointInput struct {
	Tenor string  `yaml:"tenor"`
	Rate  float64 `yaml:"rate"`
}

type inputFile struct {
	Curve    curveConfig    `yaml:"curve"`
	Bonds    []bondInput    `yaml:"bonds"`
	Deposits []depositInput `yaml:"deposits"`
	Points   []pointInput   `yaml:"points"`
	Queries  []float64      `yaml:"queries"`
}

type queryOutput struct {
	Tenor           float64 `json:"tenor"`
	SpotRate        float64 `json:"spot_rate"`
	DiscountFactor  float64 `json:"discount_factor"`
	ZeroCouponPrice float64 `json:"zero_coupon_price"`
}

type output struct {
	Curve   curve.Representation `json:"curve"`
	Queries []queryOutput        `json:"queries,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "YAML instrument file")
	outputPath := flag.String("output", "", "JSON output path (stdout if omitted)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: curvecalc -input <curve.yaml> [-output <out.json>]")
		os.Exit(2)
	}

	in, err := readInput(*inputPath)
	if err != nil {
		log.WithError(err).Fatal("read input")
	}

	crv, err := buildCurve(in)
	if err != nil {
		log.WithError(err).Fatal("build curve")
	}

	rep := crv.Representation()
	log.WithFields(log.Fields{
		"points":     len(rep.Tenors),
		"curve_type": rep.CurveType,
	}).Info("curve built")

	out := output{Curve: rep}
	for _, tenor := range in.Queries {
		spot, err := crv.SpotRate(tenor)
		if err != nil {
			log.WithError(err).WithField("tenor", tenor).Fatal("spot rate query")
		}
		df, err := crv.DiscountFactor(tenor)
		if err != nil {
			log.WithError(err).WithField("tenor", tenor).Fatal("discount factor query")
		}
		out.Queries = append(out.Queries, queryOutput{
			Tenor:           tenor,
			SpotRate:        utils.RoundTo(spot, 10),
			DiscountFactor:  utils.RoundTo(df, 10),
			ZeroCouponPrice: utils.RoundTo(100.0*df, 10),
		})
	}

	if err := writeOutput(*outputPath, out); err != nil {
		log.WithError(err).Fatal("write output")
	}
}

func readInput(path string) (*inputFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read yaml")
	}
	var in inputFile
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}
	return &in, nil
}

// maturityOf resolves an instrument's maturity from either the numeric field
// or a tenor string like "3M".
func maturityOf(maturity float64, tenor string) float64 {
	if tenor != "" {
		return utils.ParseTenor(tenor)
	}
	return maturity
}

func buildCurve(in *inputFile) (*curve.Curve, error) {
	factory := curve.NewFactory(curve.NewCatalog())
	cfg := in.Curve

	blocks := 0
	for _, present := range []bool{len(in.Bonds) > 0, len(in.Deposits) > 0, len(in.Points) > 0} {
		if present {
			blocks++
		}
	}
	if blocks != 1 {
		return nil, errors.New("input must carry exactly one of bonds, deposits or points")
	}

	switch {
	case len(in.Bonds) > 0:
		bonds := make([]bootstrap.Bond, len(in.Bonds))
		for i, b := range in.Bonds {
			bonds[i] = bootstrap.Bond{
				Maturity:  maturityOf(b.Maturity, b.Tenor),
				Coupon:    b.Coupon,
				Price:     b.Price,
				Frequency: b.Frequency,
				FaceValue: b.FaceValue,
			}
		}
		return factory.CreateFromBonds(bonds, cfg.Bootstrapper, cfg.Interpolation, cfg.DayCount, cfg.Compounding)

	case len(in.Deposits) > 0:
		deposits := make([]bootstrap.Deposit, len(in.Deposits))
		for i, d := range in.Deposits {
			deposits[i] = bootstrap.Deposit{Maturity: maturityOf(d.Maturity, d.Tenor), Rate: d.Rate}
		}
		return factory.CreateFromDeposits(deposits, cfg.Bootstrapper, cfg.Interpolation, cfg.DayCount, cfg.Compounding)

	default:
		tenors := make([]float64, len(in.Points))
		rates := make([]float64, len(in.Points))
		for i, p := range in.Points {
			tenors[i] = utils.ParseTenor(p.Tenor)
			rates[i] = p.Rate
		}
		return factory.CreateSpotCurve(tenors, rates, cfg.Interpolation, cfg.DayCount, cfg.Compounding)
	}
}

func writeOutput(path string, out output) error {
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode json")
	}
	encoded = append(encoded, '\n')
	if path == "" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	return errors.Wrap(os.WriteFile(path, encoded, 0o644), "write file")
}
