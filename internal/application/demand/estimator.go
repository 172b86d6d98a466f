package demand

import (
	"gonum.org/v1/gonum/stat"

	"github.com/andrescamacho/intopia-go/internal/domain/history"
	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

// Config tunes the estimator's acceptance thresholds.
type Config struct {
	// MinSamples is the minimum number of (price, quantity) observations a
	// segment needs before a fit is attempted. Two is the hard floor; three
	// is recommended for stability.
	MinSamples int
}

// DefaultConfig returns the estimator defaults.
func DefaultConfig() Config {
	return Config{MinSamples: 2}
}

// Estimator converts historical price/quantity observations into per-segment
// linear demand models.
//
// Observations pair the per-period average competitor price for a segment
// with the product's total market sales for that period. Market sales are
// only reported at product granularity, so the product total is a deliberate
// demand proxy for both grades: the conflation of standard and premium demand
// is a known approximation carried over from the source reports, surfaced to
// callers through the model's sample count rather than "fixed" here.
type Estimator struct {
	minSamples int
}

// NewEstimator creates an estimator.
func NewEstimator(cfg Config) *Estimator {
	min := cfg.MinSamples
	if min < 2 {
		min = 2
	}
	return &Estimator{minSamples: min}
}

// Estimate fits a demand model for every segment with sufficient,
// non-degenerate observations across the record sequence. Pure function:
// models are rebuilt from scratch on every call, never updated incrementally.
//
// A segment is omitted from the result when it has fewer than MinSamples
// valid observations, when all observed prices are identical (zero variance
// makes the regression numerically degenerate), or when the fitted slope is
// non-negative. Callers apply the fallback chain via ResolveModel.
func (e *Estimator) Estimate(records []*history.Record) map[market.Segment]market.DemandModel {
	models := make(map[market.Segment]market.DemandModel)

	for _, segment := range market.Segments() {
		prices, quantities := collectObservations(records, segment)
		if len(prices) < e.minSamples {
			continue
		}
		if stat.Variance(prices, nil) == 0 {
			continue
		}

		intercept, slope := stat.LinearRegression(prices, quantities, nil, false)
		if slope >= 0 {
			continue
		}

		model, err := market.NewDemandModel(slope, intercept, len(prices))
		if err != nil {
			continue
		}
		models[segment] = model
	}

	return models
}

// collectObservations gathers the (average competitor price, total product
// market sales) pairs for one segment. A period contributes only when at
// least one competitor reported a valid price for the segment and the
// product's market total is positive.
func collectObservations(records []*history.Record, segment market.Segment) ([]float64, []float64) {
	var prices, quantities []float64
	for _, record := range records {
		if record == nil {
			continue
		}
		avgPrice, reporters := record.AveragePriceAt(segment)
		if reporters == 0 || avgPrice <= 0 {
			continue
		}
		totalSales := record.MarketSales[segment.Plant()]
		if totalSales <= 0 {
			continue
		}
		prices = append(prices, avgPrice)
		quantities = append(quantities, float64(totalSales))
	}
	return prices, quantities
}

// Resolution reports which model actually answered a segment lookup, so
// downstream strategy choices can be flagged low-confidence.
type Resolution struct {
	Model market.DemandModel
	// FallbackGrade is true when the complementary grade's model was used.
	FallbackGrade bool
	// DefaultModel is true when the conservative hard-coded model was used.
	DefaultModel bool
}

// ResolveModel applies the fallback chain for a segment: its own model, then
// the complementary quality grade's model for the same (region, product),
// then the conservative default. Data insufficiency is recovered here, never
// propagated as a failure.
func ResolveModel(models map[market.Segment]market.DemandModel, segment market.Segment) Resolution {
	if model, ok := models[segment]; ok {
		return Resolution{Model: model}
	}
	opposite := market.Segment{
		Region:  segment.Region,
		Product: segment.Product,
		Grade:   segment.Grade.Opposite(),
	}
	if model, ok := models[opposite]; ok {
		return Resolution{Model: model, FallbackGrade: true}
	}
	return Resolution{Model: market.DefaultDemandModel(), DefaultModel: true}
}
