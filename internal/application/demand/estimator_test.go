package demand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/intopia-go/internal/domain/history"
	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

var usChipStd = market.Segment{Region: market.RegionUS, Product: market.ProductChip, Grade: market.GradeStandard}

// observationRecord builds a period record in which one competitor reports the
// given price for the segment and the product's market total is totalSales.
func observationRecord(period int, segment market.Segment, price float64, totalSales int) *history.Record {
	prices := make([]float64, market.PriceSlots)
	for i := range prices {
		prices[i] = 1 // populated vector; only the segment slot matters here
	}
	prices[market.PriceSlot(segment)] = price

	record := &history.Record{
		Period:           period,
		CompetitorPrices: map[string][]float64{"C2": prices},
		MarketSales:      map[market.Plant]int{segment.Plant(): totalSales},
	}
	record.ApplyDefaults()
	return record
}

func TestEstimator_FitsLinearModel(t *testing.T) {
	estimator := NewEstimator(DefaultConfig())

	records := []*history.Record{
		observationRecord(1, usChipStd, 40, 20000),
		observationRecord(2, usChipStd, 50, 19000),
	}

	models := estimator.Estimate(records)
	model, ok := models[usChipStd]
	require.True(t, ok)

	// Two exact points: slope (19000−20000)/(50−40), intercept by back-substitution.
	assert.InDelta(t, -100.0, model.Slope(), 1e-9)
	assert.InDelta(t, 24000.0, model.Intercept(), 1e-6)
	assert.Equal(t, 2, model.Samples())
}

func TestEstimator_SkipsInsufficientSamples(t *testing.T) {
	estimator := NewEstimator(Config{MinSamples: 3})

	records := []*history.Record{
		observationRecord(1, usChipStd, 40, 20000),
		observationRecord(2, usChipStd, 50, 19000),
	}

	models := estimator.Estimate(records)
	_, ok := models[usChipStd]
	assert.False(t, ok, "two observations under a three-sample minimum must not fit")
}

func TestEstimator_SkipsZeroVariance(t *testing.T) {
	estimator := NewEstimator(DefaultConfig())

	// Identical prices across periods: the regression is degenerate.
	records := []*history.Record{
		observationRecord(1, usChipStd, 45, 20000),
		observationRecord(2, usChipStd, 45, 18000),
		observationRecord(3, usChipStd, 45, 21000),
	}

	models := estimator.Estimate(records)
	_, ok := models[usChipStd]
	assert.False(t, ok)
}

func TestEstimator_SkipsUpwardSlope(t *testing.T) {
	estimator := NewEstimator(DefaultConfig())

	// Quantity rising with price fits a non-negative slope, which is rejected.
	records := []*history.Record{
		observationRecord(1, usChipStd, 40, 10000),
		observationRecord(2, usChipStd, 50, 15000),
	}

	models := estimator.Estimate(records)
	_, ok := models[usChipStd]
	assert.False(t, ok)
}

func TestEstimator_IgnoresPeriodsWithoutSales(t *testing.T) {
	estimator := NewEstimator(DefaultConfig())

	records := []*history.Record{
		observationRecord(1, usChipStd, 40, 20000),
		observationRecord(2, usChipStd, 50, 0), // no market total reported
		observationRecord(3, usChipStd, 60, 18000),
	}

	models := estimator.Estimate(records)
	model, ok := models[usChipStd]
	require.True(t, ok)
	assert.Equal(t, 2, model.Samples())
}

func TestEstimator_MinSamplesFloorIsTwo(t *testing.T) {
	estimator := NewEstimator(Config{MinSamples: 0})

	records := []*history.Record{
		observationRecord(1, usChipStd, 40, 20000),
	}

	models := estimator.Estimate(records)
	_, ok := models[usChipStd]
	assert.False(t, ok, "a single observation can never fit a line")
}

func TestResolveModel_FallbackChain(t *testing.T) {
	usChipPrem := market.Segment{Region: market.RegionUS, Product: market.ProductChip, Grade: market.GradePremium}

	fitted, err := market.NewDemandModel(-50, 10000, 3)
	require.NoError(t, err)

	// Own model wins.
	res := ResolveModel(map[market.Segment]market.DemandModel{usChipStd: fitted}, usChipStd)
	assert.False(t, res.FallbackGrade)
	assert.False(t, res.DefaultModel)
	assert.Equal(t, fitted, res.Model)

	// Complementary grade substitutes.
	res = ResolveModel(map[market.Segment]market.DemandModel{usChipStd: fitted}, usChipPrem)
	assert.True(t, res.FallbackGrade)
	assert.False(t, res.DefaultModel)
	assert.Equal(t, fitted, res.Model)

	// Nothing fitted for the pair: conservative default.
	res = ResolveModel(map[market.Segment]market.DemandModel{}, usChipPrem)
	assert.True(t, res.DefaultModel)
	assert.True(t, res.Model.IsDefault())
}
