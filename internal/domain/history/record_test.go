package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

func fullVector(value float64) []float64 {
	prices := make([]float64, market.PriceSlots)
	for i := range prices {
		prices[i] = value
	}
	return prices
}

func TestRecord_ApplyDefaults(t *testing.T) {
	usChipStd := market.Segment{Region: market.RegionUS, Product: market.ProductChip, Grade: market.GradeStandard}

	record := &Record{Period: 1, Inventory: map[market.Segment]int{usChipStd: -5}}
	record.ApplyDefaults()

	assert.NotNil(t, record.OwnSales)
	assert.NotNil(t, record.MarketSales)
	assert.NotNil(t, record.CompetitorPrices)
	assert.NotNil(t, record.Patents)
	assert.Equal(t, 0, record.Inventory[usChipStd], "negative quantities clamp to zero")
}

func TestRecord_AveragePriceAt(t *testing.T) {
	usChipStd := market.Segment{Region: market.RegionUS, Product: market.ProductChip, Grade: market.GradeStandard}
	slot := market.PriceSlot(usChipStd)
	require.Equal(t, 0, slot)

	withPrice := func(base []float64, price float64) []float64 {
		prices := append([]float64(nil), base...)
		prices[slot] = price
		return prices
	}

	record := &Record{
		CompetitorPrices: map[string][]float64{
			"C2": withPrice(fullVector(100), 40),
			"C3": withPrice(fullVector(100), 50),
			// Zero in the segment's slot: did not sell there, excluded.
			"C4": withPrice(fullVector(100), 0),
			// Short vector: partially parsed report, excluded entirely.
			"C5": {40, 50},
		},
	}

	avg, count := record.AveragePriceAt(usChipStd)
	assert.Equal(t, 2, count)
	assert.InDelta(t, 45.0, avg, 1e-12)
}

func TestRecord_AveragePriceAt_NoReporters(t *testing.T) {
	record := &Record{CompetitorPrices: map[string][]float64{}}
	avg, count := record.AveragePriceAt(market.Segments()[0])
	assert.Equal(t, 0, count)
	assert.Equal(t, 0.0, avg)
}
