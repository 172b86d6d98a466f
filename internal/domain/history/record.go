package history

import (
	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

// Record is one structured snapshot per elapsed period, produced by the
// external report parser. The core never receives partially-typed data: a
// record missing fields is defaulted to zero/empty at the boundary via
// ApplyDefaults before it crosses into the estimator or the optimizer.
type Record struct {
	// Period is the elapsed period number (1-based).
	Period int

	// Profit is the period's profit in the consolidated currency unit.
	Profit float64

	// Cash is the consolidated cash position at period end.
	Cash float64

	// Inventory maps each segment to its closing inventory in units.
	Inventory map[market.Segment]int

	// OwnSales maps each segment to our own units sold that period.
	OwnSales map[market.Segment]int

	// MarketSales maps each (region, product) to the total units the whole
	// market sold that period. Sales are only reported at product
	// granularity, never per grade.
	MarketSales map[market.Plant]int

	// CompetitorPrices maps a competitor identifier to its 12-slot price
	// vector in the canonical segment ordering. A vector is only meaningful
	// when all 12 slots are populated; a zero slot means the competitor did
	// not sell or report in that segment.
	CompetitorPrices map[string][]float64

	// Patents maps each plant to the highest quality grade it is entitled
	// to manufacture.
	Patents map[market.Plant]int
}

// ApplyDefaults replaces nil maps with empty ones and clamps negative
// quantities to zero, so downstream code can index freely.
func (r *Record) ApplyDefaults() {
	if r.Inventory == nil {
		r.Inventory = map[market.Segment]int{}
	}
	if r.OwnSales == nil {
		r.OwnSales = map[market.Segment]int{}
	}
	if r.MarketSales == nil {
		r.MarketSales = map[market.Plant]int{}
	}
	if r.CompetitorPrices == nil {
		r.CompetitorPrices = map[string][]float64{}
	}
	if r.Patents == nil {
		r.Patents = map[market.Plant]int{}
	}
	for seg, qty := range r.Inventory {
		if qty < 0 {
			r.Inventory[seg] = 0
		}
	}
	for seg, qty := range r.OwnSales {
		if qty < 0 {
			r.OwnSales[seg] = 0
		}
	}
	for plant, qty := range r.MarketSales {
		if qty < 0 {
			r.MarketSales[plant] = 0
		}
	}
}

// AveragePriceAt returns the average competitor price observed for the given
// segment in this period, together with the number of competitors averaged.
// Only competitors with a fully populated 12-slot vector and a non-zero price
// in the segment's slot contribute.
func (r *Record) AveragePriceAt(segment market.Segment) (float64, int) {
	slot := market.PriceSlot(segment)
	if slot < 0 {
		return 0, 0
	}
	var sum float64
	var count int
	for _, prices := range r.CompetitorPrices {
		if len(prices) != market.PriceSlots {
			continue
		}
		if prices[slot] <= 0 {
			continue
		}
		sum += prices[slot]
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return sum / float64(count), count
}

// PublishedRanking is the aggregate ranking score the simulation published
// for a period. Kept alongside records for external calibration only; the
// core objective never consumes it.
type PublishedRanking struct {
	Period int
	Score  float64
}
