package planning

import (
	"github.com/andrescamacho/intopia-go/internal/domain/history"
	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

// CurrentState is the optimizer's snapshot of the company at the start of the
// period under evaluation. Profit, Cash and Share are cumulative figures
// already divided by the reference scales; Inventory is absolute units.
type CurrentState struct {
	// Profit is cumulative profit-to-date, normalized.
	Profit float64
	// Cash is cash-to-date, normalized.
	Cash float64
	// Share is market-share-to-date (cumulative units sold), normalized.
	Share float64
	// Inventory is opening inventory by segment, absolute units.
	Inventory map[market.Segment]int
	// Patents is the highest grade each plant is entitled to manufacture.
	Patents map[market.Plant]int
}

// NewCurrentState builds a normalized state from the latest parsed record.
// Cumulative share is approximated by total own units sold across the
// record's segments.
func NewCurrentState(record *history.Record, scales ReferenceScales) CurrentState {
	record.ApplyDefaults()

	var unitsSold int
	for _, qty := range record.OwnSales {
		unitsSold += qty
	}

	inventory := make(map[market.Segment]int, len(record.Inventory))
	for seg, qty := range record.Inventory {
		inventory[seg] = qty
	}
	patents := make(map[market.Plant]int, len(record.Patents))
	for plant, level := range record.Patents {
		patents[plant] = level
	}

	return CurrentState{
		Profit:    record.Profit / scales.Profit,
		Cash:      record.Cash / scales.Cash,
		Share:     float64(unitsSold) / scales.Share,
		Inventory: inventory,
		Patents:   patents,
	}
}

// OpeningInventory returns the opening inventory for a segment (zero when
// untracked).
func (s CurrentState) OpeningInventory(segment market.Segment) int {
	return s.Inventory[segment]
}

// PatentLevel returns the highest grade the plant may manufacture.
func (s CurrentState) PatentLevel(plant market.Plant) int {
	return s.Patents[plant]
}
