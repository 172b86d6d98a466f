package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/intopia-go/internal/domain/history"
	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

func TestNewCurrentState_Normalizes(t *testing.T) {
	usChipStd := market.Segment{Region: market.RegionUS, Product: market.ProductChip, Grade: market.GradeStandard}
	euComputerPrem := market.Segment{Region: market.RegionEU, Product: market.ProductComputer, Grade: market.GradePremium}
	usChip := market.Plant{Region: market.RegionUS, Product: market.ProductChip}

	record := &history.Record{
		Period: 4,
		Profit: 250000,
		Cash:   10000000,
		Inventory: map[market.Segment]int{
			usChipStd: 37000,
		},
		OwnSales: map[market.Segment]int{
			usChipStd:      50000,
			euComputerPrem: 25000,
		},
		Patents: map[market.Plant]int{usChip: 1},
	}

	scales := ReferenceScales{Profit: 500000, Cash: 20000000, Share: 150000, Inventory: 100000}
	state := NewCurrentState(record, scales)

	assert.InDelta(t, 0.5, state.Profit, 1e-12)
	assert.InDelta(t, 0.5, state.Cash, 1e-12)
	assert.InDelta(t, 0.5, state.Share, 1e-12, "75000 cumulative units over the 150000 scale")
	assert.Equal(t, 37000, state.OpeningInventory(usChipStd))
	assert.Equal(t, 0, state.OpeningInventory(euComputerPrem))
	assert.Equal(t, 1, state.PatentLevel(usChip))
	assert.Equal(t, 0, state.PatentLevel(market.Plant{Region: market.RegionBR, Product: market.ProductChip}))
}
