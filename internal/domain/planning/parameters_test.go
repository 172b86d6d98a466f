package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

func testParameters() Parameters {
	return Parameters{
		Plants: map[market.Plant]PlantSpec{
			{Region: market.RegionUS, Product: market.ProductChip}:     {Capacity: 50000, FixedCost: 80000, ReferencePrice: 45, PriceStep: 1, StorageRate: 1.0},
			{Region: market.RegionUS, Product: market.ProductComputer}: {Capacity: 25000, FixedCost: 100000, ReferencePrice: 155, PriceStep: 5, StorageRate: 10.0},
			{Region: market.RegionEU, Product: market.ProductChip}:     {Capacity: 30000, FixedCost: 40000, ReferencePrice: 40, PriceStep: 1, StorageRate: 0.8},
			{Region: market.RegionEU, Product: market.ProductComputer}: {Capacity: 18000, FixedCost: 30000, ReferencePrice: 130, PriceStep: 10, StorageRate: 8.0},
			{Region: market.RegionBR, Product: market.ProductChip}:     {Capacity: 12000, FixedCost: 150000, ReferencePrice: 380, PriceStep: 25, StorageRate: 4.0},
			{Region: market.RegionBR, Product: market.ProductComputer}: {Capacity: 9000, FixedCost: 150000, ReferencePrice: 2000, PriceStep: 50, StorageRate: 40.0},
		},
		VariableCostRate: map[market.Product]float64{
			market.ProductChip:     0.155,
			market.ProductComputer: 0.30,
		},
		MinBatch:                  10,
		IdlePenalty:               1000,
		CashFlowFactor:            0.5,
		PremiumComputerPriceCapBR: 3500,
		Scales:                    ReferenceScales{Profit: 500000, Cash: 20000000, Share: 150000, Inventory: 100000},
		Weights:                   Weights{Profit: 0.4, Cash: 0.3, Share: 0.2, Inventory: 0.1},
	}
}

func TestParameters_Validate(t *testing.T) {
	params := testParameters()
	require.NoError(t, params.Validate())

	broken := testParameters()
	broken.MinBatch = 0
	assert.Error(t, broken.Validate())

	broken = testParameters()
	broken.VariableCostRate[market.ProductChip] = 1.2
	assert.Error(t, broken.Validate())

	broken = testParameters()
	broken.Scales.Share = 0
	assert.Error(t, broken.Validate())

	broken = testParameters()
	broken.Plants = nil
	assert.Error(t, broken.Validate())
}

func TestLegalPrice_SnapsToGrid(t *testing.T) {
	params := testParameters()
	usComputerStd := market.Segment{Region: market.RegionUS, Product: market.ProductComputer, Grade: market.GradeStandard}

	// US computer prices are legal at 155 + k×5.
	assert.Equal(t, 155.0, params.LegalPrice(usComputerStd, 156.9))
	assert.Equal(t, 160.0, params.LegalPrice(usComputerStd, 158.0))
	assert.Equal(t, 140.0, params.LegalPrice(usComputerStd, 141.0))
}

func TestLegalPrice_FloorsAtOneStep(t *testing.T) {
	params := testParameters()
	usChipStd := market.Segment{Region: market.RegionUS, Product: market.ProductChip, Grade: market.GradeStandard}

	assert.Equal(t, 1.0, params.LegalPrice(usChipStd, -500))
}

func TestLegalPrice_AppliesBRComputerCap(t *testing.T) {
	params := testParameters()
	brComputerPrem := market.Segment{Region: market.RegionBR, Product: market.ProductComputer, Grade: market.GradePremium}

	// 5000 exceeds the regulated 3500 cap; the cap snaps onto the 2000 + k×50 grid.
	assert.Equal(t, 3500.0, params.LegalPrice(brComputerPrem, 5000))

	// Chips in BR are not capped.
	brChipPrem := market.Segment{Region: market.RegionBR, Product: market.ProductChip, Grade: market.GradePremium}
	assert.Equal(t, 5005.0, params.LegalPrice(brChipPrem, 5000))
}

func TestLegalPrice_UnknownPlantPassesThrough(t *testing.T) {
	params := testParameters()
	delete(params.Plants, market.Plant{Region: market.RegionBR, Product: market.ProductChip})
	brChipStd := market.Segment{Region: market.RegionBR, Product: market.ProductChip, Grade: market.GradeStandard}

	assert.Equal(t, 123.0, params.LegalPrice(brChipStd, 123))
}
