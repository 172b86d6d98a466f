package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

func TestDecision_CheckFlowHolds(t *testing.T) {
	usChip := market.Plant{Region: market.RegionUS, Product: market.ProductChip}
	usComputer := market.Plant{Region: market.RegionUS, Product: market.ProductComputer}
	usChipStd := market.Segment{Region: market.RegionUS, Product: market.ProductChip, Grade: market.GradeStandard}
	usComputerStd := market.Segment{Region: market.RegionUS, Product: market.ProductComputer, Grade: market.GradeStandard}

	decision := NewDecision()
	decision.Open[usChip] = true
	decision.ProducedGrade[usChip] = market.GradeStandard
	decision.Production[usChip] = 1000
	decision.Open[usComputer] = true
	decision.ProducedGrade[usComputer] = market.GradeStandard
	decision.Production[usComputer] = 400

	opening := map[market.Segment]int{usChipStd: 200}

	// chips: 200 + 1000 − sold − 400 consumed
	decision.Sales[usChipStd] = 300
	decision.EndingInventory[usChipStd] = 500
	// computers: 0 + 400 − 350
	decision.Sales[usComputerStd] = 350
	decision.EndingInventory[usComputerStd] = 50

	require.NoError(t, decision.CheckFlow(opening))
	assert.Equal(t, 650, decision.UnitsSold())
	assert.Equal(t, 550, decision.TotalEndingInventory())
	assert.Equal(t, 2, decision.OpenPlants())
}

func TestDecision_CheckFlowCatchesViolation(t *testing.T) {
	usChipStd := market.Segment{Region: market.RegionUS, Product: market.ProductChip, Grade: market.GradeStandard}

	decision := NewDecision()
	decision.Sales[usChipStd] = 10
	decision.EndingInventory[usChipStd] = 100 // opening is 50, nothing produced

	err := decision.CheckFlow(map[market.Segment]int{usChipStd: 50})
	assert.ErrorIs(t, err, ErrFlowViolation)
}

func TestDecision_ConsumptionOnlyForMatchingGrade(t *testing.T) {
	usChip := market.Plant{Region: market.RegionUS, Product: market.ProductChip}
	usComputer := market.Plant{Region: market.RegionUS, Product: market.ProductComputer}
	usChipStd := market.Segment{Region: market.RegionUS, Product: market.ProductChip, Grade: market.GradeStandard}
	usChipPrem := market.Segment{Region: market.RegionUS, Product: market.ProductChip, Grade: market.GradePremium}
	usComputerPrem := market.Segment{Region: market.RegionUS, Product: market.ProductComputer, Grade: market.GradePremium}

	decision := NewDecision()
	decision.Open[usChip] = true
	decision.ProducedGrade[usChip] = market.GradeStandard
	decision.Production[usChip] = 100
	decision.Open[usComputer] = true
	decision.ProducedGrade[usComputer] = market.GradePremium
	decision.Production[usComputer] = 30

	// Premium computers draw premium chips only; the standard chip pool is
	// untouched by consumption.
	opening := map[market.Segment]int{usChipPrem: 30}
	decision.EndingInventory[usChipStd] = 100
	decision.EndingInventory[usChipPrem] = 0
	decision.EndingInventory[usComputerPrem] = 30

	assert.NoError(t, decision.CheckFlow(opening))
}
