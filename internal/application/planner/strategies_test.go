package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
	"github.com/andrescamacho/intopia-go/internal/domain/planning"
)

func TestGenerateStrategies_OnlyPatentEntitledSegments(t *testing.T) {
	params := testParams()
	state := emptyState() // no patents: standard grades only

	strategies := GenerateStrategies(params, state, planning.StrategyCosts{}, DefaultGridConfig())

	// Six standard segments, one strategy each; premium segments are skipped.
	require.Len(t, strategies, 6)
	for _, strategy := range strategies {
		for segment := range strategy.PriceGrids {
			assert.Equal(t, market.GradeStandard, segment.Grade)
		}
	}
}

func TestGenerateStrategies_PremiumRequiresPatent(t *testing.T) {
	params := testParams()
	state := emptyState()
	state.Patents[usChip] = 1

	strategies := GenerateStrategies(params, state, planning.StrategyCosts{}, DefaultGridConfig())

	// Six standard plus the one premium segment now entitled.
	require.Len(t, strategies, 7)

	var premium *Strategy
	for i := range strategies {
		if _, ok := strategies[i].PriceGrids[usChipPrem]; ok {
			premium = &strategies[i]
		}
	}
	require.NotNil(t, premium)
	assert.Equal(t, planning.ProducePremium, premium.Assignment.Choice(usChip))
}

func TestGenerateStrategies_ComputerStrategyAssignsChipProduction(t *testing.T) {
	params := testParams()
	state := emptyState()

	strategies := GenerateStrategies(params, state, planning.StrategyCosts{}, DefaultGridConfig())

	var computerStrategy *Strategy
	for i := range strategies {
		if _, ok := strategies[i].PriceGrids[usComputerStd]; ok {
			computerStrategy = &strategies[i]
		}
	}
	require.NotNil(t, computerStrategy)
	// The two-stage dependency needs same-grade chips scheduled alongside.
	assert.Equal(t, planning.ProduceStandard, computerStrategy.Assignment.Choice(usComputer))
	assert.Equal(t, planning.ProduceStandard, computerStrategy.Assignment.Choice(usChip))
}

func TestGenerateStrategies_GridIsLegalAndAscending(t *testing.T) {
	params := testParams()
	state := emptyState()

	strategies := GenerateStrategies(params, state, planning.StrategyCosts{}, DefaultGridConfig())

	var grid []float64
	for _, strategy := range strategies {
		if prices, ok := strategy.PriceGrids[usComputerStd]; ok {
			grid = prices
		}
	}
	// Two steps either side of the 155 reference at step 5.
	assert.Equal(t, []float64{145, 150, 155, 160, 165}, grid)
}

func TestGenerateStrategies_PremiumMarkupLiftsAnchor(t *testing.T) {
	params := testParams()
	state := emptyState()
	state.Patents[usChip] = 1

	strategies := GenerateStrategies(params, state, planning.StrategyCosts{}, DefaultGridConfig())

	var grid []float64
	for _, strategy := range strategies {
		if prices, ok := strategy.PriceGrids[usChipPrem]; ok {
			grid = prices
		}
	}
	require.NotEmpty(t, grid)
	// Anchor 45 × 1.10 = 49.5 snaps to 50 on the 45 + k×1 grid.
	assert.Equal(t, []float64{48, 49, 50, 51, 52}, grid)
}
