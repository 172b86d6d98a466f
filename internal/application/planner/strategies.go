package planner

import (
	"fmt"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
	"github.com/andrescamacho/intopia-go/internal/domain/planning"
)

// GridConfig tunes default price-grid generation.
type GridConfig struct {
	// StepsBelow and StepsAbove bound the grid around the reference price,
	// in legal price increments.
	StepsBelow int
	StepsAbove int
	// PremiumMarkup lifts the grid anchor for premium segments
	// (reference price × (1 + markup)).
	PremiumMarkup float64
}

// DefaultGridConfig returns the grid defaults.
func DefaultGridConfig() GridConfig {
	return GridConfig{StepsBelow: 2, StepsAbove: 2, PremiumMarkup: 0.10}
}

// GenerateStrategies derives a bounded default candidate set from the current
// state: one strategy per patent-entitled segment, testing a legalized price
// grid around the reference price with the matching production assignment.
// Computer strategies also schedule same-grade chip production so the
// two-stage dependency can feed itself.
func GenerateStrategies(
	params planning.Parameters,
	state planning.CurrentState,
	costs planning.StrategyCosts,
	grid GridConfig,
) []Strategy {
	var strategies []Strategy
	for _, segment := range market.Segments() {
		if int(segment.Grade) > state.PatentLevel(segment.Plant()) {
			continue
		}
		spec, ok := params.Plant(segment.Plant())
		if !ok {
			continue
		}

		assignment := planning.Assignment{
			segment.Plant(): planning.GradeChoice(segment.Grade),
		}
		if segment.Product == market.ProductComputer {
			chipPlant := market.Plant{Region: segment.Region, Product: market.ProductChip}
			if int(segment.Grade) <= state.PatentLevel(chipPlant) {
				assignment[chipPlant] = planning.GradeChoice(segment.Grade)
			}
		}

		anchor := spec.ReferencePrice
		if segment.Grade == market.GradePremium {
			anchor *= 1 + grid.PremiumMarkup
		}
		prices := legalGrid(params, segment, anchor, spec.PriceStep, grid)
		if len(prices) == 0 {
			continue
		}

		strategies = append(strategies, Strategy{
			Name:       fmt.Sprintf("%s grid", segment),
			PriceGrids: map[market.Segment][]float64{segment: prices},
			Assignment: assignment,
			Costs:      costs,
		})
	}
	return strategies
}

// legalGrid builds an ascending, deduplicated grid of legal prices around the
// anchor.
func legalGrid(params planning.Parameters, segment market.Segment, anchor, step float64, grid GridConfig) []float64 {
	var prices []float64
	var last float64
	for k := -grid.StepsBelow; k <= grid.StepsAbove; k++ {
		price := params.LegalPrice(segment, anchor+float64(k)*step)
		if price <= 0 || price == last {
			continue
		}
		prices = append(prices, price)
		last = price
	}
	return prices
}
