package planning

import (
	"fmt"
	"math"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

// PlantSpec carries the per-plant physical and cost parameters.
type PlantSpec struct {
	// Capacity is the maximum units producible per period.
	Capacity int
	// FixedCost is the per-period cost of running the plant (first-tier
	// bracket only; multi-plant cost tiers are an extension point).
	FixedCost float64
	// ReferencePrice is the typical market price used as the variable-cost
	// base and as the anchor for legal price grids.
	ReferencePrice float64
	// PriceStep is the minimum legal price increment in this market.
	PriceStep float64
	// StorageRate is the per-unit-per-period cost of carrying inventory.
	StorageRate float64
}

// ReferenceScales are the fixed normalization constants dividing each raw
// ranking component so the four factors are comparable in the composite
// objective. Configuration, never derived data.
type ReferenceScales struct {
	Profit    float64
	Cash      float64
	Share     float64
	Inventory float64
}

// Weights are the composite score weights. All must be non-negative; the
// score is then monotonically non-decreasing in every component.
type Weights struct {
	Profit    float64
	Cash      float64
	Share     float64
	Inventory float64
}

// Parameters is the immutable configuration surface of the optimizer:
// capacities, cost tables, price legality rules and objective scaling.
type Parameters struct {
	// Plants maps each (region, product) to its spec.
	Plants map[market.Plant]PlantSpec

	// VariableCostRate maps a product to the fraction of its reference
	// price paid per unit produced.
	VariableCostRate map[market.Product]float64

	// MinBatch is the smallest production run an open plant may schedule.
	MinBatch int

	// IdlePenalty is the fixed per-closed-plant penalty discouraging the
	// trivial all-closed solution from dominating ties.
	IdlePenalty float64

	// CashFlowFactor converts period profit into the period cash proxy
	// (no separate cash-flow model exists).
	CashFlowFactor float64

	// PremiumComputerPriceCapBR caps BR finished-good prices at the
	// regulated maximum. Zero disables the cap.
	PremiumComputerPriceCapBR float64

	Scales  ReferenceScales
	Weights Weights
}

// Validate checks the parameter tables for internal consistency.
func (p Parameters) Validate() error {
	if len(p.Plants) == 0 {
		return fmt.Errorf("parameters: no plants configured")
	}
	for plant, spec := range p.Plants {
		if spec.Capacity <= 0 {
			return fmt.Errorf("parameters: plant %s capacity must be positive", plant)
		}
		if spec.ReferencePrice <= 0 {
			return fmt.Errorf("parameters: plant %s reference price must be positive", plant)
		}
		if spec.PriceStep <= 0 {
			return fmt.Errorf("parameters: plant %s price step must be positive", plant)
		}
		if spec.StorageRate < 0 || spec.FixedCost < 0 {
			return fmt.Errorf("parameters: plant %s costs must be non-negative", plant)
		}
	}
	for product, rate := range p.VariableCostRate {
		if rate < 0 || rate >= 1 {
			return fmt.Errorf("parameters: variable cost rate for %s out of range: %.3f", product, rate)
		}
	}
	if p.MinBatch <= 0 {
		return fmt.Errorf("parameters: minimum batch must be positive")
	}
	if p.Weights.Profit < 0 || p.Weights.Cash < 0 || p.Weights.Share < 0 || p.Weights.Inventory < 0 {
		return fmt.Errorf("parameters: objective weights must be non-negative")
	}
	if p.Scales.Profit <= 0 || p.Scales.Cash <= 0 || p.Scales.Share <= 0 || p.Scales.Inventory <= 0 {
		return fmt.Errorf("parameters: reference scales must be positive")
	}
	return nil
}

// Plant returns the spec for a plant, with ok=false when unconfigured.
func (p Parameters) Plant(plant market.Plant) (PlantSpec, bool) {
	spec, ok := p.Plants[plant]
	return spec, ok
}

// LegalPrice snaps a candidate price for a segment onto the legal grid:
// the reference price plus an integer number of minimum increments, floored
// at one increment, with the BR finished-good regulatory cap applied first.
func (p Parameters) LegalPrice(segment market.Segment, price float64) float64 {
	spec, ok := p.Plants[segment.Plant()]
	if !ok {
		return price
	}
	if p.PremiumComputerPriceCapBR > 0 &&
		segment.Region == market.RegionBR && segment.Product == market.ProductComputer &&
		price > p.PremiumComputerPriceCapBR {
		price = p.PremiumComputerPriceCapBR
	}
	steps := math.Round((price - spec.ReferencePrice) / spec.PriceStep)
	legal := spec.ReferencePrice + steps*spec.PriceStep
	if legal < spec.PriceStep {
		legal = spec.PriceStep
	}
	return legal
}
