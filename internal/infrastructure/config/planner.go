package config

import (
	"fmt"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
	"github.com/andrescamacho/intopia-go/internal/domain/planning"
)

// PlantConfig is one plant's physical and cost parameters. Keys in
// PlannerConfig.Plants use the canonical "REGION/product" form.
type PlantConfig struct {
	Capacity       int     `mapstructure:"capacity" validate:"gt=0"`
	FixedCost      float64 `mapstructure:"fixed_cost" validate:"gte=0"`
	ReferencePrice float64 `mapstructure:"reference_price" validate:"gt=0"`
	PriceStep      float64 `mapstructure:"price_step" validate:"gt=0"`
	StorageRate    float64 `mapstructure:"storage_rate" validate:"gte=0"`
}

// PlannerConfig is the optimizer's parameter surface. Everything here is
// call-time configuration, never derived data.
type PlannerConfig struct {
	Plants map[string]PlantConfig `mapstructure:"plants" validate:"required,dive"`

	// VariableCostRates maps product name → fraction of the reference
	// price paid per unit produced.
	VariableCostRates map[string]float64 `mapstructure:"variable_cost_rates" validate:"required"`

	MinBatch    int     `mapstructure:"min_batch" validate:"gt=0"`
	IdlePenalty float64 `mapstructure:"idle_penalty" validate:"gte=0"`

	// CashFlowFactor converts period profit into the period cash proxy.
	CashFlowFactor float64 `mapstructure:"cash_flow_factor" validate:"gt=0"`

	// ComputerPriceCapBR is the regulated BR finished-good price ceiling
	// (0 disables).
	ComputerPriceCapBR float64 `mapstructure:"computer_price_cap_br" validate:"gte=0"`

	Scales  ScalesConfig  `mapstructure:"scales"`
	Weights WeightsConfig `mapstructure:"weights"`
}

// ScalesConfig holds the normalization reference scales.
type ScalesConfig struct {
	Profit    float64 `mapstructure:"profit" validate:"gt=0"`
	Cash      float64 `mapstructure:"cash" validate:"gt=0"`
	Share     float64 `mapstructure:"share" validate:"gt=0"`
	Inventory float64 `mapstructure:"inventory" validate:"gt=0"`
}

// WeightsConfig holds the composite score weights.
type WeightsConfig struct {
	Profit    float64 `mapstructure:"profit" validate:"gte=0"`
	Cash      float64 `mapstructure:"cash" validate:"gte=0"`
	Share     float64 `mapstructure:"share" validate:"gte=0"`
	Inventory float64 `mapstructure:"inventory" validate:"gte=0"`
}

// ToParameters converts the config surface into the domain parameter tables.
func (c PlannerConfig) ToParameters() (planning.Parameters, error) {
	plants := make(map[market.Plant]planning.PlantSpec, len(c.Plants))
	for key, plant := range c.Plants {
		parsed, err := market.ParsePlant(key)
		if err != nil {
			return planning.Parameters{}, fmt.Errorf("planner.plants: %w", err)
		}
		plants[parsed] = planning.PlantSpec{
			Capacity:       plant.Capacity,
			FixedCost:      plant.FixedCost,
			ReferencePrice: plant.ReferencePrice,
			PriceStep:      plant.PriceStep,
			StorageRate:    plant.StorageRate,
		}
	}

	rates := make(map[market.Product]float64, len(c.VariableCostRates))
	for name, rate := range c.VariableCostRates {
		switch market.Product(name) {
		case market.ProductChip, market.ProductComputer:
			rates[market.Product(name)] = rate
		default:
			return planning.Parameters{}, fmt.Errorf("planner.variable_cost_rates: unknown product %q", name)
		}
	}

	params := planning.Parameters{
		Plants:                    plants,
		VariableCostRate:          rates,
		MinBatch:                  c.MinBatch,
		IdlePenalty:               c.IdlePenalty,
		CashFlowFactor:            c.CashFlowFactor,
		PremiumComputerPriceCapBR: c.ComputerPriceCapBR,
		Scales: planning.ReferenceScales{
			Profit:    c.Scales.Profit,
			Cash:      c.Scales.Cash,
			Share:     c.Scales.Share,
			Inventory: c.Scales.Inventory,
		},
		Weights: planning.Weights{
			Profit:    c.Weights.Profit,
			Cash:      c.Weights.Cash,
			Share:     c.Weights.Share,
			Inventory: c.Weights.Inventory,
		},
	}
	if err := params.Validate(); err != nil {
		return planning.Parameters{}, err
	}
	return params, nil
}
