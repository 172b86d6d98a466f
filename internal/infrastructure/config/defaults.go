package config

import "time"

// SetDefaults sets default values for all configuration fields.
// Plant and cost tables default to the 2024-25 simulation parameter sheet.
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "intopia.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "intopia"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "intopia"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Planner defaults
	if len(cfg.Planner.Plants) == 0 {
		cfg.Planner.Plants = map[string]PlantConfig{
			"US/chip":     {Capacity: 50000, FixedCost: 80000, ReferencePrice: 45, PriceStep: 1, StorageRate: 1.0},
			"US/computer": {Capacity: 25000, FixedCost: 100000, ReferencePrice: 155, PriceStep: 5, StorageRate: 10.0},
			"EU/chip":     {Capacity: 30000, FixedCost: 40000, ReferencePrice: 40, PriceStep: 1, StorageRate: 0.8},
			"EU/computer": {Capacity: 18000, FixedCost: 30000, ReferencePrice: 130, PriceStep: 10, StorageRate: 8.0},
			"BR/chip":     {Capacity: 12000, FixedCost: 150000, ReferencePrice: 380, PriceStep: 25, StorageRate: 4.0},
			"BR/computer": {Capacity: 9000, FixedCost: 150000, ReferencePrice: 2000, PriceStep: 50, StorageRate: 40.0},
		}
	}
	if len(cfg.Planner.VariableCostRates) == 0 {
		cfg.Planner.VariableCostRates = map[string]float64{
			"chip":     0.155,
			"computer": 0.30,
		}
	}
	if cfg.Planner.MinBatch == 0 {
		cfg.Planner.MinBatch = 10
	}
	if cfg.Planner.IdlePenalty == 0 {
		cfg.Planner.IdlePenalty = 1000
	}
	if cfg.Planner.CashFlowFactor == 0 {
		cfg.Planner.CashFlowFactor = 0.5
	}
	if cfg.Planner.ComputerPriceCapBR == 0 {
		cfg.Planner.ComputerPriceCapBR = 3500
	}
	if cfg.Planner.Scales.Profit == 0 {
		cfg.Planner.Scales.Profit = 500000
	}
	if cfg.Planner.Scales.Cash == 0 {
		cfg.Planner.Scales.Cash = 20000000
	}
	if cfg.Planner.Scales.Share == 0 {
		cfg.Planner.Scales.Share = 150000
	}
	if cfg.Planner.Scales.Inventory == 0 {
		cfg.Planner.Scales.Inventory = 100000
	}
	if cfg.Planner.Weights.Profit == 0 && cfg.Planner.Weights.Cash == 0 &&
		cfg.Planner.Weights.Share == 0 && cfg.Planner.Weights.Inventory == 0 {
		cfg.Planner.Weights = WeightsConfig{Profit: 0.4, Cash: 0.3, Share: 0.2, Inventory: 0.1}
	}

	// Demand estimator defaults
	if cfg.Demand.MinSamples == 0 {
		cfg.Demand.MinSamples = 2
	}

	// Search defaults
	if cfg.Search.ElasticityRate == 0 {
		cfg.Search.ElasticityRate = 0.05
	}
	if cfg.Search.SpendReference == 0 {
		cfg.Search.SpendReference = 100000
	}
	if cfg.Search.CaptureStandard == 0 {
		cfg.Search.CaptureStandard = 0.25
	}
	if cfg.Search.CapturePremium == 0 {
		cfg.Search.CapturePremium = 0.35
	}
	if cfg.Search.MaxCandidates == 0 {
		cfg.Search.MaxCandidates = 5000
	}
	if cfg.Search.Workers == 0 {
		cfg.Search.Workers = 4
	}
	if cfg.Search.GridStepsBelow == 0 {
		cfg.Search.GridStepsBelow = 2
	}
	if cfg.Search.GridStepsAbove == 0 {
		cfg.Search.GridStepsAbove = 2
	}
	if cfg.Search.PremiumMarkup == 0 {
		cfg.Search.PremiumMarkup = 0.10
	}

	// Metrics defaults
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9464"
	}
}
