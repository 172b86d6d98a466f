package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
	"github.com/andrescamacho/intopia-go/internal/infrastructure/config"
)

// newConfigCommand creates the config command group
func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration after defaults and overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			params, err := cfg.Planner.ToParameters()
			if err != nil {
				return err
			}

			cmd.Printf("Database: %s", cfg.Database.Type)
			if cfg.Database.Type == "sqlite" {
				cmd.Printf(" (%s)", cfg.Database.Path)
			}
			cmd.Println()

			cmd.Println("\nPlants:")
			cmd.Printf("  %-12s %10s %12s %10s %8s %10s\n",
				"PLANT", "CAPACITY", "FIXED COST", "REF PRICE", "STEP", "STORAGE")
			for _, plant := range market.Plants() {
				spec, ok := params.Plant(plant)
				if !ok {
					continue
				}
				cmd.Printf("  %-12s %10d %12.2f %10.2f %8.2f %10.2f\n",
					plant, spec.Capacity, spec.FixedCost, spec.ReferencePrice, spec.PriceStep, spec.StorageRate)
			}

			cmd.Println("\nVariable cost rates:")
			for _, product := range market.Products() {
				cmd.Printf("  %-10s %.3f\n", product, params.VariableCostRate[product])
			}

			cmd.Printf("\nMin batch:        %d\n", params.MinBatch)
			cmd.Printf("Idle penalty:     %.2f\n", params.IdlePenalty)
			cmd.Printf("Cash flow factor: %.2f\n", params.CashFlowFactor)
			cmd.Printf("BR computer cap:  %.2f\n", params.PremiumComputerPriceCapBR)

			cmd.Printf("\nWeights:  profit %.2f, cash %.2f, share %.2f, inventory %.2f\n",
				params.Weights.Profit, params.Weights.Cash, params.Weights.Share, params.Weights.Inventory)
			cmd.Printf("Scales:   profit %.0f, cash %.0f, share %.0f, inventory %.0f\n",
				params.Scales.Profit, params.Scales.Cash, params.Scales.Share, params.Scales.Inventory)

			cmd.Printf("\nSearch:   %d workers, %d candidate budget, capture %.2f/%.2f\n",
				cfg.Search.Workers, cfg.Search.MaxCandidates, cfg.Search.CaptureStandard, cfg.Search.CapturePremium)
			cmd.Printf("Demand:   min %d samples\n", cfg.Demand.MinSamples)
			cmd.Printf("Metrics:  enabled=%t address=%s\n", cfg.Metrics.Enabled, cfg.Metrics.Address)
			return nil
		},
	})

	return cmd
}
