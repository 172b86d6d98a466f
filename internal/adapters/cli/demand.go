package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrescamacho/intopia-go/internal/application/demand"
	"github.com/andrescamacho/intopia-go/internal/domain/market"
)

// newDemandCommand creates the demand command, which prints the estimated
// demand model for every segment.
func newDemandCommand() *cobra.Command {
	var price float64

	cmd := &cobra.Command{
		Use:   "demand",
		Short: "Estimate and print per-segment demand models",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDependencies()
			if err != nil {
				return err
			}

			records, err := deps.history.FindAll(cmd.Context())
			if err != nil {
				return err
			}

			estimator := demand.NewEstimator(demand.Config{MinSamples: deps.cfg.Demand.MinSamples})
			models := estimator.Estimate(records)

			cmd.Printf("%-22s %12s %12s %8s %10s\n", "SEGMENT", "SLOPE", "INTERCEPT", "SAMPLES", "SOURCE")
			for _, segment := range market.Segments() {
				resolution := demand.ResolveModel(models, segment)
				source := "fitted"
				if resolution.FallbackGrade {
					source = "fallback"
				}
				if resolution.DefaultModel {
					source = "default"
				}
				cmd.Printf("%-22s %12.2f %12.2f %8d %10s\n",
					segment,
					resolution.Model.Slope(),
					resolution.Model.Intercept(),
					resolution.Model.Samples(),
					source,
				)
				if price > 0 {
					cmd.Printf("%-22s forecast at %.2f: %.0f units\n", "", price, resolution.Model.Forecast(price))
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&price, "price", 0, "also print each model's forecast at this price")
	return cmd
}
