package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/intopia-go/internal/adapters/metrics"
	"github.com/andrescamacho/intopia-go/internal/application/demand"
	"github.com/andrescamacho/intopia-go/internal/application/planner"
	"github.com/andrescamacho/intopia-go/internal/domain/market"
	"github.com/andrescamacho/intopia-go/internal/domain/planning"
)

// newPlanCommand creates the plan command: the main entry point that searches
// candidate strategies and prints the winning decision.
func newPlanCommand() *cobra.Command {
	var (
		marketing float64
		rnd       float64
		reports   float64
		noLog     bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Search candidate strategies and print the best decision",
		Long: `Loads all stored period records, estimates demand models, generates a
price grid strategy per patent-entitled segment, solves the constrained
production model for every candidate and reports the highest-scoring plan.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDependencies()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			records, err := deps.history.FindAll(ctx)
			if err != nil {
				return err
			}
			latest, err := deps.history.FindLatest(ctx)
			if err != nil {
				return fmt.Errorf("no period records stored yet, run 'history import' first: %w", err)
			}

			estimator := demand.NewEstimator(demand.Config{MinSamples: deps.cfg.Demand.MinSamples})
			models := estimator.Estimate(records)
			state := planning.NewCurrentState(latest, deps.params.Scales)

			costs := planning.StrategyCosts{Marketing: marketing, RND: rnd, Reports: reports}
			strategies := planner.GenerateStrategies(deps.params, state, costs, planner.GridConfig{
				StepsBelow:    deps.cfg.Search.GridStepsBelow,
				StepsAbove:    deps.cfg.Search.GridStepsAbove,
				PremiumMarkup: deps.cfg.Search.PremiumMarkup,
			})

			optimizer, err := planner.NewOptimizer(deps.params)
			if err != nil {
				return err
			}
			driver := planner.NewSearchDriver(optimizer, planner.SearchConfig{
				ElasticityRate:  deps.cfg.Search.ElasticityRate,
				SpendReference:  deps.cfg.Search.SpendReference,
				CaptureStandard: deps.cfg.Search.CaptureStandard,
				CapturePremium:  deps.cfg.Search.CapturePremium,
				MaxCandidates:   deps.cfg.Search.MaxCandidates,
				Workers:         deps.cfg.Search.Workers,
			})

			if deps.cfg.Metrics.Enabled {
				collector := metrics.NewPlannerMetricsCollector()
				driver = driver.WithObserver(collector)
				go func() {
					if err := collector.Serve(deps.cfg.Metrics.Address); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "metrics server stopped: %v\n", err)
					}
				}()
			}

			report, err := driver.Search(ctx, state, models, strategies)
			if err != nil {
				return err
			}

			printReport(cmd, report)

			if !noLog && report.Best != nil {
				entry := &planning.DecisionLogEntry{
					StrategyName: report.Best.Candidate.StrategyName,
					Segment:      report.Best.Candidate.Segment.String(),
					Price:        report.Best.Candidate.Price,
					Score:        report.Best.Result.Score,
					Warnings:     report.Warnings,
					Decision:     report.Best.Result.Decision,
				}
				if err := deps.decisionLog.Record(ctx, entry); err != nil {
					return err
				}
				cmd.Printf("\nLogged decision %s\n", entry.ID)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&marketing, "marketing", 0, "marketing spend for the period")
	cmd.Flags().Float64Var(&rnd, "rnd", 0, "R&D spend for the period")
	cmd.Flags().Float64Var(&reports, "reports", 0, "report purchase spend for the period")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "skip writing the winning decision to the decision log")
	return cmd
}

func printReport(cmd *cobra.Command, report *planner.SearchReport) {
	best := report.Best
	cmd.Printf("Evaluated %d candidates (baseline score %.4f)\n\n", report.Evaluated, report.BaselineScore)
	cmd.Printf("Best strategy: %s\n", best.Candidate.StrategyName)
	cmd.Printf("  Segment:        %s\n", best.Candidate.Segment)
	cmd.Printf("  Price:          %.2f\n", best.Candidate.Price)
	cmd.Printf("  Demand ceiling: %d units\n", best.DemandCeiling)
	cmd.Printf("  Score:          %.4f\n", best.Result.Score)
	cmd.Printf("  Revenue:        %.2f\n", best.Result.Revenue)
	cmd.Printf("  Period profit:  %.2f\n", best.Result.PeriodProfit)
	cmd.Printf("  Ending stock:   %d units\n", best.Result.Decision.TotalEndingInventory())

	decision := best.Result.Decision
	if decision.OpenPlants() > 0 {
		cmd.Println("\nProduction:")
		for _, plant := range market.Plants() {
			if decision.Open[plant] && decision.Production[plant] > 0 {
				cmd.Printf("  %-12s %6d units, grade %s\n", plant, decision.Production[plant], decision.ProducedGrade[plant])
			}
		}
	}
	if decision.UnitsSold() > 0 {
		cmd.Println("\nSales:")
		for _, seg := range market.Segments() {
			if qty := decision.Sales[seg]; qty > 0 {
				cmd.Printf("  %-22s %6d units\n", seg, qty)
			}
		}
	}

	if report.NoProfitableAction {
		cmd.Println("\nNo profitable action: the best candidate does not beat doing nothing.")
	}
	if report.LowConfidence {
		cmd.Println("Low confidence: every candidate was priced against the default demand model.")
	}
	if best.GradeFallback {
		cmd.Println("Note: demand model borrowed from the complementary quality grade.")
	}
	for _, warning := range report.Warnings {
		cmd.Printf("Warning: %s\n", warning)
	}
}
