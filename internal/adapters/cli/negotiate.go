package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/intopia-go/internal/application/planner"
	"github.com/andrescamacho/intopia-go/internal/domain/market"
	"github.com/andrescamacho/intopia-go/internal/domain/planning"
)

// newNegotiateCommand creates the negotiate command group for scoring and
// countering external offers.
func newNegotiateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "negotiate",
		Short: "Evaluate external offers and propose pact terms",
	}
	cmd.AddCommand(newNegotiateEvaluateCommand())
	cmd.AddCommand(newNegotiateCounterCommand())
	cmd.AddCommand(newNegotiatePactCommand())
	return cmd
}

func newNegotiateEvaluateCommand() *cobra.Command {
	var (
		price  float64
		volume int
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score an external offer against the composite objective",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDependencies()
			if err != nil {
				return err
			}
			latest, err := deps.history.FindLatest(cmd.Context())
			if err != nil {
				return err
			}
			state := planning.NewCurrentState(latest, deps.params.Scales)

			evaluator := planner.NewNegotiationEvaluator(
				planning.NewRankingEvaluator(deps.params.Weights, deps.params.Scales))
			offer := planner.Offer{Price: price, Volume: volume}

			score, err := evaluator.EvaluateOffer(offer, state)
			if err != nil {
				return err
			}
			baseline := evaluator.EvaluateBaseline(state)
			cmd.Printf("Offer %.2f x %d units\n", offer.Price, offer.Volume)
			cmd.Printf("  Score if accepted: %.4f\n", score)
			cmd.Printf("  Score if declined: %.4f\n", baseline)
			if score > baseline {
				cmd.Println("  Recommendation: accept or counter")
			} else {
				cmd.Println("  Recommendation: decline")
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&price, "price", 0, "offered unit price")
	cmd.Flags().IntVar(&volume, "volume", 0, "offered volume in units")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("volume")
	return cmd
}

func newNegotiateCounterCommand() *cobra.Command {
	var (
		price  float64
		volume int
	)
	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Generate a counter-offer for the given terms",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDependencies()
			if err != nil {
				return err
			}
			evaluator := planner.NewNegotiationEvaluator(
				planning.NewRankingEvaluator(deps.params.Weights, deps.params.Scales))
			counter := evaluator.CounterOffer(planner.Offer{Price: price, Volume: volume})
			cmd.Printf("Counter-offer: %.2f x %d units\n", counter.Price, counter.Volume)
			return nil
		},
	}
	cmd.Flags().Float64Var(&price, "price", 0, "offered unit price")
	cmd.Flags().IntVar(&volume, "volume", 0, "offered volume in units")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("volume")
	return cmd
}

func newNegotiatePactCommand() *cobra.Command {
	var segmentKey string
	cmd := &cobra.Command{
		Use:   "pact",
		Short: "Propose commercial pact terms for a segment",
		RunE: func(cmd *cobra.Command, args []string) error {
			segment, err := market.ParseSegment(segmentKey)
			if err != nil {
				return err
			}
			deps, err := buildDependencies()
			if err != nil {
				return err
			}
			latest, err := deps.history.FindLatest(cmd.Context())
			if err != nil {
				return err
			}
			state := planning.NewCurrentState(latest, deps.params.Scales)

			evaluator := planner.NewNegotiationEvaluator(
				planning.NewRankingEvaluator(deps.params.Weights, deps.params.Scales))
			pact, err := evaluator.ProposeCommercialPact(deps.params, state, segment)
			if err != nil {
				return err
			}
			cmd.Printf("Proposed pact for %s\n", segment)
			cmd.Printf("  Price:      %.2f\n", pact.Price)
			cmd.Printf("  Volume:     %d units\n", pact.Volume)
			cmd.Printf("  Conditions: %s\n", pact.Conditions)
			return nil
		},
	}
	cmd.Flags().StringVar(&segmentKey, "segment", "", fmt.Sprintf("segment key, e.g. %q", "EU/computer/premium"))
	_ = cmd.MarkFlagRequired("segment")
	return cmd
}
