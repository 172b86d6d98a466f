package planner

import (
	"fmt"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
	"github.com/andrescamacho/intopia-go/internal/domain/planning"
)

// Offer is an ad-hoc external proposal: a unit price for a volume of goods.
type Offer struct {
	Price  float64
	Volume int
}

// Pact is a proposed commercial agreement.
type Pact struct {
	Price      float64
	Volume     int
	Conditions string
}

// NegotiationEvaluator scores external offers with the same composite
// formula the optimizer maximizes, without re-running the constrained model.
// Thin by design: it approximates an accepted offer as immediate revenue and
// sold units layered onto the current state.
type NegotiationEvaluator struct {
	evaluator *planning.RankingEvaluator
}

// NewNegotiationEvaluator creates an evaluator sharing the optimizer's
// ranking formula.
func NewNegotiationEvaluator(evaluator *planning.RankingEvaluator) *NegotiationEvaluator {
	return &NegotiationEvaluator{evaluator: evaluator}
}

// EvaluateOffer returns the composite score the company would rank at if the
// offer were accepted this period.
func (n *NegotiationEvaluator) EvaluateOffer(offer Offer, state planning.CurrentState) (float64, error) {
	if offer.Price <= 0 {
		return 0, fmt.Errorf("%w: %.2f", market.ErrInvalidPrice, offer.Price)
	}
	if offer.Volume <= 0 {
		return 0, fmt.Errorf("offer volume must be positive, got %d", offer.Volume)
	}

	revenue := offer.Price * float64(offer.Volume)
	var inventory int
	for _, qty := range state.Inventory {
		inventory += qty
	}
	// Sold units leave inventory; an offer cannot ship more than is held.
	shipped := offer.Volume
	if shipped > inventory {
		shipped = inventory
	}

	return n.evaluator.Score(planning.RankingState{
		Profit:    state.Profit + n.evaluator.NormalizeProfit(revenue),
		Cash:      state.Cash + n.evaluator.NormalizeCash(revenue),
		Share:     state.Share + n.evaluator.NormalizeShare(float64(offer.Volume)),
		Inventory: n.evaluator.NormalizeInventory(float64(inventory - shipped)),
	}), nil
}

// EvaluateBaseline returns the composite score of the current state with no
// offer accepted, the comparison point for EvaluateOffer.
func (n *NegotiationEvaluator) EvaluateBaseline(state planning.CurrentState) float64 {
	var inventory int
	for _, qty := range state.Inventory {
		inventory += qty
	}
	return n.evaluator.Score(planning.RankingState{
		Profit:    state.Profit,
		Cash:      state.Cash,
		Share:     state.Share,
		Inventory: n.evaluator.NormalizeInventory(float64(inventory)),
	})
}

// CounterOffer proposes better terms from our side: a modest price increase
// against a volume concession.
func (n *NegotiationEvaluator) CounterOffer(offer Offer) Offer {
	return Offer{
		Price:  offer.Price * 1.05,
		Volume: int(float64(offer.Volume) * 0.9),
	}
}

// ProposeCommercialPact suggests pact terms anchored on a segment's
// reference price with available inventory as the volume.
func (n *NegotiationEvaluator) ProposeCommercialPact(
	params planning.Parameters,
	state planning.CurrentState,
	segment market.Segment,
) (Pact, error) {
	spec, ok := params.Plant(segment.Plant())
	if !ok {
		return Pact{}, fmt.Errorf("no parameters configured for plant %s", segment.Plant())
	}
	volume := state.OpeningInventory(segment)
	if volume == 0 {
		volume = params.MinBatch
	}
	return Pact{
		Price:      params.LegalPrice(segment, spec.ReferencePrice*1.05),
		Volume:     volume,
		Conditions: "advance payment",
	}, nil
}
