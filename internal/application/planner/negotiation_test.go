package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
	"github.com/andrescamacho/intopia-go/internal/domain/planning"
)

func newNegotiationEvaluator() *NegotiationEvaluator {
	params := testParams()
	return NewNegotiationEvaluator(planning.NewRankingEvaluator(params.Weights, params.Scales))
}

func TestEvaluateOffer_AcceptingRaisesScore(t *testing.T) {
	evaluator := newNegotiationEvaluator()

	state := emptyState()
	state.Inventory[usChipStd] = 5000

	baseline := evaluator.EvaluateBaseline(state)
	score, err := evaluator.EvaluateOffer(Offer{Price: 60, Volume: 2000}, state)
	require.NoError(t, err)

	assert.Greater(t, score, baseline, "revenue and share gains outweigh the inventory drawdown")
}

func TestEvaluateOffer_RejectsInvalidTerms(t *testing.T) {
	evaluator := newNegotiationEvaluator()

	_, err := evaluator.EvaluateOffer(Offer{Price: 0, Volume: 100}, emptyState())
	assert.ErrorIs(t, err, market.ErrInvalidPrice)

	_, err = evaluator.EvaluateOffer(Offer{Price: 50, Volume: 0}, emptyState())
	assert.Error(t, err)
}

func TestEvaluateOffer_ShipmentCappedByInventory(t *testing.T) {
	evaluator := newNegotiationEvaluator()

	state := emptyState()
	state.Inventory[usChipStd] = 100

	// An offer for more than we hold cannot drive ending inventory negative.
	capped, err := evaluator.EvaluateOffer(Offer{Price: 60, Volume: 1000}, state)
	require.NoError(t, err)
	exact, err := evaluator.EvaluateOffer(Offer{Price: 60, Volume: 100}, state)
	require.NoError(t, err)

	// Both ship the full 100 units; the larger offer still books the bigger
	// revenue and share, so it scores at least as high.
	assert.GreaterOrEqual(t, capped, exact)
}

func TestCounterOffer(t *testing.T) {
	evaluator := newNegotiationEvaluator()

	counter := evaluator.CounterOffer(Offer{Price: 100, Volume: 1000})
	assert.InDelta(t, 105.0, counter.Price, 1e-9)
	assert.Equal(t, 900, counter.Volume)
}

func TestProposeCommercialPact(t *testing.T) {
	evaluator := newNegotiationEvaluator()
	params := testParams()

	state := emptyState()
	state.Inventory[usChipStd] = 3000

	pact, err := evaluator.ProposeCommercialPact(params, state, usChipStd)
	require.NoError(t, err)

	// 45 × 1.05 = 47.25 snaps to 47 on the chip price grid.
	assert.InDelta(t, 47.0, pact.Price, 1e-9)
	assert.Equal(t, 3000, pact.Volume)
	assert.Equal(t, "advance payment", pact.Conditions)
}

func TestProposeCommercialPact_EmptyInventoryUsesMinBatch(t *testing.T) {
	evaluator := newNegotiationEvaluator()
	params := testParams()

	pact, err := evaluator.ProposeCommercialPact(params, emptyState(), usChipStd)
	require.NoError(t, err)
	assert.Equal(t, params.MinBatch, pact.Volume)
}

func TestProposeCommercialPact_UnknownPlant(t *testing.T) {
	evaluator := newNegotiationEvaluator()
	params := testParams()
	delete(params.Plants, usChip)

	_, err := evaluator.ProposeCommercialPact(params, emptyState(), usChipStd)
	assert.Error(t, err)
}
