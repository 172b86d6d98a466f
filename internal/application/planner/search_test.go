package planner

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
	"github.com/andrescamacho/intopia-go/internal/domain/planning"
)

func newTestDriver(t *testing.T, config SearchConfig) *SearchDriver {
	t.Helper()
	optimizer, err := NewOptimizer(testParams())
	require.NoError(t, err)
	return NewSearchDriver(optimizer, config)
}

func TestDemandCeiling_MarketingElasticity(t *testing.T) {
	driver := newTestDriver(t, DefaultSearchConfig())
	model, err := market.NewDemandModel(-100, 50000, 3)
	require.NoError(t, err)

	// Base forecast at 100 is 40000; standard capture takes a quarter.
	base := driver.DemandCeiling(model, usChipStd, 100, 0)
	assert.Equal(t, 10000, base)

	// Spending the full reference lifts the forecast by exactly the
	// elasticity rate: 40000 × 1.05 × 0.25.
	lifted := driver.DemandCeiling(model, usChipStd, 100, 100000)
	assert.Equal(t, 10500, lifted)
	assert.Greater(t, lifted, base)

	// Half the reference spend lifts by half the rate.
	half := driver.DemandCeiling(model, usChipStd, 100, 50000)
	assert.Equal(t, 10250, half)
}

func TestDemandCeiling_PremiumCaptureIsHigher(t *testing.T) {
	driver := newTestDriver(t, DefaultSearchConfig())
	model, err := market.NewDemandModel(-100, 50000, 3)
	require.NoError(t, err)

	standard := driver.DemandCeiling(model, usChipStd, 100, 0)
	premium := driver.DemandCeiling(model, usChipPrem, 100, 0)
	assert.Equal(t, 10000, standard)
	assert.Equal(t, 14000, premium)
}

func TestSearch_FindsProfitableSale(t *testing.T) {
	driver := newTestDriver(t, DefaultSearchConfig())

	state := emptyState()
	state.Inventory[usChipStd] = 37000

	model, err := market.NewDemandModel(-100, 50000, 3)
	require.NoError(t, err)
	models := map[market.Segment]market.DemandModel{usChipStd: model}

	strategies := []Strategy{{
		Name:       "chip drawdown",
		PriceGrids: map[market.Segment][]float64{usChipStd: {35, 40, 45, 50}},
	}}

	report, err := driver.Search(context.Background(), state, models, strategies)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Evaluated)
	require.NotNil(t, report.Best)
	assert.Equal(t, "chip drawdown", report.Best.Candidate.StrategyName)
	assert.Contains(t, []float64{35, 40, 45, 50}, report.Best.Candidate.Price)
	assert.False(t, report.NoProfitableAction, "selling held inventory must beat doing nothing")
	assert.False(t, report.LowConfidence)
	assert.Equal(t, 3, report.Best.ModelSamples)
	assert.Greater(t, report.Best.Result.Score, report.BaselineScore)
}

func TestSearch_TieKeepsEnumerationOrder(t *testing.T) {
	driver := newTestDriver(t, SearchConfig{Workers: 4, MaxCandidates: 100})

	state := emptyState()
	state.Inventory[usChipStd] = 1000

	// Identical candidates under two strategy names produce identical
	// scores; the first strategy must win regardless of worker scheduling.
	grid := map[market.Segment][]float64{usChipStd: {45}}
	strategies := []Strategy{
		{Name: "first", PriceGrids: grid},
		{Name: "second", PriceGrids: grid},
	}

	for i := 0; i < 5; i++ {
		report, err := driver.Search(context.Background(), state, nil, strategies)
		require.NoError(t, err)
		assert.Equal(t, "first", report.Best.Candidate.StrategyName)
	}
}

func TestSearch_LowConfidenceWithoutModels(t *testing.T) {
	driver := newTestDriver(t, DefaultSearchConfig())

	state := emptyState()
	state.Inventory[usChipStd] = 5000

	strategies := []Strategy{{
		Name:       "blind",
		PriceGrids: map[market.Segment][]float64{usChipStd: {45}},
	}}

	report, err := driver.Search(context.Background(), state, nil, strategies)
	require.NoError(t, err)
	assert.True(t, report.LowConfidence, "every candidate was priced on the default model")
	assert.Equal(t, 0, report.Best.ModelSamples)
}

func TestSearch_NoProfitableAction(t *testing.T) {
	driver := newTestDriver(t, DefaultSearchConfig())

	// Nothing to sell and nothing assigned: no candidate can beat doing
	// nothing, but committing marketing spend makes each strictly worse.
	strategies := []Strategy{{
		Name:       "spend for nothing",
		PriceGrids: map[market.Segment][]float64{usChipStd: {45}},
		Costs:      planning.StrategyCosts{Marketing: 50000},
	}}

	report, err := driver.Search(context.Background(), emptyState(), nil, strategies)
	require.NoError(t, err)
	assert.True(t, report.NoProfitableAction)
}

func TestSearch_EmptyStrategies(t *testing.T) {
	driver := newTestDriver(t, DefaultSearchConfig())

	_, err := driver.Search(context.Background(), emptyState(), nil, nil)
	assert.ErrorIs(t, err, planning.ErrNoCandidates)

	_, err = driver.Search(context.Background(), emptyState(), nil, []Strategy{{Name: "empty"}})
	assert.ErrorIs(t, err, planning.ErrNoCandidates)
}

func TestSearch_CandidateBudget(t *testing.T) {
	driver := newTestDriver(t, SearchConfig{Workers: 1, MaxCandidates: 2})

	strategies := []Strategy{{
		Name:       "wide grid",
		PriceGrids: map[market.Segment][]float64{usChipStd: {40, 45, 50}},
	}}

	_, err := driver.Search(context.Background(), emptyState(), nil, strategies)
	assert.ErrorIs(t, err, planning.ErrCandidateLimit)
}

func TestSearch_ContextCancellation(t *testing.T) {
	driver := newTestDriver(t, SearchConfig{Workers: 2, MaxCandidates: 5000})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	strategies := []Strategy{{
		Name:       "cancelled",
		PriceGrids: map[market.Segment][]float64{usChipStd: {40, 45, 50}},
	}}

	_, err := driver.Search(ctx, emptyState(), nil, strategies)
	assert.ErrorIs(t, err, context.Canceled)
}

// countingObserver records instrumentation callbacks for assertions.
type countingObserver struct {
	mu       sync.Mutex
	solves   int
	searches int
	lastEval int
}

func (o *countingObserver) ObserveSolve(_ time.Duration, _ float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.solves++
}

func (o *countingObserver) ObserveSearch(evaluated int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.searches++
	o.lastEval = evaluated
}

func TestSearch_ObserverReceivesCallbacks(t *testing.T) {
	observer := &countingObserver{}
	driver := newTestDriver(t, DefaultSearchConfig()).WithObserver(observer)

	state := emptyState()
	state.Inventory[usChipStd] = 1000

	strategies := []Strategy{{
		Name:       "observed",
		PriceGrids: map[market.Segment][]float64{usChipStd: {40, 45}},
	}}

	_, err := driver.Search(context.Background(), state, nil, strategies)
	require.NoError(t, err)

	assert.Equal(t, 2, observer.solves)
	assert.Equal(t, 1, observer.searches)
	assert.Equal(t, 2, observer.lastEval)
}
