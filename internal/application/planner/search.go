package planner

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/andrescamacho/intopia-go/internal/application/demand"
	"github.com/andrescamacho/intopia-go/internal/domain/market"
	"github.com/andrescamacho/intopia-go/internal/domain/planning"
)

// SearchConfig tunes the strategy search.
type SearchConfig struct {
	// ElasticityRate scales the marketing-spend demand multiplier:
	// forecast × (1 + rate × spend/reference).
	ElasticityRate float64
	// SpendReference is the marketing spend at which the full elasticity
	// rate applies.
	SpendReference float64
	// CaptureStandard and CapturePremium are the assumed achievable
	// market-share fractions per grade (premium higher).
	CaptureStandard float64
	CapturePremium  float64
	// MaxCandidates bounds the total (strategy, segment, price) triples a
	// single search may evaluate, so a pathological grid cannot stall it.
	MaxCandidates int
	// Workers is the number of concurrent solvers. Zero or one solves
	// sequentially.
	Workers int
}

// DefaultSearchConfig returns the search defaults.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		ElasticityRate:  0.05,
		SpendReference:  100000,
		CaptureStandard: 0.25,
		CapturePremium:  0.35,
		MaxCandidates:   5000,
		Workers:         4,
	}
}

// Strategy is one candidate configuration: the segments to test with their
// price grids, the production-grade assignment and the strategy spends.
type Strategy struct {
	Name       string
	PriceGrids map[market.Segment][]float64
	Assignment planning.Assignment
	Costs      planning.StrategyCosts
}

// Candidate identifies one (strategy, segment, price) triple.
type Candidate struct {
	StrategyName string
	Segment      market.Segment
	Price        float64
}

// CandidateResult couples a candidate with its solve outcome and the
// confidence of the demand model it was priced against.
type CandidateResult struct {
	Candidate Candidate
	Result    *SolveResult
	// DemandCeiling is the configured ceiling the candidate was tested at.
	DemandCeiling int
	// ModelSamples is the sample count of the demand model actually used;
	// zero means the conservative default was substituted.
	ModelSamples int
	// GradeFallback is true when the complementary grade's model was used.
	GradeFallback bool
}

// SearchReport is the driver's final output. It distinguishes "no profitable
// action found" from "insufficient historical data to estimate demand
// confidently", since the two warrant different operator guidance.
type SearchReport struct {
	// Best is the winning candidate, nil when nothing was evaluable.
	Best *CandidateResult
	// BaselineScore is the do-nothing score every candidate competes with.
	BaselineScore float64
	// Evaluated is the number of candidates solved.
	Evaluated int
	// NoProfitableAction is true when the best candidate scores no better
	// than doing nothing.
	NoProfitableAction bool
	// LowConfidence is true when every evaluated candidate was priced
	// against a zero-sample (default) demand model.
	LowConfidence bool
	// Warnings aggregates patent and evaluation annotations.
	Warnings []string
}

// SearchDriver enumerates candidate strategies, prices each against the
// demand models, re-solves the constraint model per candidate and retains
// the best-scoring one.
//
// Each solve is independent and side-effect free, so candidates fan out to a
// worker pool; inputs are immutable snapshots and results merge via a
// max-by-score reduction that preserves enumeration order on ties.
type SearchDriver struct {
	optimizer *Optimizer
	config    SearchConfig
	observer  SearchObserver
}

// SearchObserver receives instrumentation callbacks from the driver.
type SearchObserver interface {
	ObserveSolve(duration time.Duration, score float64)
	ObserveSearch(evaluated int)
}

type noopObserver struct{}

func (noopObserver) ObserveSolve(time.Duration, float64) {}
func (noopObserver) ObserveSearch(int)                   {}

// NewSearchDriver creates a driver around an optimizer.
func NewSearchDriver(optimizer *Optimizer, config SearchConfig) *SearchDriver {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.MaxCandidates <= 0 {
		config.MaxCandidates = DefaultSearchConfig().MaxCandidates
	}
	return &SearchDriver{optimizer: optimizer, config: config, observer: noopObserver{}}
}

// WithObserver attaches an instrumentation observer.
func (d *SearchDriver) WithObserver(observer SearchObserver) *SearchDriver {
	if observer != nil {
		d.observer = observer
	}
	return d
}

// CaptureFraction returns the assumed achievable share for a grade.
func (d *SearchDriver) CaptureFraction(grade market.Grade) float64 {
	if grade == market.GradePremium {
		return d.config.CapturePremium
	}
	return d.config.CaptureStandard
}

// DemandCeiling derives the maximum units assumed sellable for a segment at
// a price: the model forecast, lifted by the marketing elasticity multiplier,
// scaled by the grade's capture fraction.
func (d *SearchDriver) DemandCeiling(model market.DemandModel, segment market.Segment, price, marketingSpend float64) int {
	forecast := model.Forecast(price)
	if marketingSpend > 0 && d.config.SpendReference > 0 {
		forecast *= 1 + d.config.ElasticityRate*(marketingSpend/d.config.SpendReference)
	}
	return int(forecast * d.CaptureFraction(segment.Grade))
}

// candidate is the internal unit of work; seq preserves enumeration order.
type candidate struct {
	seq      int
	strategy *Strategy
	segment  market.Segment
	price    float64
}

// Search evaluates every (strategy, segment, price) candidate and returns the
// report. Ties keep the first candidate in enumeration order (segments sorted
// by canonical order, then price grid order). Context cancellation aborts
// outstanding work and returns the context error.
func (d *SearchDriver) Search(
	ctx context.Context,
	state planning.CurrentState,
	models map[market.Segment]market.DemandModel,
	strategies []Strategy,
) (*SearchReport, error) {
	if len(strategies) == 0 {
		return nil, planning.ErrNoCandidates
	}

	candidates, err := d.enumerate(strategies)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, planning.ErrNoCandidates
	}

	baseline, err := d.baselineScore(state)
	if err != nil {
		return nil, err
	}

	type indexed struct {
		seq    int
		result *CandidateResult
	}

	jobs := make(chan candidate)
	results := make(chan indexed, len(candidates))
	var wg sync.WaitGroup

	workers := d.config.Workers
	if workers > len(candidates) {
		workers = len(candidates)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cand := range jobs {
				if ctx.Err() != nil {
					return
				}
				results <- indexed{seq: cand.seq, result: d.evaluate(state, models, cand)}
			}
		}()
	}

feed:
	for _, cand := range candidates {
		select {
		case jobs <- cand:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &SearchReport{BaselineScore: baseline, LowConfidence: true}
	bestSeq := -1
	seen := map[string]bool{}
	for res := range results {
		if res.result == nil {
			continue
		}
		report.Evaluated++
		if res.result.ModelSamples > 0 {
			report.LowConfidence = false
		}
		for _, warning := range res.result.Result.Warnings {
			if !seen[warning] {
				seen[warning] = true
				report.Warnings = append(report.Warnings, warning)
			}
		}
		better := report.Best == nil ||
			res.result.Result.Score > report.Best.Result.Score ||
			(res.result.Result.Score == report.Best.Result.Score && res.seq < bestSeq)
		if better {
			report.Best = res.result
			bestSeq = res.seq
		}
	}
	sort.Strings(report.Warnings)

	if report.Best == nil {
		return nil, planning.ErrNoCandidates
	}
	report.NoProfitableAction = report.Best.Result.Score <= baseline
	d.observer.ObserveSearch(report.Evaluated)
	return report, nil
}

// enumerate flattens strategies into the ordered candidate list, enforcing
// the candidate budget.
func (d *SearchDriver) enumerate(strategies []Strategy) ([]candidate, error) {
	var candidates []candidate
	seq := 0
	for i := range strategies {
		strategy := &strategies[i]
		for _, segment := range market.Segments() {
			grid, ok := strategy.PriceGrids[segment]
			if !ok {
				continue
			}
			for _, price := range grid {
				if price <= 0 {
					continue
				}
				if len(candidates) >= d.config.MaxCandidates {
					return nil, fmt.Errorf("%w: budget %d", planning.ErrCandidateLimit, d.config.MaxCandidates)
				}
				candidates = append(candidates, candidate{
					seq:      seq,
					strategy: strategy,
					segment:  segment,
					price:    price,
				})
				seq++
			}
		}
	}
	return candidates, nil
}

// baselineScore solves the do-nothing problem: no conditions, no production,
// no spends. Every candidate must beat this to count as profitable action.
func (d *SearchDriver) baselineScore(state planning.CurrentState) (float64, error) {
	result, err := d.optimizer.Solve(state, Problem{Assignment: planning.Assignment{}})
	if err != nil {
		return math.Inf(-1), err
	}
	return result.Score, nil
}

// evaluate prices one candidate against the demand models and solves it.
// A solver-reported infeasibility aborts only this candidate: it keeps its
// sentinel -Inf score so the reduction discards it without crashing the
// search.
func (d *SearchDriver) evaluate(
	state planning.CurrentState,
	models map[market.Segment]market.DemandModel,
	cand candidate,
) *CandidateResult {
	resolution := demand.ResolveModel(models, cand.segment)
	ceiling := d.DemandCeiling(resolution.Model, cand.segment, cand.price, cand.strategy.Costs.Marketing)

	condition, err := market.NewCondition(cand.segment, cand.price, ceiling)
	if err != nil {
		return nil
	}

	start := time.Now()
	result, err := d.optimizer.Solve(state, Problem{
		Conditions: []market.Condition{condition},
		Assignment: cand.strategy.Assignment,
		Costs:      cand.strategy.Costs,
	})
	if err != nil {
		// Infeasibility is a construction logic error; the candidate is
		// abandoned with its -Inf sentinel rather than failing the search.
		if result == nil {
			return nil
		}
	}
	d.observer.ObserveSolve(time.Since(start), result.Score)

	return &CandidateResult{
		Candidate: Candidate{
			StrategyName: cand.strategy.Name,
			Segment:      cand.segment,
			Price:        cand.price,
		},
		Result:        result,
		DemandCeiling: ceiling,
		ModelSamples:  resolution.Model.Samples(),
		GradeFallback: resolution.FallbackGrade,
	}
}
