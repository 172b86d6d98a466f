package planner

import (
	"fmt"
	"math"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
	"github.com/andrescamacho/intopia-go/internal/domain/planning"
	"github.com/andrescamacho/intopia-go/pkg/utils"
)

// Problem is the immutable per-candidate input to a solve: the market
// conditions under test, the production-grade assignment and the fixed
// strategy spends. Replacing the legacy sequential setter protocol with a
// single value object removes hidden ordering dependencies between calls.
type Problem struct {
	Conditions []market.Condition
	Assignment planning.Assignment
	Costs      planning.StrategyCosts
}

// SolveResult is the outcome of one constraint-model solve.
type SolveResult struct {
	Decision *planning.Decision
	// Score is the achieved composite objective value.
	Score float64
	// Revenue, PeriodProfit and CashPeriod are the raw (unnormalized)
	// period projections behind the score, for operator display.
	Revenue      float64
	PeriodProfit float64
	CashPeriod   float64
	// Warnings carries patent-gate annotations; degradations are surfaced,
	// never hidden.
	Warnings []string
}

// Optimizer builds and solves the constrained production-pricing program for
// one candidate. Each solve is independent: no state is carried across
// invocations, so solves may run concurrently against the same read-only
// inputs.
//
// The model maximizes the normalized composite score over integer production
// quantities with plant activation linkage (a closed plant produces exactly
// zero, an open plant at least the minimum batch), patent gating, the 1:1
// chip→computer consumption dependency, per-segment demand ceilings and the
// exact inventory flow identity.
//
// Solving strategy: regions are independent once the objective is decomposed
// (it is additive per region plus global constants), and each region has at
// most four plant open/close combinations. With the activation flags and the
// grade assignment fixed, the remaining program's value is jointly concave in
// the two production quantities (LP value under right-hand-side
// perturbation), and the optimal sales allocation per segment is a bound
// comparison. Two nested exact concave searches over the integer production
// ranges therefore recover the true mixed-integer optimum without an
// external solver.
type Optimizer struct {
	params    planning.Parameters
	evaluator *planning.RankingEvaluator
}

// NewOptimizer creates an optimizer after validating the parameter tables.
func NewOptimizer(params planning.Parameters) (*Optimizer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Optimizer{
		params:    params,
		evaluator: planning.NewRankingEvaluator(params.Weights, params.Scales),
	}, nil
}

// Evaluator exposes the shared ranking evaluator.
func (o *Optimizer) Evaluator() *planning.RankingEvaluator { return o.evaluator }

// Params exposes the optimizer's parameter tables.
func (o *Optimizer) Params() planning.Parameters { return o.params }

// unitValues are the per-unit marginal contributions to the composite score.
type unitValues struct {
	// money converts one unit of period profit into score.
	money float64
	// share is the score value of one unit sold.
	share float64
	// inventory is the score value of one unit of ending inventory,
	// before storage cost.
	inventory float64
}

// Solve builds and solves the model for one candidate. The all-zero decision
// is always feasible; an infeasible outcome therefore indicates a
// construction bug and is returned as ErrInfeasible with a -Inf score.
func (o *Optimizer) Solve(state planning.CurrentState, problem Problem) (*SolveResult, error) {
	if err := problem.Costs.Validate(); err != nil {
		return nil, err
	}

	assignment, warnings := problem.Assignment.Gate(state.Patents)

	// Pricing a segment above the held patent level is invalid outright:
	// the condition is dropped (no sale permitted) and the rejection is
	// surfaced, so the driver reports "patent insufficient" instead of a
	// silently degraded score.
	conditions := make(map[market.Segment]market.Condition, len(problem.Conditions))
	for _, cond := range problem.Conditions {
		seg := cond.Segment()
		if int(seg.Grade) > state.PatentLevel(seg.Plant()) {
			warnings = append(warnings, fmt.Sprintf(
				"patent insufficient: pricing %s rejected, grade above patent level %d",
				seg, state.PatentLevel(seg.Plant())))
			continue
		}
		conditions[seg] = cond
	}

	weights := o.params.Weights
	scales := o.params.Scales
	values := unitValues{
		money:     weights.Profit/scales.Profit + o.params.CashFlowFactor*weights.Cash/scales.Cash,
		share:     weights.Share / scales.Share,
		inventory: weights.Inventory / scales.Inventory,
	}

	decision := planning.NewDecision()
	for _, region := range market.Regions() {
		plan := o.solveRegion(region, state, assignment, conditions, values)
		plan.applyTo(decision)
	}

	// Segments untouched by any region plan still carry their opening
	// inventory through unchanged.
	for _, seg := range market.Segments() {
		if _, ok := decision.EndingInventory[seg]; !ok {
			decision.EndingInventory[seg] = state.OpeningInventory(seg)
		}
	}

	if err := decision.CheckFlow(state.Inventory); err != nil {
		return &SolveResult{Decision: decision, Score: math.Inf(-1), Warnings: warnings},
			fmt.Errorf("%w: %v", planning.ErrInfeasible, err)
	}

	result := o.scoreDecision(state, decision, conditions, problem.Costs)
	result.Warnings = warnings
	if math.IsNaN(result.Score) || math.IsInf(result.Score, 0) {
		result.Score = math.Inf(-1)
		return result, planning.ErrInfeasible
	}
	return result, nil
}

// scoreDecision computes the raw period financials and the composite score
// for an assembled decision.
func (o *Optimizer) scoreDecision(
	state planning.CurrentState,
	decision *planning.Decision,
	conditions map[market.Segment]market.Condition,
	costs planning.StrategyCosts,
) *SolveResult {
	var revenue, variableCost, fixedCost, storageCost float64

	for seg, qty := range decision.Sales {
		if cond, ok := conditions[seg]; ok {
			revenue += cond.Price() * float64(qty)
		}
	}
	for plant, qty := range decision.Production {
		spec, ok := o.params.Plant(plant)
		if !ok || qty == 0 {
			continue
		}
		variableCost += o.params.VariableCostRate[plant.Product] * spec.ReferencePrice * float64(qty)
	}
	for plant, open := range decision.Open {
		if spec, ok := o.params.Plant(plant); ok && open {
			fixedCost += spec.FixedCost
		}
	}
	for seg, qty := range decision.EndingInventory {
		if spec, ok := o.params.Plant(seg.Plant()); ok {
			storageCost += spec.StorageRate * float64(qty)
		}
	}

	closedPlants := len(o.params.Plants) - decision.OpenPlants()
	idlePenalty := o.params.IdlePenalty * float64(closedPlants)

	profit := revenue - variableCost - fixedCost - storageCost - costs.Total() - idlePenalty
	cash := o.params.CashFlowFactor * profit

	score := o.evaluator.Score(planning.RankingState{
		Profit:    state.Profit + o.evaluator.NormalizeProfit(profit),
		Cash:      state.Cash + o.evaluator.NormalizeCash(cash),
		Share:     state.Share + o.evaluator.NormalizeShare(float64(decision.UnitsSold())),
		Inventory: o.evaluator.NormalizeInventory(float64(decision.TotalEndingInventory())),
	})

	return &SolveResult{
		Decision:     decision,
		Score:        score,
		Revenue:      revenue,
		PeriodProfit: profit,
		CashPeriod:   cash,
	}
}

// regionPlan holds one region's share of the decision.
type regionPlan struct {
	region             market.Region
	chipOpen, compOpen bool
	chipGrade          market.Grade
	compGrade          market.Grade
	chipProd, compProd int
	sales              map[market.Segment]int
	ending             map[market.Segment]int
	value              float64
}

func (p *regionPlan) applyTo(decision *planning.Decision) {
	chipPlant := market.Plant{Region: p.region, Product: market.ProductChip}
	compPlant := market.Plant{Region: p.region, Product: market.ProductComputer}
	decision.Open[chipPlant] = p.chipOpen
	decision.Open[compPlant] = p.compOpen
	decision.Production[chipPlant] = p.chipProd
	decision.Production[compPlant] = p.compProd
	if p.chipOpen {
		decision.ProducedGrade[chipPlant] = p.chipGrade
	}
	if p.compOpen {
		decision.ProducedGrade[compPlant] = p.compGrade
	}
	for seg, qty := range p.sales {
		decision.Sales[seg] = qty
	}
	for seg, qty := range p.ending {
		decision.EndingInventory[seg] = qty
	}
}

// solveRegion finds the optimal plan for one region by enumerating the four
// plant activation combinations and running the nested concave searches for
// each. Combinations are tried from fewest to most open plants; a later
// combination replaces the incumbent only on a strictly greater value, so
// ties keep the do-less alternative deterministically.
func (o *Optimizer) solveRegion(
	region market.Region,
	state planning.CurrentState,
	assignment planning.Assignment,
	conditions map[market.Segment]market.Condition,
	values unitValues,
) *regionPlan {
	chipPlant := market.Plant{Region: region, Product: market.ProductChip}
	compPlant := market.Plant{Region: region, Product: market.ProductComputer}
	chipSpec, chipOK := o.params.Plant(chipPlant)
	compSpec, compOK := o.params.Plant(compPlant)

	chipChoice := assignment.Choice(chipPlant)
	compChoice := assignment.Choice(compPlant)
	canOpenChip := chipOK && chipChoice != planning.DoNotProduce && chipSpec.Capacity >= o.params.MinBatch
	canOpenComp := compOK && compChoice != planning.DoNotProduce && compSpec.Capacity >= o.params.MinBatch

	combos := [][2]bool{{false, false}}
	if canOpenChip {
		combos = append(combos, [2]bool{true, false})
	}
	if canOpenComp {
		combos = append(combos, [2]bool{false, true})
	}
	if canOpenChip && canOpenComp {
		combos = append(combos, [2]bool{true, true})
	}

	var best *regionPlan
	for _, combo := range combos {
		plan := o.solveCombo(region, state, conditions, values, comboSpec{
			chipOpen:  combo[0],
			compOpen:  combo[1],
			chipGrade: gradeOf(chipChoice),
			compGrade: gradeOf(compChoice),
			chipSpec:  chipSpec,
			compSpec:  compSpec,
		})
		if plan == nil {
			continue
		}
		if best == nil || plan.value > best.value {
			best = plan
		}
	}
	return best
}

func gradeOf(choice planning.GradeChoice) market.Grade {
	if choice == planning.DoNotProduce {
		return market.GradeStandard
	}
	return choice.Grade()
}

type comboSpec struct {
	chipOpen, compOpen   bool
	chipGrade, compGrade market.Grade
	chipSpec, compSpec   planning.PlantSpec
}

// solveCombo optimizes production quantities for a fixed activation
// combination. Returns nil when the combination admits no feasible batch.
func (o *Optimizer) solveCombo(
	region market.Region,
	state planning.CurrentState,
	conditions map[market.Segment]market.Condition,
	values unitValues,
	combo comboSpec,
) *regionPlan {
	chipInv := func(g market.Grade) int {
		return state.OpeningInventory(market.Segment{Region: region, Product: market.ProductChip, Grade: g})
	}

	eval := func(chipProd, compProd int) float64 {
		return o.evalQuantities(region, state, conditions, values, combo, chipProd, compProd).value
	}

	// Bounds for chip production at a fixed computer batch.
	chipBounds := func(compProd int) (int, int, bool) {
		if !combo.chipOpen {
			// Consumption must be covered by opening chip inventory alone.
			if compProd > chipInv(combo.compGrade) {
				return 0, 0, false
			}
			return 0, 0, true
		}
		lo := o.params.MinBatch
		if combo.chipGrade == combo.compGrade && compProd > chipInv(combo.compGrade) {
			if need := compProd - chipInv(combo.compGrade); need > lo {
				lo = need
			}
		} else if combo.chipGrade != combo.compGrade && compProd > chipInv(combo.compGrade) {
			return 0, 0, false
		}
		if lo > combo.chipSpec.Capacity {
			return 0, 0, false
		}
		return lo, combo.chipSpec.Capacity, true
	}

	bestChipFor := func(compProd int) (int, float64, bool) {
		lo, hi, ok := chipBounds(compProd)
		if !ok {
			return 0, math.Inf(-1), false
		}
		prod, value := maximizeConcave(lo, hi, func(chipProd int) float64 {
			return eval(chipProd, compProd)
		})
		return prod, value, true
	}

	var chipProd, compProd int
	if !combo.compOpen {
		prod, _, ok := bestChipFor(0)
		if !ok {
			return nil
		}
		chipProd = prod
	} else {
		// Upper bound on the computer batch: plant capacity, and the
		// largest chip pool any chip batch could supply.
		maxPool := chipInv(combo.compGrade)
		if combo.chipOpen && combo.chipGrade == combo.compGrade {
			maxPool += combo.chipSpec.Capacity
		}
		hi := utils.Min(combo.compSpec.Capacity, maxPool)
		lo := o.params.MinBatch
		if hi < lo {
			return nil
		}
		best, _ := maximizeConcave(lo, hi, func(compProd int) float64 {
			_, value, ok := bestChipFor(compProd)
			if !ok {
				return math.Inf(-1)
			}
			return value
		})
		compProd = best
		prod, _, ok := bestChipFor(compProd)
		if !ok {
			return nil
		}
		chipProd = prod
	}

	plan := o.evalQuantities(region, state, conditions, values, combo, chipProd, compProd)
	return plan
}

// evalQuantities materializes the optimal sales allocation for fixed
// production quantities and returns the region plan with its marginal
// objective contribution.
//
// With quantities fixed, each pool unit independently goes to its best exit:
// sold (price plus share value, no storage) or carried (inventory value minus
// storage), with sales capped by the demand ceiling and consumption reserved
// first. This is the exact LP optimum for the fixed right-hand side.
func (o *Optimizer) evalQuantities(
	region market.Region,
	state planning.CurrentState,
	conditions map[market.Segment]market.Condition,
	values unitValues,
	combo comboSpec,
	chipProd, compProd int,
) *regionPlan {
	plan := &regionPlan{
		region:    region,
		chipOpen:  combo.chipOpen,
		compOpen:  combo.compOpen,
		chipGrade: combo.chipGrade,
		compGrade: combo.compGrade,
		chipProd:  chipProd,
		compProd:  compProd,
		sales:     map[market.Segment]int{},
		ending:    map[market.Segment]int{},
	}

	allocate := func(seg market.Segment, available int, storageRate float64) {
		// Segments without a condition cannot sell (ceiling stays zero) and
		// contribute only their keep value, so sellValue never multiplies a
		// zero sold count as an infinity.
		sellValue := 0.0
		ceiling := 0
		if cond, ok := conditions[seg]; ok {
			sellValue = values.money*cond.Price() + values.share
			ceiling = cond.DemandCeiling()
		}
		keepValue := values.inventory - values.money*storageRate

		sold := 0
		if ceiling > 0 && sellValue > keepValue {
			sold = utils.Min(available, ceiling)
		}
		plan.sales[seg] = sold
		plan.ending[seg] = available - sold
		plan.value += float64(sold)*sellValue + float64(available-sold)*keepValue
	}

	for _, grade := range market.Grades() {
		seg := market.Segment{Region: region, Product: market.ProductChip, Grade: grade}
		pool := state.OpeningInventory(seg)
		if combo.chipOpen && grade == combo.chipGrade {
			pool += chipProd
		}
		if combo.compOpen && grade == combo.compGrade {
			pool -= compProd // 1:1 consumption, reserved before sales
		}
		if pool < 0 {
			plan.value = math.Inf(-1)
			return plan
		}
		allocate(seg, pool, combo.chipSpec.StorageRate)
	}

	for _, grade := range market.Grades() {
		seg := market.Segment{Region: region, Product: market.ProductComputer, Grade: grade}
		pool := state.OpeningInventory(seg)
		if combo.compOpen && grade == combo.compGrade {
			pool += compProd
		}
		allocate(seg, pool, combo.compSpec.StorageRate)
	}

	chipRate := o.params.VariableCostRate[market.ProductChip]
	compRate := o.params.VariableCostRate[market.ProductComputer]
	plan.value -= values.money * chipRate * combo.chipSpec.ReferencePrice * float64(chipProd)
	plan.value -= values.money * compRate * combo.compSpec.ReferencePrice * float64(compProd)

	if combo.chipOpen {
		plan.value -= values.money * combo.chipSpec.FixedCost
	} else {
		plan.value -= values.money * o.params.IdlePenalty
	}
	if combo.compOpen {
		plan.value -= values.money * combo.compSpec.FixedCost
	} else {
		plan.value -= values.money * o.params.IdlePenalty
	}

	return plan
}

// concaveEps breaks discrete-derivative ties toward smaller quantities.
const concaveEps = 1e-9

// maximizeConcave finds an exact maximizer of a concave function over the
// integer interval [lo, hi]. Concavity makes the discrete derivative
// f(x+1)−f(x) non-increasing, so the first index where it drops to zero or
// below is located by bisection.
func maximizeConcave(lo, hi int, f func(int) float64) (int, float64) {
	if lo >= hi {
		return lo, f(lo)
	}
	left, right := lo, hi
	for left < right {
		mid := left + (right-left)/2
		if f(mid+1)-f(mid) > concaveEps {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left, f(left)
}
