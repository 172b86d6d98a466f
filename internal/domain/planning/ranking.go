package planning

// RankingState carries the four normalized composite-score components.
type RankingState struct {
	Profit    float64
	Cash      float64
	Share     float64
	Inventory float64
}

// RankingEvaluator computes the composite performance score from the four
// normalized factors. The same formula drives the optimizer objective and is
// exposed standalone so externally proposed deals (negotiation offers) can be
// scored without re-running the constrained model. Pure, stateless.
type RankingEvaluator struct {
	weights Weights
	scales  ReferenceScales
}

// NewRankingEvaluator creates an evaluator with the configured weights and
// normalization scales.
func NewRankingEvaluator(weights Weights, scales ReferenceScales) *RankingEvaluator {
	return &RankingEvaluator{weights: weights, scales: scales}
}

// Score returns the weighted composite: profit, cash, share and inventory
// components must already be normalized by the reference scales.
func (e *RankingEvaluator) Score(state RankingState) float64 {
	return e.weights.Profit*state.Profit +
		e.weights.Cash*state.Cash +
		e.weights.Share*state.Share +
		e.weights.Inventory*state.Inventory
}

// Weights returns the configured component weights.
func (e *RankingEvaluator) Weights() Weights { return e.weights }

// Scales returns the configured normalization scales.
func (e *RankingEvaluator) Scales() ReferenceScales { return e.scales }

// NormalizeProfit divides a raw currency amount by the profit scale.
func (e *RankingEvaluator) NormalizeProfit(raw float64) float64 { return raw / e.scales.Profit }

// NormalizeCash divides a raw currency amount by the cash scale.
func (e *RankingEvaluator) NormalizeCash(raw float64) float64 { return raw / e.scales.Cash }

// NormalizeShare divides raw units sold by the share scale.
func (e *RankingEvaluator) NormalizeShare(raw float64) float64 { return raw / e.scales.Share }

// NormalizeInventory divides raw ending units by the inventory scale.
func (e *RankingEvaluator) NormalizeInventory(raw float64) float64 { return raw / e.scales.Inventory }
