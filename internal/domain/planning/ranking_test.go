package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankingEvaluator_Score(t *testing.T) {
	evaluator := NewRankingEvaluator(
		Weights{Profit: 0.4, Cash: 0.3, Share: 0.2, Inventory: 0.1},
		ReferenceScales{Profit: 500000, Cash: 20000000, Share: 150000, Inventory: 100000},
	)

	score := evaluator.Score(RankingState{Profit: 1, Cash: 1, Share: 1, Inventory: 1})
	assert.InDelta(t, 1.0, score, 1e-12, "weights sum to one")

	score = evaluator.Score(RankingState{Profit: 0.5, Cash: 0.2, Share: 0, Inventory: 0.4})
	assert.InDelta(t, 0.4*0.5+0.3*0.2+0.1*0.4, score, 1e-12)
}

func TestRankingEvaluator_Normalization(t *testing.T) {
	evaluator := NewRankingEvaluator(
		Weights{Profit: 0.4, Cash: 0.3, Share: 0.2, Inventory: 0.1},
		ReferenceScales{Profit: 500000, Cash: 20000000, Share: 150000, Inventory: 100000},
	)

	assert.InDelta(t, 0.5, evaluator.NormalizeProfit(250000), 1e-12)
	assert.InDelta(t, 0.25, evaluator.NormalizeCash(5000000), 1e-12)
	assert.InDelta(t, 1.0, evaluator.NormalizeShare(150000), 1e-12)
	assert.InDelta(t, 0.37, evaluator.NormalizeInventory(37000), 1e-12)
}

func TestStrategyCosts(t *testing.T) {
	costs := StrategyCosts{Marketing: 50000, RND: 20000, Reports: 5000}
	assert.Equal(t, 75000.0, costs.Total())
	assert.NoError(t, costs.Validate())

	assert.Error(t, StrategyCosts{Marketing: -1}.Validate())
}
