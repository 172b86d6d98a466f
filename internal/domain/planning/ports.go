package planning

import "context"

// DecisionLogEntry records one winning strategy for audit and calibration.
type DecisionLogEntry struct {
	ID           string
	StrategyName string
	Segment      string
	Price        float64
	Score        float64
	Warnings     []string
	Decision     *Decision
}

// DecisionLogRepository persists the outcome of each planning run.
type DecisionLogRepository interface {
	// Record stores a decision log entry.
	Record(ctx context.Context, entry *DecisionLogEntry) error

	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*DecisionLogEntry, error)
}
