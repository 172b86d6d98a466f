package history

import "context"

// RecordRepository persists parsed period records.
type RecordRepository interface {
	// Save stores a record, replacing any existing record for the same period.
	Save(ctx context.Context, record *Record) error

	// FindAll returns all records ordered by period ascending.
	FindAll(ctx context.Context) ([]*Record, error)

	// FindLatest returns the record with the highest period number.
	// Returns ErrNoRecords when the store is empty.
	FindLatest(ctx context.Context) (*Record, error)
}

// RankingRepository persists published per-period ranking scores.
type RankingRepository interface {
	// SaveRanking stores a published ranking score for a period.
	SaveRanking(ctx context.Context, ranking *PublishedRanking) error

	// FindRankings returns all published rankings ordered by period ascending.
	FindRankings(ctx context.Context) ([]*PublishedRanking, error)
}
