package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/intopia-go/internal/domain/history"
)

// GormHistoryRepository implements history.RecordRepository and
// history.RankingRepository on top of GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM-based history repository
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Save stores a record, replacing any existing record for the same period.
func (r *GormHistoryRepository) Save(ctx context.Context, record *history.Record) error {
	model, err := toRecordModel(record)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "period"}},
		UpdateAll: true,
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save record for period %d: %w", record.Period, err)
	}
	return nil
}

// FindAll returns all records ordered by period ascending.
func (r *GormHistoryRepository) FindAll(ctx context.Context) ([]*history.Record, error) {
	var models []HistoricalRecordModel
	if err := r.db.WithContext(ctx).Order("period ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	records := make([]*history.Record, 0, len(models))
	for i := range models {
		record, err := toRecord(&models[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// FindLatest returns the record with the highest period number.
func (r *GormHistoryRepository) FindLatest(ctx context.Context) (*history.Record, error) {
	var model HistoricalRecordModel
	err := r.db.WithContext(ctx).Order("period DESC").First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, history.ErrNoRecords
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest record: %w", err)
	}
	return toRecord(&model)
}

// SaveRanking stores a published ranking score for a period.
func (r *GormHistoryRepository) SaveRanking(ctx context.Context, ranking *history.PublishedRanking) error {
	model := &PublishedRankingModel{Period: ranking.Period, Score: ranking.Score}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "period"}},
		UpdateAll: true,
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ranking for period %d: %w", ranking.Period, err)
	}
	return nil
}

// FindRankings returns all published rankings ordered by period ascending.
func (r *GormHistoryRepository) FindRankings(ctx context.Context) ([]*history.PublishedRanking, error) {
	var models []PublishedRankingModel
	if err := r.db.WithContext(ctx).Order("period ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load rankings: %w", err)
	}
	rankings := make([]*history.PublishedRanking, 0, len(models))
	for _, m := range models {
		rankings = append(rankings, &history.PublishedRanking{Period: m.Period, Score: m.Score})
	}
	return rankings, nil
}

func toRecordModel(record *history.Record) (*HistoricalRecordModel, error) {
	inventory, err := encodeSegmentInts(record.Inventory)
	if err != nil {
		return nil, err
	}
	ownSales, err := encodeSegmentInts(record.OwnSales)
	if err != nil {
		return nil, err
	}
	marketSales, err := encodePlantInts(record.MarketSales)
	if err != nil {
		return nil, err
	}
	prices, err := encodePriceVectors(record.CompetitorPrices)
	if err != nil {
		return nil, err
	}
	patents, err := encodePlantInts(record.Patents)
	if err != nil {
		return nil, err
	}
	return &HistoricalRecordModel{
		Period:           record.Period,
		Profit:           record.Profit,
		Cash:             record.Cash,
		Inventory:        inventory,
		OwnSales:         ownSales,
		MarketSales:      marketSales,
		CompetitorPrices: prices,
		Patents:          patents,
	}, nil
}

func toRecord(model *HistoricalRecordModel) (*history.Record, error) {
	inventory, err := decodeSegmentInts(model.Inventory)
	if err != nil {
		return nil, err
	}
	ownSales, err := decodeSegmentInts(model.OwnSales)
	if err != nil {
		return nil, err
	}
	marketSales, err := decodePlantInts(model.MarketSales)
	if err != nil {
		return nil, err
	}
	prices, err := decodePriceVectors(model.CompetitorPrices)
	if err != nil {
		return nil, err
	}
	patents, err := decodePlantInts(model.Patents)
	if err != nil {
		return nil, err
	}
	record := &history.Record{
		Period:           model.Period,
		Profit:           model.Profit,
		Cash:             model.Cash,
		Inventory:        inventory,
		OwnSales:         ownSales,
		MarketSales:      marketSales,
		CompetitorPrices: prices,
		Patents:          patents,
	}
	record.ApplyDefaults()
	return record, nil
}
