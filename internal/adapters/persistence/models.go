package persistence

import (
	"time"

	"gorm.io/gorm"
)

// HistoricalRecordModel is the database representation of one period record.
// Map-valued fields are stored as JSON text keyed by the canonical segment
// and plant key forms, so rows stay readable in both sqlite and postgres.
type HistoricalRecordModel struct {
	Period           int     `gorm:"primaryKey"`
	Profit           float64 `gorm:"not null"`
	Cash             float64 `gorm:"not null"`
	Inventory        string  `gorm:"type:text"`
	OwnSales         string  `gorm:"type:text"`
	MarketSales      string  `gorm:"type:text"`
	CompetitorPrices string  `gorm:"type:text"`
	Patents          string  `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName returns the table name for historical records
func (HistoricalRecordModel) TableName() string {
	return "historical_records"
}

// PublishedRankingModel is the database representation of one published
// per-period ranking score.
type PublishedRankingModel struct {
	Period    int     `gorm:"primaryKey"`
	Score     float64 `gorm:"not null"`
	CreatedAt time.Time
}

// TableName returns the table name for published rankings
func (PublishedRankingModel) TableName() string {
	return "published_rankings"
}

// DecisionLogModel is the database representation of one planning run outcome.
type DecisionLogModel struct {
	ID           string `gorm:"primaryKey"`
	StrategyName string `gorm:"not null;index"`
	Segment      string `gorm:"not null"`
	Price        float64
	Score        float64
	Warnings     string `gorm:"type:text"`
	Decision     string `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName returns the table name for decision log entries
func (DecisionLogModel) TableName() string {
	return "decision_log"
}

// Migrate runs schema auto-migration for all persistence models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&HistoricalRecordModel{},
		&PublishedRankingModel{},
		&DecisionLogModel{},
	)
}
