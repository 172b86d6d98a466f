package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/intopia-go/internal/domain/market"
	"github.com/andrescamacho/intopia-go/internal/domain/planning"
	"github.com/andrescamacho/intopia-go/pkg/utils"
)

// GormDecisionLogRepository implements planning.DecisionLogRepository on top
// of GORM.
type GormDecisionLogRepository struct {
	db *gorm.DB
}

// NewGormDecisionLogRepository creates a new GORM-based decision log repository
func NewGormDecisionLogRepository(db *gorm.DB) *GormDecisionLogRepository {
	return &GormDecisionLogRepository{db: db}
}

// decisionDocument is the JSON column layout for a serialized decision.
type decisionDocument struct {
	Production      map[string]int    `json:"production"`
	ProducedGrade   map[string]string `json:"produced_grade"`
	Open            map[string]bool   `json:"open"`
	Sales           map[string]int    `json:"sales"`
	EndingInventory map[string]int    `json:"ending_inventory"`
}

// Record stores a decision log entry, assigning a run identifier when the
// entry does not carry one.
func (r *GormDecisionLogRepository) Record(ctx context.Context, entry *planning.DecisionLogEntry) error {
	id := entry.ID
	if id == "" {
		id = utils.GenerateRunID(entry.StrategyName, entry.Segment)
	}
	warnings, err := encodeJSON(entry.Warnings)
	if err != nil {
		return err
	}
	decision, err := encodeDecision(entry.Decision)
	if err != nil {
		return err
	}
	model := &DecisionLogModel{
		ID:           id,
		StrategyName: entry.StrategyName,
		Segment:      entry.Segment,
		Price:        entry.Price,
		Score:        entry.Score,
		Warnings:     warnings,
		Decision:     decision,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record decision %s: %w", id, err)
	}
	entry.ID = id
	return nil
}

// ListRecent returns up to limit entries, newest first.
func (r *GormDecisionLogRepository) ListRecent(ctx context.Context, limit int) ([]*planning.DecisionLogEntry, error) {
	var models []DecisionLogModel
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load decision log: %w", err)
	}
	entries := make([]*planning.DecisionLogEntry, 0, len(models))
	for i := range models {
		entry, err := toDecisionLogEntry(&models[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func encodeDecision(decision *planning.Decision) (string, error) {
	if decision == nil {
		return "", nil
	}
	doc := decisionDocument{
		Production:      map[string]int{},
		ProducedGrade:   map[string]string{},
		Open:            map[string]bool{},
		Sales:           map[string]int{},
		EndingInventory: map[string]int{},
	}
	for plant, qty := range decision.Production {
		doc.Production[plant.String()] = qty
	}
	for plant, grade := range decision.ProducedGrade {
		doc.ProducedGrade[plant.String()] = grade.String()
	}
	for plant, open := range decision.Open {
		doc.Open[plant.String()] = open
	}
	for seg, qty := range decision.Sales {
		doc.Sales[seg.String()] = qty
	}
	for seg, qty := range decision.EndingInventory {
		doc.EndingInventory[seg.String()] = qty
	}
	return encodeJSON(doc)
}

func decodeDecision(raw string) (*planning.Decision, error) {
	if raw == "" {
		return nil, nil
	}
	var doc decisionDocument
	if err := decodeJSON(raw, &doc); err != nil {
		return nil, err
	}
	decision := planning.NewDecision()
	for key, qty := range doc.Production {
		plant, err := market.ParsePlant(key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode decision: %w", err)
		}
		decision.Production[plant] = qty
	}
	for key, name := range doc.ProducedGrade {
		plant, err := market.ParsePlant(key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode decision: %w", err)
		}
		grade := market.GradeStandard
		if name == market.GradePremium.String() {
			grade = market.GradePremium
		}
		decision.ProducedGrade[plant] = grade
	}
	for key, open := range doc.Open {
		plant, err := market.ParsePlant(key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode decision: %w", err)
		}
		decision.Open[plant] = open
	}
	for key, qty := range doc.Sales {
		seg, err := market.ParseSegment(key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode decision: %w", err)
		}
		decision.Sales[seg] = qty
	}
	for key, qty := range doc.EndingInventory {
		seg, err := market.ParseSegment(key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode decision: %w", err)
		}
		decision.EndingInventory[seg] = qty
	}
	return decision, nil
}

func toDecisionLogEntry(model *DecisionLogModel) (*planning.DecisionLogEntry, error) {
	var warnings []string
	if err := decodeJSON(model.Warnings, &warnings); err != nil {
		return nil, err
	}
	decision, err := decodeDecision(model.Decision)
	if err != nil {
		return nil, err
	}
	return &planning.DecisionLogEntry{
		ID:           model.ID,
		StrategyName: model.StrategyName,
		Segment:      model.Segment,
		Price:        model.Price,
		Score:        model.Score,
		Warnings:     warnings,
		Decision:     decision,
	}, nil
}
