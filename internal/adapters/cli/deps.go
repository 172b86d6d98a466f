package cli

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/intopia-go/internal/adapters/persistence"
	"github.com/andrescamacho/intopia-go/internal/domain/planning"
	"github.com/andrescamacho/intopia-go/internal/infrastructure/config"
	"github.com/andrescamacho/intopia-go/internal/infrastructure/database"
)

// dependencies bundles the wiring every command needs.
type dependencies struct {
	cfg         *config.Config
	params      planning.Parameters
	db          *gorm.DB
	history     *persistence.GormHistoryRepository
	decisionLog *persistence.GormDecisionLogRepository
}

// buildDependencies loads configuration and opens the database.
func buildDependencies() (*dependencies, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	params, err := cfg.Planner.ToParameters()
	if err != nil {
		return nil, err
	}
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &dependencies{
		cfg:         cfg,
		params:      params,
		db:          db,
		history:     persistence.NewGormHistoryRepository(db),
		decisionLog: persistence.NewGormDecisionLogRepository(db),
	}, nil
}
