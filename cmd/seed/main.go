// Command seed loads the built-in classification patterns into the
// pattern store so the similarity strategy can run from the database.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aminafi/smartfinance/internal/classifier"
	"github.com/aminafi/smartfinance/internal/models"
	"github.com/aminafi/smartfinance/internal/repository"
	"github.com/aminafi/smartfinance/pkg/config"
	"github.com/aminafi/smartfinance/pkg/logger"
	"github.com/aminafi/smartfinance/pkg/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	patternRepo := repository.NewPatternRepository(db, appLogger)

	existing, err := patternRepo.ListAll(ctx)
	if err != nil {
		appLogger.Fatal("Failed to read pattern store", zap.Error(err))
	}
	if len(existing) > 0 {
		appLogger.Info("Pattern store already seeded", zap.Int("count", len(existing)))
		return
	}

	now := time.Now()
	defaults := classifier.DefaultPatterns()
	patterns := make([]*models.Pattern, 0, len(defaults))
	for i := range defaults {
		p := defaults[i]
		p.ID = uuid.New()
		p.CreatedAt = now
		p.UpdatedAt = now
		patterns = append(patterns, &p)
	}

	if err := patternRepo.CreateBatch(ctx, patterns); err != nil {
		appLogger.Fatal("Failed to seed patterns", zap.Error(err))
	}

	appLogger.Info("Pattern store seeded", zap.Int("count", len(patterns)))
}
