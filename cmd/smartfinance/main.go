package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aminafi/smartfinance/internal/api"
	"github.com/aminafi/smartfinance/internal/api/handlers"
	"github.com/aminafi/smartfinance/internal/classifier"
	"github.com/aminafi/smartfinance/internal/repository"
	"github.com/aminafi/smartfinance/internal/service"
	"github.com/aminafi/smartfinance/pkg/auth"
	"github.com/aminafi/smartfinance/pkg/config"
	"github.com/aminafi/smartfinance/pkg/logger"
	"github.com/aminafi/smartfinance/pkg/postgres"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting SmartFinance service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	patternRepo := repository.NewPatternRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)

	detectService, err := buildDetectService(ctx, &cfg.Classifier, patternRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize classifier", zap.Error(err))
	}

	txService := service.NewTransactionService(txRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	detectHandler := handlers.NewDetectHandler(detectService, appLogger)
	txHandler := handlers.NewTransactionHandler(txService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, detectHandler, txHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

// buildDetectService assembles the detection pipeline for the configured
// strategy. The similarity strategy reports its own match score, the
// heuristic one a fixed confidence.
func buildDetectService(
	ctx context.Context,
	cfg *config.ClassifierConfig,
	patternRepo *repository.PatternRepository,
	appLogger *zap.Logger,
) (*service.DetectService, error) {
	amounts := classifier.NewRegexAmountExtractor()

	switch cfg.Strategy {
	case "similarity":
		patterns := classifier.DefaultPatterns()
		if cfg.LoadPatterns {
			stored, err := patternRepo.ListAll(ctx)
			if err != nil {
				return nil, err
			}
			if len(stored) > 0 {
				patterns = stored
			} else {
				appLogger.Warn("Pattern store is empty, using built-in patterns")
			}
		}
		sim := classifier.NewSimilarityClassifier(patterns)
		appLogger.Info("Classifier strategy selected",
			zap.String("strategy", cfg.Strategy),
			zap.Int("patterns", len(patterns)),
		)
		return service.NewDetectService(amounts, sim, sim, false, cfg.ThinkDelay, appLogger), nil

	case "heuristic", "":
		appLogger.Info("Classifier strategy selected", zap.String("strategy", "heuristic"))
		return service.NewDetectService(
			amounts,
			classifier.NewHeuristicTypeAnalyzer(),
			classifier.NewKeywordTitleGenerator(),
			true,
			cfg.ThinkDelay,
			appLogger,
		), nil

	default:
		return nil, fmt.Errorf("unknown classifier strategy %q", cfg.Strategy)
	}
}
