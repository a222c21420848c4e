package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diapredict/diapredict/internal/application/prediction"
	"github.com/diapredict/diapredict/internal/config"
	"github.com/diapredict/diapredict/pkg/adapters/metrics/prometheus"
	"github.com/diapredict/diapredict/pkg/adapters/scoring"
	"github.com/diapredict/diapredict/pkg/api/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting prediction gateway",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	cfg.LogStatus(logger)

	// The gateway still serves with an incomplete scoring config so the
	// health probe can report exactly what is missing.
	if missing := cfg.ReadinessErrors(); len(missing) > 0 {
		logger.Warn("scoring configuration incomplete, /predict will fail",
			zap.Strings("errors", missing))
	}

	// Initialize adapters
	scorer, err := scoring.NewScorer(&scoring.Config{
		Format:      cfg.Scoring.Format,
		EndpointURL: cfg.Scoring.EndpointURL,
		Token:       cfg.Scoring.Token,
		Timeout:     cfg.Scoring.RequestTimeout,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal("failed to create scoring client", zap.Error(err))
	}

	metricsCollector := prometheus.NewCollector()

	// Initialize application components
	service := prediction.NewService(
		scorer,
		prediction.NewValidator(),
		metricsCollector,
		logger,
	)

	httpServer := http.NewServer(&http.Config{
		AppConfig: cfg,
		Service:   service,
		Logger:    logger,
	})

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("prediction gateway started",
		zap.String("addr", cfg.HTTPAddr()),
		zap.String("model_format", cfg.Scoring.Format))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("prediction gateway shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
