package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-ledger-service/internal/infrastructure/config"
	"travel-ledger-service/internal/infrastructure/directory"
	"travel-ledger-service/internal/infrastructure/persistence"
	"travel-ledger-service/internal/interface/handler"
	historyRepo "travel-ledger-service/internal/interface/repository"
	airportRepo "travel-ledger-service/internal/interface/repository"
	"travel-ledger-service/internal/usecase"
	"travel-ledger-service/pkg/logger"
	"travel-ledger-service/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Travel Ledger Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// The airport directory must be loaded before any merge runs
	airports, err := loadDirectory(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to load airport directory", "error", err)
	}

	// Set up repositories and use cases
	histories := historyRepo.NewMongoHistoryRepository(db, cfg.HistoryCollection)
	appMetrics := metrics.NewMetrics(cfg.MetricsNamespace, nil)

	assembler := usecase.NewStatsAssembler(
		usecase.NewMergeEngine(airports, log),
		usecase.NewPatternEngine(cfg.PatternWorkers, log),
		usecase.AssemblerOptions{Version: cfg.AppVersion, Hubs: cfg.HubAirports},
		log,
	)
	reportService := usecase.NewReportService(assembler, histories, appMetrics, log)

	// Set up HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	handler.NewReportHandler(reportService, log).Register(e.Group("/api/v1"))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Travel Ledger Service stopped")
}

func loadDirectory(ctx context.Context, cfg *config.Config, log logger.Logger) (*directory.Snapshot, error) {
	if cfg.AirportSource == config.AirportSourceFile {
		f, err := os.Open(cfg.AirportFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open airport file: %w", err)
		}
		defer f.Close()

		snapshot, err := directory.LoadJSON(f)
		if err != nil {
			return nil, err
		}
		log.Info("Airport directory loaded from file", "path", cfg.AirportFile, "airports", snapshot.Len())
		return snapshot, nil
	}

	gormDB, err := persistence.NewPostgresDB(ctx, cfg.PostgresURI)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	return directory.Load(ctx, airportRepo.NewGormAirportRepository(gormDB), log)
}
