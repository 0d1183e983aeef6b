package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wisewallet/internal/config"
	"wisewallet/internal/handlers"
	"wisewallet/internal/middleware"
	"wisewallet/internal/models"
	"wisewallet/internal/services"
	"wisewallet/internal/snapshot"
	"wisewallet/internal/store"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	snapshots, err := snapshot.Open(&cfg.Database)
	if err != nil {
		slog.Error("Failed to open snapshot storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := snapshots.Close(); err != nil {
			slog.Error("Failed to close snapshot storage", "error", err)
		}
	}()

	domainStore := store.New(loadOrSeedState(cfg, snapshots))

	// Every mutation rewrites the whole snapshot. Persistence failures
	// are logged, never surfaced to the mutating request.
	domainStore.Subscribe(func(state *models.DomainState) {
		if err := snapshots.Save(cfg.Database.SnapshotName, state); err != nil {
			slog.Error("Failed to persist state snapshot", "error", err)
		}
	})

	metrics := services.NewMetrics()
	tracker := services.NewBudgetTracker(domainStore)
	goals := services.NewGoalService(domainStore, metrics)
	processor := services.NewRecurringProcessor(domainStore, metrics)
	analytics := services.NewAnalyticsService(domainStore, tracker)

	// Catch up any bills due today before serving traffic.
	processor.Process(models.Today())

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	handlers.RegisterRoutes(e, handlers.Dependencies{
		Store:     domainStore,
		Snapshots: snapshots,
		Tracker:   tracker,
		Goals:     goals,
		Processor: processor,
		Analytics: analytics,
		Palette:   services.NewColorPalette(),
	})

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

// loadOrSeedState restores the persisted snapshot, falling back to the
// demo dataset (or an empty state) on first run.
func loadOrSeedState(cfg *config.Config, snapshots *snapshot.Repository) *models.DomainState {
	state, found, err := snapshots.Load(cfg.Database.SnapshotName)
	if err != nil {
		slog.Error("Failed to load state snapshot, starting fresh", "error", err)
	}
	if found {
		slog.Info("Restored state snapshot",
			"name", cfg.Database.SnapshotName,
			"transactions", len(state.Transactions),
			"budgets", len(state.Budgets),
			"goals", len(state.Goals))
		return state
	}

	if !cfg.Seed.Demo {
		slog.Info("No snapshot found, starting with empty state")
		return models.NewDomainState()
	}

	seed := uint64(cfg.Seed.RandSeed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	slog.Info("No snapshot found, seeding demo data")
	return services.DefaultState(models.Today(), seed)
}
