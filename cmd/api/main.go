package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/sportstats/internal/api/http"
	"github.com/spec-kit/sportstats/internal/api/http/handlers"
	"github.com/spec-kit/sportstats/internal/auth"
	"github.com/spec-kit/sportstats/internal/config"
	"github.com/spec-kit/sportstats/internal/domain"
	"github.com/spec-kit/sportstats/internal/events"
	"github.com/spec-kit/sportstats/internal/observability"
	"github.com/spec-kit/sportstats/internal/persistence"
	"github.com/spec-kit/sportstats/internal/repository"
	"github.com/spec-kit/sportstats/internal/service"
	"github.com/spec-kit/sportstats/internal/sinks"
	"github.com/spec-kit/sportstats/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	blobs, err := persistence.Open(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}
	adapter := persistence.NewAdapter(blobs, cfg.Storage.KeyPrefix, logger)
	defer func() {
		if err := adapter.Close(); err != nil {
			logger.Warn("storage close failed", zap.Error(err))
		}
	}()

	if cfg.Auth.Enabled() {
		if err := auth.CheckHash(cfg.Auth.EditorPasswordHash); err != nil {
			logger.Fatal("invalid AUTH_EDITOR_PASSWORD_HASH", zap.Error(err))
		}
	}

	store := repository.NewStatsStore(domain.Snapshot{})
	dispatcher := events.NewInMemoryDispatcher()
	logSink := sinks.NewLogSink(logger)

	statsService := service.NewStatsService(service.StatsDependencies{
		Store:      store,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	viewService := service.NewViewService(service.ViewDependencies{
		Store:      store,
		Dispatcher: dispatcher,
		Charts:     logSink,
		Maps:       logSink,
		Reports:    logSink,
		Logger:     logger,
	})
	syncService := service.NewSyncService(service.SyncDependencies{
		Store:        store,
		Adapter:      adapter,
		Dispatcher:   dispatcher,
		Logger:       logger,
		SeedDefaults: cfg.Storage.SeedDefaults,
	})
	prefsService := service.NewPreferencesService(adapter, dispatcher, logger)
	authService := service.NewAuthService(cfg.Auth)

	worker.StartSubscribers(syncService, viewService)
	syncService.Restore(ctx)
	prefsService.Restore(ctx)
	if err := viewService.Refresh(ctx); err != nil {
		logger.Warn("initial view refresh failed", zap.Error(err))
	}

	board := worker.NewLiveBoard()
	scheduler := worker.NewScheduler(ctx, logger)
	if cfg.Live.ClockEnabled {
		scheduler.Go("clock", func(ctx context.Context) {
			worker.RunClock(ctx, board, time.Now)
		})
	}
	scheduler.Go("live-scores", func(ctx context.Context) {
		worker.RunLiveScores(ctx, worker.MockScoreFeed{}, board, cfg.Live.ScoresRefreshInterval(), logger)
	})

	var authMiddleware *auth.AuthMiddleware
	if authService.Enabled() {
		authMiddleware = auth.NewAuthMiddleware(authService.TokenManager())
	} else {
		logger.Warn("editor auth disabled, mutating routes are open")
	}

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, adapter, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Teams:          handlers.NewTeamsHandler(statsService),
		Players:        handlers.NewPlayersHandler(statsService),
		Data:           handlers.NewDataHandler(statsService),
		Views:          handlers.NewViewsHandler(viewService),
		Preferences:    handlers.NewPreferencesHandler(prefsService),
		Live:           handlers.NewLiveHandler(board),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("storage", cfg.Storage.Backend))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	scheduler.Stop()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
