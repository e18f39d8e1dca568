package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/config"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/handler"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/health"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/infra/handlestore"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/infra/profileapi"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/infra/quotecatalog"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/observability/logging"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/observability/metrics"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/observability/middleware"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/random"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/service/content"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/service/distribute"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/service/schedule"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/service/window"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	// Validate configuration
	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.PushGateway.Validate(); err != nil {
		slog.Error("push gateway configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	schedulerMetrics, err := metrics.NewSchedulerMetrics()
	if err != nil {
		slog.Error("failed to initialize scheduler metrics", slog.String("error", err.Error()))
		return 1
	}

	// Initialize dependencies
	profileClient := profileapi.NewClient(cfg.UserBackendURL)

	catalogDB, err := quotecatalog.Open(cfg.Catalog.Dir)
	if err != nil {
		slog.Error("failed to open quote catalog", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := catalogDB.Close(); err != nil {
			slog.Warn("failed to close quote catalog", slog.String("error", err.Error()))
		}
	}()

	slog.Info("quote catalog opened",
		slog.String("dir", cfg.Catalog.Dir),
	)

	// Initialize push transport (gateway HTTP for local, Cloud Tasks for gcloud)
	transport, cleanup, err := initPushTransport(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize push transport", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("push transport cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	handleStore := handlestore.NewHandleStore(redisClient)
	quoteRepo := quotecatalog.NewCatalog(catalogDB)

	rng := random.NewFromGlobal()
	scheduleService := schedule.NewService(
		profileClient,
		quoteRepo,
		transport,
		handleStore,
		window.NewResolver(),
		distribute.NewDistributor(rng),
		content.NewSelector(rng),
		schedulerMetrics,
	)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      logging.Module("notification-scheduling"),
		TracerName:  "github.com/KasumiMercury/motiva-notification-scheduling/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, catalogDB, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/users/:userID/schedule/reschedule", scheduleHandler.HandleReschedule)
		v1.DELETE("/users/:userID/schedule", scheduleHandler.HandleCancel)
		v1.POST("/users/:userID/schedule/test", scheduleHandler.HandleSendTest)
		v1.GET("/users/:userID/schedule/stats", scheduleHandler.HandleStats)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("user_backend_url", cfg.UserBackendURL),
		)
		serverErr <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
