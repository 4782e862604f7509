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

	"github.com/JulianRR24/planningweb-push-scheduler/internal/config"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/handler"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/health"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/infra/dispatchrecorder"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/infra/onesignal"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/infra/repository"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability/logging"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability/metrics"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability/middleware"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/clock"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/cycle"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/dispatch"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/schedule"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/trigger"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/window"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
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

	if !cfg.Push.Configured() {
		slog.Warn("push gateway credentials not configured, broadcasts will fail")
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	cycleMetrics, err := metrics.NewCycleMetrics()
	if err != nil {
		slog.Error("failed to initialize cycle metrics", slog.String("error", err.Error()))
		return 1
	}

	// Dispatch result recorder (InfluxDB for local, BigQuery for gcloud)
	recorderCfg := dispatchrecorder.LoadConfig()
	recorder, err := dispatchrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize dispatch recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close dispatch recorder", slog.String("error", err.Error()))
		}
	}()

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

	stateRepo := repository.NewStateRepository(redisClient)
	gateway := onesignal.NewClient(cfg.Push.AppID, cfg.Push.APIKey, cfg.Push.APIURL, cfg.Push.DeepLinkURL)

	cycleService := cycle.NewService(
		stateRepo,
		dispatch.NewDispatcher(gateway, cycleMetrics),
		clock.NewNormalizer(cfg.Schedule.UTCOffsetMinutes),
		schedule.NewResolver(),
		window.NewEvaluator(),
		trigger.NewPlanner(),
		recorder,
		cycleMetrics,
		cycle.CredentialStatus{
			AppID:  cfg.Push.AppID != "",
			APIKey: cfg.Push.APIKey != "",
		},
	)
	schedulerHandler := handler.NewSchedulerHandler(cycleService)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      logging.Module("push-scheduler"),
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, cfg.Push, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes. The root route mirrors the edge-function contract the PWA
	// and the external scheduler already call.
	r.Any("/", schedulerHandler.Handle)
	v1 := r.Group("/api/v1")
	{
		v1.Any("/scheduler/trigger", schedulerHandler.Handle)
	}

	// Optional in-process ticker for deployments without an external scheduler
	ticker, err := initTicker(cycleService, cfg)
	if err != nil {
		slog.Error("failed to initialize ticker", slog.String("error", err.Error()))
		return 1
	}
	if ticker != nil {
		ticker.Start()
		defer func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer stopCancel()
			if err := ticker.Stop(stopCtx); err != nil {
				slog.Warn("ticker stop error", slog.String("error", err.Error()))
			}
		}()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("utc_offset_minutes", cfg.Schedule.UTCOffsetMinutes),
			slog.Bool("ticker_enabled", ticker != nil),
		)
		serverErr <- srv.ListenAndServe()
	}()

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
