package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DSACMS/kyc-onboarding-api/api"
	"github.com/DSACMS/kyc-onboarding-api/pkg/complycube"
	"github.com/DSACMS/kyc-onboarding-api/pkg/core"
	redisLocal "github.com/DSACMS/kyc-onboarding-api/pkg/redis"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := core.LoadEnv(); err != nil {
		log.Printf("env files: %v", err)
	}

	cfg, err := core.NewConfigFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otelService, err := core.NewOtelService(ctx, &cfg)
	if err != nil {
		log.Printf("otel disabled, failed to initialize: %v", err)
		otelService = core.NewNoopOtelService()
	}

	logger := core.NewLoggerWithOtel(cfg, otelService)
	defer otelService.Shutdown(context.Background(), logger)

	app, cleanup, err := buildApp(cfg, logger, otelService)
	if err != nil {
		logger.Error("Failed to build app", "err", err)
		return
	}
	defer cleanup()

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("starting server", "addr", addr, "environment", cfg.Environment)

	if err := runServer(ctx, app, addr); err != nil {
		logger.Error("server error", "err", err)
	}
}

func buildApp(cfg core.Config, logger *slog.Logger, otelService core.OtelService) (*fiber.App, func(), error) {
	cleanup := func() {}

	complyCube, err := complycube.New(&cfg.ComplyCube, complycube.Options{Logger: logger})
	if err != nil {
		return nil, cleanup, fmt.Errorf("complycube: %w", err)
	}

	var rdb *redis.Client
	if redisLocal.Configured(cfg.Redis) {
		rdb, err = redisLocal.NewClient(cfg.Redis, logger)
		if err != nil {
			return nil, cleanup, fmt.Errorf("redis: %w", err)
		}
		cleanup = func() {
			if err := rdb.Close(); err != nil {
				logger.Warn("redis close failed", "err", err)
			}
		}
	} else if cfg.RateLimit.Enabled {
		logger.Warn("rate limiting enabled without REDIS_ADDR; requests will not be limited")
	}

	app, err := api.New(&api.Config{
		Otel:       otelService,
		Logger:     logger,
		ComplyCube: complyCube,
		Redis:      rdb,
		Config:     cfg,
	})
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}

	return app, cleanup, nil
}

func runServer(ctx context.Context, app *fiber.App, addr string) error {
	srvErr := make(chan error, 1)

	go func() {
		srvErr <- app.Listen(addr)
	}()

	select {
	case err := <-srvErr:
		return err
	case <-ctx.Done():
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	return nil
}
