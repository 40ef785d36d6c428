package redis

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/DSACMS/kyc-onboarding-api/pkg/core"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout  = 2 * time.Second
	defaultReadTimeout  = 2 * time.Second
	defaultWriteTimeout = 2 * time.Second
	defaultPoolTimeout  = 2 * time.Second

	defaultPoolSize     = 20
	defaultMinIdleConns = 2
)

var ErrNotConfigured = errors.New("redis is not configured")

// Configured reports whether an address was supplied. Redis is optional: without
// it the service runs without rate limiting.
func Configured(c core.RedisConfig) bool {
	return strings.TrimSpace(c.Addr) != ""
}

func NewClient(c core.RedisConfig, logger *slog.Logger) (*redis.Client, error) {
	if !Configured(c) {
		return nil, ErrNotConfigured
	}
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(
		slog.String("component", "redis"),
		slog.String("addr", c.Addr),
		slog.Int("db", c.DB),
	)

	opts := &redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		DialTimeout:  defaultDialTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		PoolTimeout:  defaultPoolTimeout,
		PoolSize:     defaultPoolSize,
		MinIdleConns: defaultMinIdleConns,
	}

	logger.Info("initializing redis client")

	rdb := redis.NewClient(opts)

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		logger.Warn("Otel Tracing Instrumentation Failed", "err", err)
	}

	if err := redisotel.InstrumentMetrics(rdb); err != nil {
		logger.Warn("Otel Metrics instrumentation Failed", "err", err)
	}
	return rdb, nil
}

func Ping(ctx context.Context, rdb *redis.Client) error {
	if rdb == nil {
		return ErrNotConfigured
	}
	return rdb.Ping(ctx).Err()
}
