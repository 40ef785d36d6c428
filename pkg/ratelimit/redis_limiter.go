package ratelimit

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type RedisLimiter struct {
	// Redis client holding the per-key counters.
	rdb *redis.Client
	// Name of the limited resource, combined with the caller key when building redis keys.
	name string
	// Limit and window.
	opts   Options
	logger *slog.Logger
}

func NewRedisLimiter(rdb *redis.Client, name string, opts Options, logger *slog.Logger) *RedisLimiter {
	if opts.MaxRequests <= 0 || opts.Window <= 0 {
		def := DefaultOptions()
		if opts.MaxRequests <= 0 {
			opts.MaxRequests = def.MaxRequests
		}
		if opts.Window <= 0 {
			opts.Window = def.Window
		}
	}
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RedisLimiter{
		rdb:  rdb,
		name: name,
		opts: opts,
		logger: logger.With(
			slog.String("component", "ratelimit"),
			slog.String("limiter", name),
		),
	}
}

func (l *RedisLimiter) key(caller string) string {
	return l.opts.Prefix + l.name + ":" + caller
}

// Allow counts one request for caller and returns ErrLimitExceeded once the
// window's budget is spent.
func (l *RedisLimiter) Allow(ctx context.Context, caller string) error {
	key := l.key(caller)

	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		l.logger.WarnContext(ctx, "rate limiter unavailable", "err", err, "fail_open", l.opts.FailOpen)
		if l.opts.FailOpen {
			return nil
		}
		return err
	}

	// a counter without a TTL never resets, so (re)open the window
	if pttl.Val() < 0 {
		if err := l.rdb.PExpire(ctx, key, l.opts.Window).Err(); err != nil {
			l.logger.WarnContext(ctx, "failed to set window expiry", "err", err)
		}
	}

	if int(incr.Val()) > l.opts.MaxRequests {
		return ErrLimitExceeded
	}

	return nil
}
