package ratelimit

import (
	"context"
	"errors"
	"time"
)

var ErrLimitExceeded = errors.New("rate limit exceeded")

const (
	defaultMaxRequests = 30
	defaultWindow      = 60
	defaultFailOpen    = true
	defaultPrefix      = "rl:"
)

type Limiter interface {
	Allow(ctx context.Context, key string) error
}

type Options struct {
	// Requests a single key may make inside one window.
	MaxRequests int
	// Length of the fixed window. The counter for a key expires when it ends.
	Window time.Duration
	// If Redis is unreachable the limiter cannot count. This decides what Allow returns meanwhile.
	// TRUE: let the request through
	// FALSE: reject it with the Redis error
	FailOpen bool
	// Key prefix to prevent name clashing.
	Prefix string
}

func DefaultOptions() Options {
	return Options{
		MaxRequests: defaultMaxRequests,
		Window:      defaultWindow * time.Second,
		FailOpen:    defaultFailOpen,
		Prefix:      defaultPrefix,
	}
}
