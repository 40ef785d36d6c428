package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DSACMS/kyc-onboarding-api/pkg/core"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Ping_Set_Get(t *testing.T) {
	mr := miniredis.RunT(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rdb, err := NewClient(core.RedisConfig{Addr: mr.Addr()}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	err = Ping(ctx, rdb)
	require.NoErrorf(t, err, "Ping(ctx, rdb) returned an error: %v", err)

	key := "rl:test:foo"

	err = rdb.Set(ctx, key, "bar", 5*time.Second).Err()
	require.NoErrorf(t, err, `rdb.Set(ctx, key, "bar", 5*time.Second).Err() return an error: %v`, err)

	val, err := rdb.Get(ctx, key).Result()
	require.NoError(t, err)

	expected := "bar"
	assert.Equalf(t, expected, val, "Expected: %q; Got: %q", expected, val)
}

func TestNewClient_NotConfigured(t *testing.T) {
	rdb, err := NewClient(core.RedisConfig{Addr: "  "}, nil)

	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, rdb)
}

func TestPing_NilClient(t *testing.T) {
	assert.ErrorIs(t, Ping(context.Background(), nil), ErrNotConfigured)
}

func TestPing_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := NewClient(core.RedisConfig{Addr: mr.Addr()}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	assert.Error(t, Ping(ctx, rdb))
}
