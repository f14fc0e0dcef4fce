package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, closeFn, err := Open(ctx, &OpenConfig{Backend: BackendMemory})
		require.NoError(t, err)
		require.NotNil(t, store)
		assert.NoError(t, closeFn())
	})

	t.Run("sqlite", func(t *testing.T) {
		store, closeFn, err := Open(ctx, &OpenConfig{
			Backend:    BackendSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "teams.db"),
		})
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, "k", "v"))
		assert.NoError(t, closeFn())
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)

		store, closeFn, err := Open(ctx, &OpenConfig{
			Backend:   BackendRedis,
			RedisAddr: mr.Addr(),
		})
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, "k", "v"))

		value, err := mr.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", value)
		assert.NoError(t, closeFn())
	})

	t.Run("redis pings once", func(t *testing.T) {
		mr := miniredis.RunT(t)

		// A plain client's connection handshake plus one PING
		ref := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		before := mr.CommandCount()
		require.NoError(t, ref.Ping(ctx).Err())
		onePing := mr.CommandCount() - before
		require.NoError(t, ref.Close())

		before = mr.CommandCount()
		_, closeFn, err := Open(ctx, &OpenConfig{
			Backend:   BackendRedis,
			RedisAddr: mr.Addr(),
		})
		require.NoError(t, err)
		assert.Equal(t, onePing, mr.CommandCount()-before)
		assert.NoError(t, closeFn())
	})

	t.Run("redis honours the context", func(t *testing.T) {
		mr := miniredis.RunT(t)

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := Open(canceled, &OpenConfig{
			Backend:   BackendRedis,
			RedisAddr: mr.Addr(),
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("sqlite path with a query separator", func(t *testing.T) {
		_, _, err := Open(ctx, &OpenConfig{
			Backend:    BackendSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "teams.db?mode=ro"),
		})
		assert.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, _, err := Open(ctx, &OpenConfig{Backend: "etcd"})
		assert.Error(t, err)
	})

	t.Run("nil config", func(t *testing.T) {
		_, _, err := Open(ctx, nil)
		assert.Error(t, err)
	})
}
