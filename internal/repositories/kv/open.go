package kv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Backend names a Store implementation
type Backend string

const (
	// BackendSQLite keeps values in a SQLite file on the device
	BackendSQLite Backend = "sqlite"

	// BackendRedis keeps values in a Redis server
	BackendRedis Backend = "redis"

	// BackendMemory keeps values in process memory only
	BackendMemory Backend = "memory"
)

// OpenConfig selects and configures a backend
type OpenConfig struct {
	Backend Backend

	// SQLitePath is the database file for BackendSQLite
	SQLitePath string

	// Redis connection settings for BackendRedis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open builds the configured Store. The returned close function releases the
// backend's resources and is never nil when err is nil.
func Open(ctx context.Context, cfg *OpenConfig) (Store, func() error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("config cannot be nil")
	}

	switch cfg.Backend {
	case BackendMemory:
		return NewMemory(), func() error { return nil }, nil

	case BackendSQLite:
		store, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		// Ping under the caller's context; NewRedis would ping again without it
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return &redisStore{client: client}, client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
