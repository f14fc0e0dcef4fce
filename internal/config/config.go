// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/KirkDiggler/teams/internal/repositories/kv"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the entrypoints need
type Config struct {
	Store   StoreConfig
	Discord DiscordConfig
}

// StoreConfig selects the key-value backend
type StoreConfig struct {
	Backend       string `env:"TEAMS_STORE" envDefault:"sqlite"`
	SQLitePath    string `env:"TEAMS_SQLITE_PATH" envDefault:"teams.db"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// DiscordConfig holds the bot credentials
type DiscordConfig struct {
	Token         string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`
}

// Load reads the given .env files, or ./.env when none are given, and then the
// environment. Missing .env files are ignored; variables already set win.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// OpenConfig translates the store settings for kv.Open
func (c StoreConfig) OpenConfig() *kv.OpenConfig {
	return &kv.OpenConfig{
		Backend:       kv.Backend(c.Backend),
		SQLitePath:    c.SQLitePath,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
	}
}
