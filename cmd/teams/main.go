// Package main runs one roster command against the configured local store.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/teams/internal/cli"
	"github.com/KirkDiggler/teams/internal/common/apperr"
	"github.com/KirkDiggler/teams/internal/config"
	"github.com/KirkDiggler/teams/internal/repositories/group"
	"github.com/KirkDiggler/teams/internal/repositories/kv"
	"github.com/KirkDiggler/teams/internal/repositories/player"
	"github.com/KirkDiggler/teams/internal/services/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := kv.Open(ctx, cfg.Store.OpenConfig())
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	err = run(ctx, store, os.Args[1:])
	if closeErr := closeStore(); closeErr != nil {
		log.Printf("close store: %v", closeErr)
	}

	switch {
	case err == nil:
		return
	case errors.Is(err, cli.ErrNotConfirmed):
		os.Exit(1)
	case errors.Is(err, cli.ErrUsage):
		fmt.Fprint(os.Stderr, cli.Usage)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, apperr.UserMessage(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, store kv.Store, args []string) error {
	groupRepo, err := group.NewKV(&group.Config{Store: store})
	if err != nil {
		return fmt.Errorf("failed to create group repository: %w", err)
	}

	playerRepo, err := player.NewKV(&player.Config{Store: store})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	svc, err := roster.New(&roster.Config{
		GroupRepo:  groupRepo,
		PlayerRepo: playerRepo,
		Logger:     slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	})
	if err != nil {
		return fmt.Errorf("failed to create roster service: %w", err)
	}

	return cli.Run(ctx, svc, args, os.Stdout)
}
