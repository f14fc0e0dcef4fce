package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/teams/internal/config"
	"github.com/KirkDiggler/teams/internal/handlers/discord"
	"github.com/KirkDiggler/teams/internal/repositories/group"
	"github.com/KirkDiggler/teams/internal/repositories/kv"
	"github.com/KirkDiggler/teams/internal/repositories/player"
	"github.com/KirkDiggler/teams/internal/services/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Discord.Token == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Open the key-value store
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	store, closeStore, err := kv.Open(ctx, cfg.Store.OpenConfig())
	cancel()
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Backend, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	// Initialize repositories
	groupRepo, err := group.NewKV(&group.Config{
		Store: store,
	})
	if err != nil {
		log.Fatalf("Failed to create group repository: %v", err)
	}

	playerRepo, err := player.NewKV(&player.Config{
		Store: store,
	})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	rosterSvc, err := roster.New(&roster.Config{
		GroupRepo:  groupRepo,
		PlayerRepo: playerRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create roster service: %v", err)
	}

	bot, err := discord.New(&discord.Config{
		Token:         cfg.Discord.Token,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		RosterService: rosterSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
