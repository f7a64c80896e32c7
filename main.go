// Package main is the entry point for the RaidMaster registration API.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"raidmaster/src/app/server"
	"raidmaster/src/core/ports"
	"raidmaster/src/infra/config"
	"raidmaster/src/infra/db"
	"raidmaster/src/infra/discord"
	"raidmaster/src/infra/gemini"
	"raidmaster/src/infra/logger"
	"raidmaster/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"store", cfg.Store.Driver,
	)

	// Initialize the persisted store
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// External collaborators
	var summarizer ports.SummaryGenerator
	if cfg.Summary.APIKey != "" {
		gen, err := gemini.NewSummaryGenerator(ctx, gemini.Options{
			APIKey: cfg.Summary.APIKey,
			Model:  cfg.Summary.Model,
		}, logger.WithComponent(log, "gemini"))
		if err != nil {
			return err
		}
		summarizer = gen
	} else {
		log.Warn("APP_GEMINI_API_KEY not set, submissions will use the fallback summary")
	}
	notifier := discord.NewWebhookNotifier(cfg.Notify.Timeout, logger.WithComponent(log, "discord"))

	// Create and run HTTP server
	srv := server.New(cfg, log, server.Deps{
		Store:      store,
		Summarizer: summarizer,
		Notifier:   notifier,
	})

	// Run blocks until shutdown signal is received
	return srv.Run()
}

func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (ports.KeyValueStore, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return repo.NewMemoryStore(), func() {}, nil
	case config.StoreSQLite:
		lite, err := db.NewSQLite(ctx, cfg.Store.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewSQLiteStore(lite, log), func() { _ = lite.Close() }, nil
	case config.StorePostgres:
		pg, err := db.NewPostgres(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewPostgresStore(pg, log), pg.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}
