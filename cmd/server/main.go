// Package main implements the entry point for the Armoury API server, which
// serves division catalogs and lets clients draft decks against them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	// Register the pgx driver with database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// main is the entry point for the armoury-api server.
// It loads configuration, sets up logging, opens the catalog source,
// builds the deck service and serves HTTP until SIGINT or SIGTERM.
func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default: ./config.yaml if present)")
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, reset, status, version) and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *migrateCmd); err != nil {
		log.Printf("armoury-api: %v", err)
		os.Exit(1)
	}
}

// run performs the startup sequence and blocks until the server stops.
func run(ctx context.Context, configPath, migrateCmd string) error {
	cfg, err := loadAppConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		return handleMigrations(cfg, migrateCmd, logger)
	}

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	logger.Info("Armoury API starting",
		slog.Int("port", cfg.Server.Port),
		slog.String("catalog_source", cfg.Catalog.Source),
		slog.String("deck_policy", cfg.Deck.Policy))

	return app.Run(ctx)
}
