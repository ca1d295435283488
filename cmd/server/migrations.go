package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/armoury-api/internal/config"
	"github.com/phrazzld/armoury-api/internal/platform/postgres"
)

// handleMigrations executes a migration command against the configured
// database. It's called from run() when the -migrate flag is set.
func handleMigrations(cfg *config.Config, migrateCmd string, logger *slog.Logger) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("migrations require a database URL")
	}

	db, err := setupAppDatabase(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("Error closing database connection", "error", cerr)
		}
	}()

	logger.Info("Executing migrations", "command", migrateCmd)
	if err := postgres.RunMigrations(db, migrateCmd, logger); err != nil {
		return fmt.Errorf("migration %s failed: %w", migrateCmd, err)
	}
	return nil
}
