package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/armoury-api/internal/config"
	"github.com/phrazzld/armoury-api/internal/domain/deck"
	"github.com/phrazzld/armoury-api/internal/platform/catalogfile"
	"github.com/phrazzld/armoury-api/internal/platform/postgres"
	"github.com/phrazzld/armoury-api/internal/service"
	"github.com/phrazzld/armoury-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the catalog is read from a file.
	db *sql.DB

	catalog     store.CatalogReader
	deckService service.DeckService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if err := app.openCatalog(ctx); err != nil {
		app.cleanup()
		return nil, err
	}

	policy, err := deck.ParsePolicy(cfg.Deck.Policy)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("invalid deck policy: %w", err)
	}

	app.deckService, err = service.NewDeckService(app.catalog, service.Options{
		Policy:    policy,
		MaxDrafts: cfg.Deck.MaxDrafts,
	}, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create deck service: %w", err)
	}

	logger.Info("Application initialized successfully",
		slog.String("deck_policy", policy.String()),
		slog.Int("max_drafts", cfg.Deck.MaxDrafts))
	return app, nil
}

// openCatalog connects the configured catalog source.
func (app *application) openCatalog(ctx context.Context) error {
	switch app.config.Catalog.Source {
	case config.CatalogSourceFile:
		catalog, err := catalogfile.Load(app.config.Catalog.FilePath)
		if err != nil {
			return fmt.Errorf("failed to load catalog file: %w", err)
		}
		app.catalog = catalog
		app.logger.Info("Catalog loaded from file", "path", app.config.Catalog.FilePath)
		return nil

	case config.CatalogSourcePostgres:
		db, err := setupAppDatabase(ctx, app.config, app.logger)
		if err != nil {
			return err
		}
		app.db = db

		if app.config.Database.AutoMigrate {
			if err := postgres.RunMigrations(db, "up", app.logger); err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}
		}
		app.catalog = postgres.NewPostgresCatalogStore(db, app.logger)
		return nil

	default:
		return fmt.Errorf("unknown catalog source %q", app.config.Catalog.Source)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
		app.db = nil
	}
	app.logger.Info("Application shutdown completed")
}
