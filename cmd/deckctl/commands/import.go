package commands

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phrazzld/armoury-api/internal/config"
	"github.com/phrazzld/armoury-api/internal/platform/logger"
	"github.com/phrazzld/armoury-api/internal/platform/postgres"
	"github.com/phrazzld/armoury-api/internal/redact"
	"github.com/phrazzld/armoury-api/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd(opts *rootOptions) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the catalog into PostgreSQL, replacing divisions with the same descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := v.GetString("database_url")
			if url == "" {
				return fmt.Errorf("a database URL is required (--database-url or %s_DATABASE_URL)", config.EnvPrefix)
			}

			catalog, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			db, err := openDB(url)
			if err != nil {
				return fmt.Errorf("failed to open database: %s", redact.Error(err))
			}
			defer func() { _ = db.Close() }()

			ctx := logger.WithLogger(cmd.Context(), opts.logger)
			if v.GetBool("migrate") {
				if err := postgres.RunMigrations(db, "up", opts.logger); err != nil {
					return fmt.Errorf("failed to apply migrations: %w", err)
				}
			}

			if err := importCatalog(ctx, db, catalog.Raw()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d units and %d divisions\n",
				len(catalog.Raw().Units), len(catalog.Raw().Divisions))
			return nil
		},
	}

	cmd.Flags().String("database-url", "", "PostgreSQL connection URL")
	cmd.Flags().Bool("migrate", true, "apply pending migrations before importing")
	_ = v.BindPFlag("database_url", cmd.Flags().Lookup("database-url"))
	_ = v.BindPFlag("migrate", cmd.Flags().Lookup("migrate"))
	_ = v.BindEnv("database_url")

	return cmd
}

// importCatalog stores the catalog in one transaction.
func importCatalog(ctx context.Context, db *sql.DB, catalog *store.Catalog) error {
	catalogStore := postgres.NewPostgresCatalogStore(db, logger.FromContext(ctx))
	err := store.RunInTransaction(ctx, db, "import catalog", func(ctx context.Context, tx *sql.Tx) error {
		return catalogStore.WithTx(tx).Import(ctx, catalog)
	})
	if err != nil {
		return fmt.Errorf("import failed: %s", redact.Error(err))
	}
	return nil
}
