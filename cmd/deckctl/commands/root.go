// Package commands implements the deckctl command tree.
package commands

import (
	"database/sql"
	"log/slog"

	// Register the pgx driver with database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/armoury-api/internal/platform/catalogfile"
	"github.com/phrazzld/armoury-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// openDB opens the import target. Tests replace it.
var openDB = func(url string) (*sql.DB, error) {
	return sql.Open("pgx", url)
}

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	catalogPath string
	logLevel    string
	logger      *slog.Logger
}

// loadCatalog reads the catalog named by --catalog.
func (o *rootOptions) loadCatalog() (*catalogfile.Catalog, error) {
	return catalogfile.Load(o.catalogPath)
}

// NewRootCmd builds the deckctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "deckctl",
		Short:         "Inspect and import WARNO-style division catalogs",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ci := false
			l, err := logger.Setup(logger.LoggerConfig{
				Level:  opts.logLevel,
				Output: cmd.ErrOrStderr(),
				CI:     &ci,
			})
			if err != nil {
				return err
			}
			opts.logger = l
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "catalog.yaml", "catalog YAML file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(divisionsCmd(opts), armouryCmd(opts), importCmd(opts))
	return root
}

// Execute runs deckctl with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
