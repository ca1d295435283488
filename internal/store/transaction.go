package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/armoury-api/internal/platform/logger"
)

// TxFn runs catalog writes against an open transaction. A nil return commits.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction runs fn in a transaction named by operation (for example
// "import catalog"). Begin and commit failures wrap ErrTransactionFailed;
// an error from fn is returned as is after rollback. A panic in fn rolls
// back and is re-raised.
func RunInTransaction(ctx context.Context, db *sql.DB, operation string, fn TxFn) error {
	log := logger.FromContextOrDefault(ctx, slog.Default()).With(
		slog.String("component", "store_tx"),
		slog.String("operation", operation),
	)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("begin failed", slog.String("error", err.Error()))
		return fmt.Errorf("%w: begin %s: %w", ErrTransactionFailed, operation, err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("rollback after panic failed",
					slog.String("error", rbErr.Error()),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back after panic", slog.Any("panic", p))
			}
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("rollback failed",
				slog.String("rollback_error", rbErr.Error()),
				slog.String("error", err.Error()))
			return fmt.Errorf("%s: rollback failed: %v: %w", operation, rbErr, err)
		}
		log.Debug("rolled back", slog.String("error", err.Error()))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("commit failed", slog.String("error", err.Error()))
		return fmt.Errorf("%w: commit %s: %w", ErrTransactionFailed, operation, err)
	}

	log.Debug("committed")
	return nil
}
