package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/armoury-api/internal/domain"
	"github.com/phrazzld/armoury-api/internal/platform/logger"
	"github.com/phrazzld/armoury-api/internal/store"
)

// PostgresCatalogStore implements the store.CatalogStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCatalogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCatalogStore creates a new PostgreSQL implementation of the CatalogStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCatalogStore(db store.DBTX, logger *slog.Logger) *PostgresCatalogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCatalogStore{
		db:     db,
		logger: logger.With(slog.String("component", "catalog_store")),
	}
}

// Ensure PostgresCatalogStore implements store.CatalogStore interface
var _ store.CatalogStore = (*PostgresCatalogStore)(nil)

// WithTx implements store.CatalogStore.WithTx
func (s *PostgresCatalogStore) WithTx(tx *sql.Tx) store.CatalogStore {
	return &PostgresCatalogStore{
		db:     tx,
		logger: s.logger,
	}
}

// ListDivisions implements store.CatalogStore.ListDivisions
func (s *PostgresCatalogStore) ListDivisions(ctx context.Context) ([]store.DivisionSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT d.descriptor, COUNT(p.pack_descriptor)
		FROM divisions d
		LEFT JOIN division_packs p ON p.division_descriptor = d.descriptor
		GROUP BY d.descriptor
		ORDER BY d.descriptor
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list divisions", slog.String("error", err.Error()))
		return nil, store.NewStoreError("division", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	summaries := []store.DivisionSummary{}
	for rows.Next() {
		var summary store.DivisionSummary
		if err := rows.Scan(&summary.Descriptor, &summary.PackCount); err != nil {
			return nil, store.NewStoreError("division", "list", "scan failed", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("division", "list", "row iteration failed", err)
	}

	return summaries, nil
}

// GetDivision implements store.CatalogStore.GetDivision
// Returns store.ErrDivisionNotFound if the division does not exist.
func (s *PostgresCatalogStore) GetDivision(ctx context.Context, descriptor string) (*domain.Division, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving division", slog.String("division", descriptor))

	division := &domain.Division{Descriptor: descriptor}
	err := s.db.QueryRowContext(ctx,
		`SELECT cost_matrix_name FROM divisions WHERE descriptor = $1`,
		descriptor,
	).Scan(&division.CostMatrix.Name)
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("division not found", slog.String("division", descriptor))
			return nil, store.ErrDivisionNotFound
		}
		log.Error("failed to get division",
			slog.String("division", descriptor),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("division", "get", "query failed", MapError(err))
	}

	matrix, err := s.getMatrixRows(ctx, descriptor)
	if err != nil {
		return nil, err
	}
	division.CostMatrix.Matrix = matrix

	packs, err := s.getPacks(ctx, descriptor)
	if err != nil {
		return nil, err
	}
	division.Packs = packs

	return division, nil
}

func (s *PostgresCatalogStore) getMatrixRows(ctx context.Context, descriptor string) ([]domain.MatrixRow, error) {
	query := `
		SELECT name, activation_costs
		FROM division_matrix_rows
		WHERE division_descriptor = $1
		ORDER BY position
	`
	rows, err := s.db.QueryContext(ctx, query, descriptor)
	if err != nil {
		return nil, store.NewStoreError("cost matrix", "get", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var matrix []domain.MatrixRow
	for rows.Next() {
		var (
			row   domain.MatrixRow
			costs []byte
		)
		if err := rows.Scan(&row.Name, &costs); err != nil {
			return nil, store.NewStoreError("cost matrix", "get", "scan failed", err)
		}
		if err := json.Unmarshal(costs, &row.ActivationCosts); err != nil {
			return nil, store.NewStoreError("cost matrix", "get", "invalid activation costs", err)
		}
		matrix = append(matrix, row)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("cost matrix", "get", "row iteration failed", err)
	}
	return matrix, nil
}

func (s *PostgresCatalogStore) getPacks(ctx context.Context, descriptor string) ([]domain.Pack, error) {
	query := `
		SELECT pack_descriptor, unit_descriptor, number_of_units, xp_multipliers,
		       number_of_cards, available_transports
		FROM division_packs
		WHERE division_descriptor = $1
		ORDER BY position
	`
	rows, err := s.db.QueryContext(ctx, query, descriptor)
	if err != nil {
		return nil, store.NewStoreError("pack", "get", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var packs []domain.Pack
	for rows.Next() {
		var (
			pack        domain.Pack
			multipliers []byte
			transports  []byte
		)
		if err := rows.Scan(
			&pack.PackDescriptor,
			&pack.UnitDescriptor,
			&pack.NumberOfUnitsInPack,
			&multipliers,
			&pack.NumberOfCards,
			&transports,
		); err != nil {
			return nil, store.NewStoreError("pack", "get", "scan failed", err)
		}
		if err := json.Unmarshal(multipliers, &pack.NumberOfUnitInPackXPMultiplier); err != nil {
			return nil, store.NewStoreError("pack", "get", "invalid veterancy multipliers", err)
		}
		if len(transports) > 0 {
			if err := json.Unmarshal(transports, &pack.AvailableTransports); err != nil {
				return nil, store.NewStoreError("pack", "get", "invalid transports", err)
			}
		}
		packs = append(packs, pack)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("pack", "get", "row iteration failed", err)
	}
	return packs, nil
}

// GetUnitMap implements store.CatalogStore.GetUnitMap
func (s *PostgresCatalogStore) GetUnitMap(ctx context.Context) (domain.UnitMap, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT descriptor, name, factory_descriptor FROM units ORDER BY descriptor`)
	if err != nil {
		log.Error("failed to load units", slog.String("error", err.Error()))
		return nil, store.NewStoreError("unit", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	units := domain.UnitMap{}
	for rows.Next() {
		var u domain.Unit
		if err := rows.Scan(&u.Descriptor, &u.Name, &u.FactoryDescriptor); err != nil {
			return nil, store.NewStoreError("unit", "list", "scan failed", err)
		}
		units[u.Descriptor] = u
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("unit", "list", "row iteration failed", err)
	}
	return units, nil
}

// Import implements store.CatalogStore.Import
// Units are upserted; each imported division replaces any stored division
// with the same descriptor, including its matrix rows and packs.
func (s *PostgresCatalogStore) Import(ctx context.Context, catalog *store.Catalog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if catalog == nil {
		return fmt.Errorf("%w: nil catalog", store.ErrInvalidEntity)
	}
	if err := catalog.Validate(); err != nil {
		log.Warn("catalog validation failed during import", slog.String("error", err.Error()))
		if errors.Is(err, store.ErrDuplicate) {
			return err
		}
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	for _, u := range catalog.Units {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO units (descriptor, name, factory_descriptor)
			VALUES ($1, $2, $3)
			ON CONFLICT (descriptor) DO UPDATE
			SET name = EXCLUDED.name, factory_descriptor = EXCLUDED.factory_descriptor
		`, u.Descriptor, u.Name, u.FactoryDescriptor)
		if err != nil {
			log.Error("failed to upsert unit",
				slog.String("unit", u.Descriptor),
				slog.String("error", err.Error()))
			return store.NewStoreError("unit", "import", "upsert failed", MapError(err))
		}
	}

	for i := range catalog.Divisions {
		if err := s.importDivision(ctx, &catalog.Divisions[i]); err != nil {
			log.Error("failed to import division",
				slog.String("division", catalog.Divisions[i].Descriptor),
				slog.String("error", err.Error()))
			return err
		}
	}

	log.Info("catalog imported",
		slog.Int("units", len(catalog.Units)),
		slog.Int("divisions", len(catalog.Divisions)))
	return nil
}

func (s *PostgresCatalogStore) importDivision(ctx context.Context, d *domain.Division) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM divisions WHERE descriptor = $1`, d.Descriptor); err != nil {
		return store.NewStoreError("division", "import", "delete failed", MapError(err))
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO divisions (descriptor, cost_matrix_name) VALUES ($1, $2)`,
		d.Descriptor, d.CostMatrix.Name); err != nil {
		if IsUniqueViolation(err) {
			return store.NewStoreError("division", "import", "division imported twice: "+d.Descriptor, MapError(err))
		}
		return store.NewStoreError("division", "import", "insert failed", MapError(err))
	}

	for pos, row := range d.CostMatrix.Matrix {
		costs, err := toJSONB(row.ActivationCosts)
		if err != nil {
			return store.NewStoreError("cost matrix", "import", "encode activation costs", err)
		}
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO division_matrix_rows (division_descriptor, position, name, activation_costs)
			VALUES ($1, $2, $3, $4)
		`, d.Descriptor, pos, row.Name, costs); err != nil {
			return store.NewStoreError("cost matrix", "import", "insert failed", MapError(err))
		}
	}

	for pos, p := range d.Packs {
		multipliers, err := toJSONB(p.NumberOfUnitInPackXPMultiplier)
		if err != nil {
			return store.NewStoreError("pack", "import", "encode veterancy multipliers", err)
		}
		transports, err := toJSONB(p.AvailableTransports)
		if err != nil {
			return store.NewStoreError("pack", "import", "encode transports", err)
		}
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO division_packs (
				division_descriptor, position, pack_descriptor, unit_descriptor,
				number_of_units, xp_multipliers, number_of_cards, available_transports
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			d.Descriptor,
			pos,
			p.PackDescriptor,
			p.UnitDescriptor,
			p.NumberOfUnitsInPack,
			multipliers,
			p.NumberOfCards,
			transports,
		); err != nil {
			if IsUniqueViolation(err) {
				return store.NewStoreError("pack", "import", "duplicate pack descriptor: "+p.PackDescriptor, MapError(err))
			}
			return store.NewStoreError("pack", "import", "insert failed", MapError(err))
		}
	}
	return nil
}

// toJSONB encodes a slice for a JSONB column. Nil slices are stored as [].
func toJSONB[T any](values []T) (string, error) {
	if values == nil {
		values = []T{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
