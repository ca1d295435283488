package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phrazzld/armoury-api/internal/domain"
)

// Catalog is a complete set of divisions and the units their packs deploy.
type Catalog struct {
	Units     []domain.Unit     `json:"units" yaml:"units"`
	Divisions []domain.Division `json:"divisions" yaml:"divisions"`
}

// Validate checks every unit and division of the catalog.
func (c *Catalog) Validate() error {
	for i, u := range c.Units {
		if err := u.Validate(); err != nil {
			return fmt.Errorf("unit %d: %w", i, err)
		}
	}
	seen := make(map[string]struct{}, len(c.Divisions))
	for i := range c.Divisions {
		d := &c.Divisions[i]
		if err := d.Validate(); err != nil {
			return err
		}
		if _, dup := seen[d.Descriptor]; dup {
			return fmt.Errorf("%w: division %s", ErrDuplicate, d.Descriptor)
		}
		seen[d.Descriptor] = struct{}{}
	}
	return nil
}

// DivisionSummary is the listing entry of a division.
type DivisionSummary struct {
	Descriptor string `json:"descriptor"`
	PackCount  int    `json:"pack_count"`
}

// CatalogReader provides read access to the catalog.
type CatalogReader interface {
	// ListDivisions returns every division ordered by descriptor.
	ListDivisions(ctx context.Context) ([]DivisionSummary, error)

	// GetDivision returns a division with its cost matrix and packs.
	// Returns ErrDivisionNotFound if no division has the descriptor.
	GetDivision(ctx context.Context, descriptor string) (*domain.Division, error)

	// GetUnitMap returns every known unit keyed by descriptor.
	GetUnitMap(ctx context.Context) (domain.UnitMap, error)
}

// CatalogStore is a CatalogReader that can also replace its content.
type CatalogStore interface {
	CatalogReader

	// Import stores the catalog, replacing units and divisions with the same
	// descriptors. Import MUST be run within a transaction so a failed import
	// leaves the previous catalog intact; use WithTx with RunInTransaction.
	Import(ctx context.Context, catalog *Catalog) error

	// WithTx returns a CatalogStore bound to the given transaction.
	WithTx(tx *sql.Tx) CatalogStore
}
