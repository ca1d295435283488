package catalogfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/phrazzld/armoury-api/internal/domain"
	"github.com/phrazzld/armoury-api/internal/store"
	"gopkg.in/yaml.v3"
)

// ErrEmptyCatalog is returned when the file declares no division.
var ErrEmptyCatalog = errors.New("catalog declares no division")

// Catalog is an immutable in-memory catalog.
type Catalog struct {
	raw       *store.Catalog
	divisions map[string]*domain.Division
	units     domain.UnitMap
}

var _ store.CatalogReader = (*Catalog)(nil)

// Load reads and validates the catalog file at path.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog. Unknown keys are rejected so
// typos in descriptors fields surface instead of being silently dropped.
func Parse(r io.Reader) (*Catalog, error) {
	var raw store.Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(&raw)
}

// New builds a Catalog from already decoded data.
func New(raw *store.Catalog) (*Catalog, error) {
	if len(raw.Divisions) == 0 {
		return nil, ErrEmptyCatalog
	}
	if err := raw.Validate(); err != nil {
		return nil, err
	}

	c := &Catalog{
		raw:       raw,
		divisions: make(map[string]*domain.Division, len(raw.Divisions)),
		units:     domain.NewUnitMap(raw.Units),
	}
	for i := range raw.Divisions {
		d := &raw.Divisions[i]
		c.divisions[d.Descriptor] = d
	}
	return c, nil
}

// Raw returns the decoded catalog, as accepted by store.CatalogStore.Import.
func (c *Catalog) Raw() *store.Catalog {
	return c.raw
}

// ListDivisions returns every division ordered by descriptor.
func (c *Catalog) ListDivisions(ctx context.Context) ([]store.DivisionSummary, error) {
	summaries := make([]store.DivisionSummary, 0, len(c.divisions))
	for _, d := range c.divisions {
		summaries = append(summaries, store.DivisionSummary{
			Descriptor: d.Descriptor,
			PackCount:  len(d.Packs),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Descriptor < summaries[j].Descriptor
	})
	return summaries, nil
}

// GetDivision returns a copy of the division so callers cannot alter the catalog.
func (c *Catalog) GetDivision(ctx context.Context, descriptor string) (*domain.Division, error) {
	d, ok := c.divisions[descriptor]
	if !ok {
		return nil, store.ErrDivisionNotFound
	}
	return cloneDivision(d), nil
}

// GetUnitMap returns a copy of the unit index.
func (c *Catalog) GetUnitMap(ctx context.Context) (domain.UnitMap, error) {
	units := make(domain.UnitMap, len(c.units))
	for k, u := range c.units {
		units[k] = u
	}
	return units, nil
}

func cloneDivision(d *domain.Division) *domain.Division {
	out := *d
	out.CostMatrix.Matrix = make([]domain.MatrixRow, len(d.CostMatrix.Matrix))
	for i, row := range d.CostMatrix.Matrix {
		row.ActivationCosts = append([]int(nil), row.ActivationCosts...)
		out.CostMatrix.Matrix[i] = row
	}
	out.Packs = make([]domain.Pack, len(d.Packs))
	for i, p := range d.Packs {
		p.NumberOfUnitInPackXPMultiplier = append([]float64(nil), p.NumberOfUnitInPackXPMultiplier...)
		p.AvailableTransports = append([]string(nil), p.AvailableTransports...)
		out.Packs[i] = p
	}
	return &out
}
