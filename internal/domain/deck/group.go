package deck

import "github.com/phrazzld/armoury-api/internal/domain"

// Grouping partitions items into slot categories. Categories lists every
// cost matrix row of the division in matrix order followed by
// CategoryUndefined; each of them has a (possibly empty) bucket.
type Grouping[T any] struct {
	Categories []Category
	Buckets    map[Category][]T
}

// Get returns the items grouped under c.
func (g Grouping[T]) Get(c Category) []T {
	return g.Buckets[c]
}

// Len returns the number of grouped items across all buckets.
func (g Grouping[T]) Len() int {
	n := 0
	for _, items := range g.Buckets {
		n += len(items)
	}
	return n
}

// PackGroups is the catalog grouping of a division. Packs whose unit could
// not be resolved are kept out of every bucket and listed in Unresolved.
type PackGroups struct {
	Grouping[domain.Pack]
	Unresolved []domain.Pack
}

// SelectionGroups is the grouping of the ledger's selections.
type SelectionGroups struct {
	Grouping[SelectedPackConfig]
}

// groupBy places every item into the bucket named by classify. Items for
// which classify reports false are returned as excluded. Items classified
// into a category the division has no row for go to CategoryUndefined.
func groupBy[T any](division *domain.Division, items []T, classify func(T) (Category, bool)) (Grouping[T], []T) {
	g := Grouping[T]{
		Categories: make([]Category, 0, len(division.CostMatrix.Matrix)+1),
		Buckets:    make(map[Category][]T, len(division.CostMatrix.Matrix)+1),
	}
	for _, row := range division.CostMatrix.Matrix {
		c := Category(row.Name)
		if _, ok := g.Buckets[c]; ok {
			continue
		}
		g.Categories = append(g.Categories, c)
		g.Buckets[c] = []T{}
	}
	if _, ok := g.Buckets[CategoryUndefined]; !ok {
		g.Categories = append(g.Categories, CategoryUndefined)
		g.Buckets[CategoryUndefined] = []T{}
	}

	var excluded []T
	for _, item := range items {
		c, ok := classify(item)
		if !ok {
			excluded = append(excluded, item)
			continue
		}
		if _, known := g.Buckets[c]; !known {
			c = CategoryUndefined
		}
		g.Buckets[c] = append(g.Buckets[c], item)
	}
	return g, excluded
}

// GroupPacks partitions the division's packs by the category of the unit
// each pack deploys, preserving the division's pack order.
func GroupPacks(division *domain.Division, units domain.UnitMap) PackGroups {
	g, unresolved := groupBy(division, division.Packs, func(p domain.Pack) (Category, bool) {
		unit, ok := units.Resolve(p.UnitDescriptor)
		if !ok {
			return "", false
		}
		return Classify(unit.FactoryDescriptor), true
	})
	return PackGroups{Grouping: g, Unresolved: unresolved}
}

// GroupSelections partitions selected pack configurations by the category of
// their unit, preserving ledger order.
func GroupSelections(division *domain.Division, selections []SelectedPackConfig) SelectionGroups {
	g, _ := groupBy(division, selections, func(s SelectedPackConfig) (Category, bool) {
		return s.Category(), true
	})
	return SelectionGroups{Grouping: g}
}
