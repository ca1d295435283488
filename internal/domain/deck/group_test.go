package deck

import (
	"testing"

	"github.com/phrazzld/armoury-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packDescriptors(packs []domain.Pack) []string {
	out := make([]string, 0, len(packs))
	for _, p := range packs {
		out = append(out, p.PackDescriptor)
	}
	return out
}

func TestGroupPacks(t *testing.T) {
	t.Parallel()

	division := testDivision()
	groups := GroupPacks(division, testUnits())

	assert.Equal(t, []Category{CategoryTank, CategoryInfantry, CategoryLogistic, CategoryUndefined}, groups.Categories)
	assert.Equal(t, []string{"Pack_M1A1", "Pack_M60A3"}, packDescriptors(groups.Get(CategoryTank)))
	assert.Equal(t, []string{"Pack_Rifles"}, packDescriptors(groups.Get(CategoryInfantry)))
	assert.Empty(t, groups.Get(CategoryLogistic))
	assert.Equal(t, []string{"Pack_Prototype", "Pack_AH1"}, packDescriptors(groups.Get(CategoryUndefined)),
		"unknown factories and categories missing from the matrix fall back to the catch-all")
	assert.Equal(t, []string{"Pack_Ghost"}, packDescriptors(groups.Unresolved))
}

func TestGroupPacksIsTotal(t *testing.T) {
	t.Parallel()

	division := testDivision()
	units := testUnits()
	groups := GroupPacks(division, units)

	seen := make(map[string]int)
	for _, c := range groups.Categories {
		for _, p := range groups.Get(c) {
			seen[p.PackDescriptor]++
		}
	}

	for _, p := range division.Packs {
		_, resolves := units.Resolve(p.UnitDescriptor)
		if resolves {
			assert.Equal(t, 1, seen[p.PackDescriptor], "%s must land in exactly one bucket", p.PackDescriptor)
		} else {
			assert.Zero(t, seen[p.PackDescriptor], "%s does not resolve and must be excluded", p.PackDescriptor)
		}
	}
	assert.Equal(t, len(division.Packs)-len(groups.Unresolved), groups.Len())
}

func TestGroupPacksEmptyDivision(t *testing.T) {
	t.Parallel()

	groups := GroupPacks(&domain.Division{Descriptor: "empty"}, domain.UnitMap{})
	require.Equal(t, []Category{CategoryUndefined}, groups.Categories)
	assert.Empty(t, groups.Get(CategoryUndefined))
	assert.Empty(t, groups.Unresolved)
}

func TestGroupSelections(t *testing.T) {
	t.Parallel()

	division := testDivision()
	units := testUnits()
	ledger := NewLedger(PolicyAdvisory, nil)

	for _, pack := range []string{"Pack_M1A1", "Pack_Rifles", "Pack_Prototype", "Pack_M60A3"} {
		_, err := ledger.Add(intentFor(division, units, pack, 0))
		require.NoError(t, err)
	}

	before := ledger.Selections()
	groups := GroupSelections(division, before)

	tanks := groups.Get(CategoryTank)
	require.Len(t, tanks, 2)
	assert.Equal(t, 1, tanks[0].ID)
	assert.Equal(t, 4, tanks[1].ID)
	assert.Len(t, groups.Get(CategoryInfantry), 1)
	assert.Len(t, groups.Get(CategoryUndefined), 1)
	assert.Equal(t, 4, groups.Len())
	assert.Equal(t, before, ledger.Selections(), "grouping must not mutate the ledger")
}
