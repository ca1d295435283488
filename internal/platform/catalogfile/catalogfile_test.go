package catalogfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phrazzld/armoury-api/internal/domain"
	"github.com/phrazzld/armoury-api/internal/domain/deck"
	"github.com/phrazzld/armoury-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogPath = "testdata/catalog.yaml"

func TestLoad(t *testing.T) {
	c, err := Load(testCatalogPath)
	require.NoError(t, err)

	ctx := context.Background()

	divisions, err := c.ListDivisions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []store.DivisionSummary{
		{Descriptor: "Div_SOV_79th_Guards", PackCount: 0},
		{Descriptor: "Div_US_3rd_Armored", PackCount: 3},
	}, divisions)

	div, err := c.GetDivision(ctx, "Div_US_3rd_Armored")
	require.NoError(t, err)
	assert.Equal(t, "MatrixCostName_US_3rd_Armored", div.CostMatrix.Name)
	require.Len(t, div.CostMatrix.Matrix, 3)
	assert.Equal(t, 5, div.CostMatrix.Matrix[0].MaxSlots())
	require.Len(t, div.Packs, 3)
	assert.Equal(t, []string{"Unit_M113"}, div.Packs[1].AvailableTransports)

	units, err := c.GetUnitMap(ctx)
	require.NoError(t, err)
	assert.Len(t, units, 4)
	u, ok := units.Resolve(div.Packs[0].UnitDescriptor)
	require.True(t, ok)
	assert.Equal(t, "M1A1 Abrams", u.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestGetDivision_NotFound(t *testing.T) {
	c, err := Load(testCatalogPath)
	require.NoError(t, err)

	_, err = c.GetDivision(context.Background(), "Div_Unknown")
	assert.ErrorIs(t, err, store.ErrDivisionNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetDivision_ReturnsCopy(t *testing.T) {
	c, err := Load(testCatalogPath)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := c.GetDivision(ctx, "Div_US_3rd_Armored")
	require.NoError(t, err)
	first.Packs[0].NumberOfCards = 99
	first.CostMatrix.Matrix[0].ActivationCosts[0] = 99

	second, err := c.GetDivision(ctx, "Div_US_3rd_Armored")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Packs[0].NumberOfCards)
	assert.Equal(t, 1, second.CostMatrix.Matrix[0].ActivationCosts[0])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "empty document",
			yaml:    "",
			wantErr: ErrEmptyCatalog,
		},
		{
			name:    "no divisions",
			yaml:    "units: []\ndivisions: []\n",
			wantErr: ErrEmptyCatalog,
		},
		{
			name: "negative cards",
			yaml: `
divisions:
  - descriptor: Div_A
    costMatrix: {matrix: []}
    packs:
      - packDescriptor: Pack_A
        unitDescriptor: Unit_A
        numberOfUnitsInPack: 1
        numberOfUnitInPackXPMultiplier: [1]
        numberOfCards: -1
`,
			wantErr: domain.ErrNegativeCards,
		},
		{
			name: "duplicate division",
			yaml: `
divisions:
  - descriptor: Div_A
  - descriptor: Div_A
`,
			wantErr: store.ErrDuplicate,
		},
		{
			name: "duplicate matrix row",
			yaml: `
divisions:
  - descriptor: Div_A
    costMatrix:
      matrix:
        - {name: EDefaultFactories/tank, activationCosts: [1]}
        - {name: EDefaultFactories/tank, activationCosts: [2]}
`,
			wantErr: domain.ErrDuplicateCategory,
		},
		{
			name: "duplicate pack descriptor",
			yaml: `
divisions:
  - descriptor: Div_A
    costMatrix: {matrix: []}
    packs:
      - packDescriptor: Pack_A
        unitDescriptor: Unit_A
        numberOfUnitsInPack: 1
        numberOfUnitInPackXPMultiplier: [1]
        numberOfCards: 2
      - packDescriptor: Pack_A
        unitDescriptor: Unit_B
        numberOfUnitsInPack: 4
        numberOfUnitInPackXPMultiplier: [1]
        numberOfCards: 1
`,
			wantErr: domain.ErrDuplicatePack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("divisions:\n  - descriptor: Div_A\n    packz: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "packz")
}

func TestCatalog_FeedsBuilder(t *testing.T) {
	c, err := Load(testCatalogPath)
	require.NoError(t, err)
	ctx := context.Background()

	div, err := c.GetDivision(ctx, "Div_US_3rd_Armored")
	require.NoError(t, err)
	units, err := c.GetUnitMap(ctx)
	require.NoError(t, err)

	armoury := deck.NewBuilder(div, units, deck.PolicyAdvisory).Armoury()

	assert.Empty(t, armoury.Unresolved)
	// Three matrix rows plus the catch-all bucket.
	require.Len(t, armoury.Categories, 4)
	assert.Equal(t, deck.Category("EDefaultFactories/tank"), armoury.Categories[0].Slots.Category)
	assert.Len(t, armoury.Categories[0].Packs, 1)
	assert.Len(t, armoury.Categories[1].Packs, 1)
	// The recon pack has no matrix row in this division.
	assert.Equal(t, deck.CategoryUndefined, armoury.Categories[3].Slots.Category)
	require.Len(t, armoury.Categories[3].Packs, 1)
	assert.Equal(t, "Descriptor_Deck_Pack_OH58", armoury.Categories[3].Packs[0].Pack.PackDescriptor)
}
