//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/armoury-api/internal/platform/postgres"
	"github.com/phrazzld/armoury-api/internal/store"
	"github.com/phrazzld/armoury-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresCatalogStore_Integration_ImportAndRead(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresCatalogStore(tx, nil)

		require.NoError(t, s.Import(ctx, sampleCatalog()))

		summaries, err := s.ListDivisions(ctx)
		require.NoError(t, err)
		assert.Contains(t, summaries, store.DivisionSummary{Descriptor: "Div_3rd_Armored", PackCount: 1})

		division, err := s.GetDivision(ctx, "Div_3rd_Armored")
		require.NoError(t, err)
		assert.Equal(t, sampleCatalog().Divisions[0].CostMatrix, division.CostMatrix)
		require.Len(t, division.Packs, 1)
		assert.Equal(t, []float64{1, 0.75}, division.Packs[0].NumberOfUnitInPackXPMultiplier)

		units, err := s.GetUnitMap(ctx)
		require.NoError(t, err)
		_, ok := units.Resolve("Descriptor/Unit_M1A1")
		assert.True(t, ok)
	})
}

func TestPostgresCatalogStore_Integration_ReimportReplacesDivision(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresCatalogStore(tx, nil)

		require.NoError(t, s.Import(ctx, sampleCatalog()))

		updated := sampleCatalog()
		updated.Divisions[0].Packs[0].NumberOfCards = 4
		updated.Divisions[0].CostMatrix.Matrix[0].ActivationCosts = []int{5}
		require.NoError(t, s.Import(ctx, updated))

		division, err := s.GetDivision(ctx, "Div_3rd_Armored")
		require.NoError(t, err)
		assert.Equal(t, 4, division.Packs[0].NumberOfCards)
		assert.Equal(t, 1, division.CostMatrix.Matrix[0].MaxSlots())
	})
}

func TestPostgresCatalogStore_Integration_DivisionNotFound(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := postgres.NewPostgresCatalogStore(tx, nil)
		_, err := s.GetDivision(context.Background(), "Div_Does_Not_Exist")
		assert.ErrorIs(t, err, store.ErrDivisionNotFound)
	})
}
