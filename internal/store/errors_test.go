package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/armoury-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestDivisionNotFoundIsNotFound(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, store.ErrDivisionNotFound, store.ErrNotFound)
	assert.True(t, store.IsNotFoundError(store.ErrDivisionNotFound))
	assert.True(t, store.IsNotFoundError(fmt.Errorf("get: %w", store.ErrDivisionNotFound)))
	assert.False(t, store.IsNotFoundError(store.ErrDuplicate))
	assert.False(t, store.IsNotFoundError(nil))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      *store.StoreError
		expected string
	}{
		{
			name:     "with wrapped error",
			err:      store.NewStoreError("division", "get", "query failed", cause),
			expected: "get operation on division failed: query failed: connection reset",
		},
		{
			name:     "without wrapped error",
			err:      store.NewStoreError("pack", "import", "encode transports", nil),
			expected: "import operation on pack failed: encode transports",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}

	wrapped := store.NewStoreError("division", "get", "query failed", fmt.Errorf("%w: x", store.ErrNotFound))
	assert.ErrorIs(t, wrapped, store.ErrNotFound)
	assert.NotErrorIs(t, store.NewStoreError("unit", "list", "scan failed", cause), store.ErrNotFound)
}
