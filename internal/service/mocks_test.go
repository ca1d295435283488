package service

import (
	"context"

	"github.com/phrazzld/armoury-api/internal/domain"
	"github.com/phrazzld/armoury-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockCatalogReader mocks the store.CatalogReader interface
type MockCatalogReader struct {
	mock.Mock
}

var _ store.CatalogReader = (*MockCatalogReader)(nil)

func (m *MockCatalogReader) ListDivisions(ctx context.Context) ([]store.DivisionSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.DivisionSummary), args.Error(1)
}

func (m *MockCatalogReader) GetDivision(ctx context.Context, descriptor string) (*domain.Division, error) {
	args := m.Called(ctx, descriptor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Division), args.Error(1)
}

func (m *MockCatalogReader) GetUnitMap(ctx context.Context) (domain.UnitMap, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.UnitMap), args.Error(1)
}
