package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/armoury-api/internal/domain/deck"
	"github.com/phrazzld/armoury-api/internal/service"
	"github.com/phrazzld/armoury-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockDeckService mocks the service.DeckService interface
type MockDeckService struct {
	mock.Mock
}

var _ service.DeckService = (*MockDeckService)(nil)

func (m *MockDeckService) ListDivisions(ctx context.Context) ([]store.DivisionSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.DivisionSummary), args.Error(1)
}

func (m *MockDeckService) DivisionArmoury(ctx context.Context, division string) (*deck.Armoury, error) {
	args := m.Called(ctx, division)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deck.Armoury), args.Error(1)
}

func (m *MockDeckService) StartDeck(ctx context.Context, division string) (*service.DeckView, error) {
	args := m.Called(ctx, division)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DeckView), args.Error(1)
}

func (m *MockDeckService) GetDeck(ctx context.Context, deckID uuid.UUID) (*service.DeckView, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DeckView), args.Error(1)
}

func (m *MockDeckService) Armoury(ctx context.Context, deckID uuid.UUID) (*deck.Armoury, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deck.Armoury), args.Error(1)
}

func (m *MockDeckService) AddPack(
	ctx context.Context,
	deckID uuid.UUID,
	req service.AddPackRequest,
) (*service.AddPackResult, error) {
	args := m.Called(ctx, deckID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AddPackResult), args.Error(1)
}

func (m *MockDeckService) RemovePack(ctx context.Context, deckID uuid.UUID, selectionID int) (bool, error) {
	args := m.Called(ctx, deckID, selectionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeckService) DiscardDeck(ctx context.Context, deckID uuid.UUID) error {
	args := m.Called(ctx, deckID)
	return args.Error(0)
}
