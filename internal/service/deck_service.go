package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/armoury-api/internal/domain"
	"github.com/phrazzld/armoury-api/internal/domain/deck"
	"github.com/phrazzld/armoury-api/internal/platform/logger"
	"github.com/phrazzld/armoury-api/internal/store"
)

// AddPackRequest is a purchase intent expressed by descriptors.
type AddPackRequest struct {
	PackDescriptor      string
	Veterancy           int
	TransportDescriptor string
}

// DeckView is the deck view of an open deck.
type DeckView struct {
	ID        uuid.UUID `json:"id"`
	Policy    string    `json:"policy"`
	CreatedAt time.Time `json:"created_at"`
	deck.Deck
}

// AddPackResult is the outcome of a successful AddPack.
type AddPackResult struct {
	Selection deck.SelectedPackConfig `json:"selection"`
	Deck      *DeckView               `json:"deck"`
}

// DeckService provides deck drafting operations
type DeckService interface {
	// ListDivisions returns the divisions decks can be built from.
	ListDivisions(ctx context.Context) ([]store.DivisionSummary, error)

	// DivisionArmoury returns the grouped catalog of a division, without any selection.
	DivisionArmoury(ctx context.Context, division string) (*deck.Armoury, error)

	// StartDeck opens an empty deck for the division.
	StartDeck(ctx context.Context, division string) (*DeckView, error)

	// GetDeck returns the deck view of an open deck.
	GetDeck(ctx context.Context, deckID uuid.UUID) (*DeckView, error)

	// Armoury returns the grouped catalog annotated with the deck's purchase state.
	Armoury(ctx context.Context, deckID uuid.UUID) (*deck.Armoury, error)

	// AddPack buys a pack into the deck.
	AddPack(ctx context.Context, deckID uuid.UUID, req AddPackRequest) (*AddPackResult, error)

	// RemovePack drops a selection. It reports whether the selection existed.
	RemovePack(ctx context.Context, deckID uuid.UUID, selectionID int) (bool, error)

	// DiscardDeck closes an open deck.
	DiscardDeck(ctx context.Context, deckID uuid.UUID) error
}

// draft is one open deck. mu serializes every operation on the builder.
type draft struct {
	mu        sync.Mutex
	id        uuid.UUID
	createdAt time.Time
	builder   *deck.Builder
}

func (d *draft) view() *DeckView {
	return &DeckView{
		ID:        d.id,
		Policy:    d.builder.Ledger().Policy().String(),
		CreatedAt: d.createdAt,
		Deck:      d.builder.Deck(),
	}
}

// deckServiceImpl implements the DeckService interface
type deckServiceImpl struct {
	catalog   store.CatalogReader
	policy    deck.Policy
	maxDrafts int
	logger    *slog.Logger

	mu     sync.RWMutex
	drafts map[uuid.UUID]*draft
}

// Options tunes a DeckService.
type Options struct {
	// Policy is applied to every deck opened by the service.
	Policy deck.Policy
	// MaxDrafts caps the number of open decks. Zero means unlimited.
	MaxDrafts int
}

// NewDeckService creates a new DeckService.
// It returns an error if the catalog is nil.
func NewDeckService(catalog store.CatalogReader, opts Options, logger *slog.Logger) (DeckService, error) {
	if catalog == nil {
		return nil, domain.NewValidationError("deck_service", "catalog", domain.ErrValidation)
	}
	if opts.MaxDrafts < 0 {
		return nil, domain.NewValidationError("deck_service", "maxDrafts", domain.ErrNegativeQuantity)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &deckServiceImpl{
		catalog:   catalog,
		policy:    opts.Policy,
		maxDrafts: opts.MaxDrafts,
		logger:    logger.With(slog.String("component", "deck_service")),
		drafts:    make(map[uuid.UUID]*draft),
	}, nil
}

// ListDivisions implements DeckService.ListDivisions
func (s *deckServiceImpl) ListDivisions(ctx context.Context) ([]store.DivisionSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	divisions, err := s.catalog.ListDivisions(ctx)
	if err != nil {
		log.Error("failed to list divisions", slog.String("error", err.Error()))
		return nil, NewDeckServiceError("list_divisions", "failed to read catalog", err)
	}
	return divisions, nil
}

// loadCatalog reads the division and unit map a deck is built from.
func (s *deckServiceImpl) loadCatalog(
	ctx context.Context,
	operation string,
	descriptor string,
) (*domain.Division, domain.UnitMap, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	division, err := s.catalog.GetDivision(ctx, descriptor)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("division not found", slog.String("division", descriptor))
			return nil, nil, store.ErrDivisionNotFound
		}
		log.Error("failed to read division",
			slog.String("division", descriptor),
			slog.String("error", err.Error()))
		return nil, nil, NewDeckServiceError(operation, "failed to read division", err)
	}

	units, err := s.catalog.GetUnitMap(ctx)
	if err != nil {
		log.Error("failed to read units", slog.String("error", err.Error()))
		return nil, nil, NewDeckServiceError(operation, "failed to read units", err)
	}

	return division, units, nil
}

func (s *deckServiceImpl) logUnresolved(log *slog.Logger, armoury deck.Armoury) {
	for _, p := range armoury.Unresolved {
		log.Warn("pack unit not found in catalog, pack hidden from armoury",
			slog.String("division", armoury.Division),
			slog.String("pack", p.PackDescriptor),
			slog.String("unit", p.UnitDescriptor))
	}
}

// DivisionArmoury implements DeckService.DivisionArmoury
func (s *deckServiceImpl) DivisionArmoury(ctx context.Context, division string) (*deck.Armoury, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	d, units, err := s.loadCatalog(ctx, "division_armoury", division)
	if err != nil {
		return nil, err
	}

	armoury := deck.NewBuilder(d, units, s.policy).Armoury()
	s.logUnresolved(log, armoury)
	return &armoury, nil
}

// StartDeck implements DeckService.StartDeck
func (s *deckServiceImpl) StartDeck(ctx context.Context, division string) (*DeckView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	d, units, err := s.loadCatalog(ctx, "start_deck", division)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, NewDeckServiceError("start_deck", "request cancelled", err)
	}

	dr := &draft{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		builder:   deck.NewBuilder(d, units, s.policy),
	}
	// Read the builder while the draft is still private to this call.
	armoury := dr.builder.Armoury()
	view := dr.view()

	s.mu.Lock()
	if s.maxDrafts > 0 && len(s.drafts) >= s.maxDrafts {
		s.mu.Unlock()
		log.Warn("draft limit reached", slog.Int("max_drafts", s.maxDrafts))
		return nil, ErrDraftLimitReached
	}
	s.drafts[dr.id] = dr
	s.mu.Unlock()

	s.logUnresolved(log, armoury)
	log.Info("deck started",
		slog.String("deck_id", dr.id.String()),
		slog.String("division", division),
		slog.String("policy", s.policy.String()))

	return view, nil
}

func (s *deckServiceImpl) getDraft(id uuid.UUID) (*draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dr, ok := s.drafts[id]
	if !ok {
		return nil, ErrDeckNotFound
	}
	return dr, nil
}

// GetDeck implements DeckService.GetDeck
func (s *deckServiceImpl) GetDeck(ctx context.Context, deckID uuid.UUID) (*DeckView, error) {
	dr, err := s.getDraft(deckID)
	if err != nil {
		return nil, err
	}

	dr.mu.Lock()
	defer dr.mu.Unlock()
	return dr.view(), nil
}

// Armoury implements DeckService.Armoury
func (s *deckServiceImpl) Armoury(ctx context.Context, deckID uuid.UUID) (*deck.Armoury, error) {
	dr, err := s.getDraft(deckID)
	if err != nil {
		return nil, err
	}

	dr.mu.Lock()
	defer dr.mu.Unlock()
	armoury := dr.builder.Armoury()
	return &armoury, nil
}

// resolveIntent turns a request into a purchase intent against the deck's
// division and unit map.
func resolveIntent(b *deck.Builder, req AddPackRequest) (deck.PurchaseIntent, error) {
	pack, ok := b.Division().Pack(req.PackDescriptor)
	if !ok {
		return deck.PurchaseIntent{}, fmt.Errorf("%w: %s", ErrPackNotInDivision, req.PackDescriptor)
	}

	unit, ok := b.Units().Resolve(pack.UnitDescriptor)
	if !ok {
		return deck.PurchaseIntent{}, fmt.Errorf("%w: %s", ErrUnitNotResolved, pack.UnitDescriptor)
	}

	if req.Veterancy < 0 || req.Veterancy >= pack.VeterancyLevels() {
		return deck.PurchaseIntent{}, fmt.Errorf("%w: %d not in [0, %d)",
			ErrInvalidVeterancy, req.Veterancy, pack.VeterancyLevels())
	}

	intent := deck.PurchaseIntent{Unit: unit, Veterancy: req.Veterancy, Pack: pack}
	if req.TransportDescriptor != "" {
		if !pack.OffersTransport(req.TransportDescriptor) {
			return deck.PurchaseIntent{}, fmt.Errorf("%w: %s", ErrInvalidTransport, req.TransportDescriptor)
		}
		transport, ok := b.Units().Resolve(req.TransportDescriptor)
		if !ok {
			return deck.PurchaseIntent{}, fmt.Errorf("%w: unknown unit %s", ErrInvalidTransport, req.TransportDescriptor)
		}
		intent.Transport = &transport
	}
	return intent, nil
}

// AddPack implements DeckService.AddPack
func (s *deckServiceImpl) AddPack(
	ctx context.Context,
	deckID uuid.UUID,
	req AddPackRequest,
) (*AddPackResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	dr, err := s.getDraft(deckID)
	if err != nil {
		return nil, err
	}

	dr.mu.Lock()
	defer dr.mu.Unlock()

	intent, err := resolveIntent(dr.builder, req)
	if err != nil {
		log.Debug("rejected purchase",
			slog.String("deck_id", deckID.String()),
			slog.String("pack", req.PackDescriptor),
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, NewDeckServiceError("add_pack", "request cancelled", err)
	}

	selection, err := dr.builder.Add(intent)
	if err != nil {
		log.Info("purchase over limit",
			slog.String("deck_id", deckID.String()),
			slog.String("pack", req.PackDescriptor),
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("pack added",
		slog.String("deck_id", deckID.String()),
		slog.Int("selection_id", selection.ID),
		slog.String("pack", req.PackDescriptor),
		slog.Int("veterancy", req.Veterancy))

	return &AddPackResult{Selection: selection, Deck: dr.view()}, nil
}

// RemovePack implements DeckService.RemovePack
func (s *deckServiceImpl) RemovePack(ctx context.Context, deckID uuid.UUID, selectionID int) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	dr, err := s.getDraft(deckID)
	if err != nil {
		return false, err
	}

	dr.mu.Lock()
	defer dr.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return false, NewDeckServiceError("remove_pack", "request cancelled", err)
	}

	removed := dr.builder.Remove(selectionID)
	log.Debug("remove pack",
		slog.String("deck_id", deckID.String()),
		slog.Int("selection_id", selectionID),
		slog.Bool("removed", removed))
	return removed, nil
}

// DiscardDeck implements DeckService.DiscardDeck
func (s *deckServiceImpl) DiscardDeck(ctx context.Context, deckID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	_, ok := s.drafts[deckID]
	delete(s.drafts, deckID)
	s.mu.Unlock()

	if !ok {
		return ErrDeckNotFound
	}
	log.Info("deck discarded", slog.String("deck_id", deckID.String()))
	return nil
}
