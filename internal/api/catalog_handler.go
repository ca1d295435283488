package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/armoury-api/internal/api/shared"
	"github.com/phrazzld/armoury-api/internal/domain"
	"github.com/phrazzld/armoury-api/internal/platform/logger"
	"github.com/phrazzld/armoury-api/internal/service"
)

// CatalogHandler serves read-only catalog views.
type CatalogHandler struct {
	deckService service.DeckService
	logger      *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(deckService service.DeckService, log *slog.Logger) *CatalogHandler {
	if log == nil {
		panic("logger cannot be nil for CatalogHandler")
	}
	return &CatalogHandler{
		deckService: deckService,
		logger:      log.With(slog.String("component", "catalog_handler")),
	}
}

// ListDivisions handles GET /api/divisions.
func (h *CatalogHandler) ListDivisions(w http.ResponseWriter, r *http.Request) {
	divisions, err := h.deckService.ListDivisions(r.Context())
	if err != nil {
		handleAPIError(w, r, err, "Failed to list divisions")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, DivisionListResponse{Divisions: divisions})
}

// DivisionArmoury handles GET /api/divisions/{division}/armoury.
func (h *CatalogHandler) DivisionArmoury(w http.ResponseWriter, r *http.Request) {
	division := chi.URLParam(r, "division")
	if division == "" {
		err := domain.NewValidationError("path", "division", domain.ErrEmptyDescriptor)
		handleAPIError(w, r, err, "")
		return
	}

	armoury, err := h.deckService.DivisionArmoury(r.Context(), division)
	if err != nil {
		handleAPIError(w, r, err, "Failed to load armoury")
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Debug("served division armoury",
		slog.String("division", division),
		slog.Int("unresolved", len(armoury.Unresolved)))

	shared.RespondWithJSON(w, r, http.StatusOK, armoury)
}
