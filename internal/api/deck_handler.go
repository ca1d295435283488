package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/armoury-api/internal/api/shared"
	"github.com/phrazzld/armoury-api/internal/platform/logger"
	"github.com/phrazzld/armoury-api/internal/service"
)

// DeckHandler handles deck drafting operations.
type DeckHandler struct {
	deckService service.DeckService
	logger      *slog.Logger
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(deckService service.DeckService, log *slog.Logger) *DeckHandler {
	if log == nil {
		panic("logger cannot be nil for DeckHandler")
	}
	return &DeckHandler{
		deckService: deckService,
		logger:      log.With(slog.String("component", "deck_handler")),
	}
}

// StartDeck handles POST /api/decks.
func (h *DeckHandler) StartDeck(w http.ResponseWriter, r *http.Request) {
	var req StartDeckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	view, err := h.deckService.StartDeck(r.Context(), req.Division)
	if err != nil {
		handleAPIError(w, r, err, "Failed to start deck")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("deck started",
		slog.String("deck_id", view.ID.String()),
		slog.String("division", req.Division))

	shared.RespondWithJSON(w, r, http.StatusCreated, view)
}

// GetDeck handles GET /api/decks/{deckID}.
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := getPathUUID(r, "deckID")
	if err != nil {
		handleAPIError(w, r, err, "")
		return
	}

	view, err := h.deckService.GetDeck(r.Context(), deckID)
	if err != nil {
		handleAPIError(w, r, err, "Failed to get deck")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, view)
}

// DeckArmoury handles GET /api/decks/{deckID}/armoury.
func (h *DeckHandler) DeckArmoury(w http.ResponseWriter, r *http.Request) {
	deckID, err := getPathUUID(r, "deckID")
	if err != nil {
		handleAPIError(w, r, err, "")
		return
	}

	armoury, err := h.deckService.Armoury(r.Context(), deckID)
	if err != nil {
		handleAPIError(w, r, err, "Failed to load armoury")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, armoury)
}

// AddPack handles POST /api/decks/{deckID}/packs.
func (h *DeckHandler) AddPack(w http.ResponseWriter, r *http.Request) {
	deckID, err := getPathUUID(r, "deckID")
	if err != nil {
		handleAPIError(w, r, err, "")
		return
	}

	var req AddPackRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	result, err := h.deckService.AddPack(r.Context(), deckID, req.toServiceRequest())
	if err != nil {
		handleAPIError(w, r, err, "Failed to add pack")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("pack added",
		slog.String("deck_id", deckID.String()),
		slog.String("pack", req.PackDescriptor),
		slog.Int("selection_id", result.Selection.ID))

	shared.RespondWithJSON(w, r, http.StatusCreated, result)
}

// RemovePack handles DELETE /api/decks/{deckID}/packs/{selectionID}.
// Removing an unknown selection is not an error.
func (h *DeckHandler) RemovePack(w http.ResponseWriter, r *http.Request) {
	deckID, err := getPathUUID(r, "deckID")
	if err != nil {
		handleAPIError(w, r, err, "")
		return
	}
	selectionID, err := getPathInt(r, "selectionID")
	if err != nil {
		handleAPIError(w, r, err, "")
		return
	}

	removed, err := h.deckService.RemovePack(r.Context(), deckID, selectionID)
	if err != nil {
		handleAPIError(w, r, err, "Failed to remove pack")
		return
	}
	if !removed {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("selection not present",
			slog.String("deck_id", deckID.String()),
			slog.Int("selection_id", selectionID))
	}

	w.WriteHeader(http.StatusNoContent)
}

// DiscardDeck handles DELETE /api/decks/{deckID}.
func (h *DeckHandler) DiscardDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := getPathUUID(r, "deckID")
	if err != nil {
		handleAPIError(w, r, err, "")
		return
	}

	if err := h.deckService.DiscardDeck(r.Context(), deckID); err != nil {
		handleAPIError(w, r, err, "Failed to discard deck")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
