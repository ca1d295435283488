package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/armoury-api/internal/api"
	apiMiddleware "github.com/phrazzld/armoury-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	catalogHandler := api.NewCatalogHandler(app.deckService, app.logger)
	deckHandler := api.NewDeckHandler(app.deckService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/divisions", catalogHandler.ListDivisions)
		r.Get("/divisions/{division}/armoury", catalogHandler.DivisionArmoury)

		r.Post("/decks", deckHandler.StartDeck)
		r.Route("/decks/{deckID}", func(r chi.Router) {
			r.Get("/", deckHandler.GetDeck)
			r.Delete("/", deckHandler.DiscardDeck)
			r.Get("/armoury", deckHandler.DeckArmoury)
			r.Post("/packs", deckHandler.AddPack)
			r.Delete("/packs/{selectionID}", deckHandler.RemovePack)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
