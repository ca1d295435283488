// Package service contains the application-specific use cases of the deck
// builder. It orchestrates the catalog (defined in internal/store) and the
// deck-composition engine (internal/domain/deck) to fulfill API features.
//
// The service owns the in-memory registry of open decks. Each open deck is a
// deck.Builder guarded by its own mutex, so concurrent requests against the
// same deck are serialized while different decks proceed in parallel. Open
// decks are not persisted; they are discarded on delete or shutdown.
//
// Error handling follows the same rules across the package: expected
// conditions are returned as sentinel errors (checked with errors.Is),
// unexpected failures are wrapped in DeckServiceError, and the API layer maps
// both to HTTP status codes.
package service
