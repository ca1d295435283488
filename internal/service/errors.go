package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used by the deck service.
// These errors represent conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in DeckServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrDeckNotFound indicates that no open deck has the requested ID.
	// API layer should map this to HTTP 404 Not Found.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrPackNotInDivision indicates that the requested pack is not part of
	// the deck's division.
	// API layer should map this to HTTP 400 Bad Request.
	ErrPackNotInDivision = errors.New("pack is not part of the division")

	// ErrUnitNotResolved indicates that the pack's unit is missing from the
	// catalog, so the pack cannot be bought.
	// API layer should map this to HTTP 422 Unprocessable Entity.
	ErrUnitNotResolved = errors.New("pack unit is not in the catalog")

	// ErrInvalidVeterancy indicates a veterancy level outside the pack's
	// multiplier table.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidVeterancy = errors.New("veterancy level out of range")

	// ErrInvalidTransport indicates a transport the pack does not offer or
	// that the catalog does not know.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidTransport = errors.New("transport not available for pack")

	// ErrDraftLimitReached indicates that the configured number of open decks
	// is exhausted.
	// API layer should map this to HTTP 429 Too Many Requests.
	ErrDraftLimitReached = errors.New("too many open decks")
)

// DeckServiceError is a custom error type for deck service errors.
type DeckServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for DeckServiceError.
func (e *DeckServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deck service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("deck service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *DeckServiceError) Unwrap() error {
	return e.Err
}

// NewDeckServiceError creates a new DeckServiceError.
func NewDeckServiceError(operation, message string, err error) *DeckServiceError {
	return &DeckServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
