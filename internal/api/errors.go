package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/armoury-api/internal/domain"
	"github.com/phrazzld/armoury-api/internal/domain/deck"
	"github.com/phrazzld/armoury-api/internal/service"
	"github.com/phrazzld/armoury-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrDeckNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Limit errors under the strict policy
	case errors.Is(err, deck.ErrCategoryFull),
		errors.Is(err, deck.ErrCardLimitReached):
		return http.StatusConflict

	case errors.Is(err, service.ErrUnitNotResolved):
		return http.StatusUnprocessableEntity

	case errors.Is(err, service.ErrDraftLimitReached):
		return http.StatusTooManyRequests

	// Bad request errors
	case errors.Is(err, service.ErrPackNotInDivision),
		errors.Is(err, service.ErrInvalidVeterancy),
		errors.Is(err, service.ErrInvalidTransport),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrDeckNotFound):
		return "Deck not found"

	case errors.Is(err, store.ErrDivisionNotFound):
		return "Division not found"

	case errors.Is(err, deck.ErrCategoryFull):
		return "No free slot left in this category"

	case errors.Is(err, deck.ErrCardLimitReached):
		return "Card limit reached for this pack"

	case errors.Is(err, service.ErrPackNotInDivision):
		return "Pack is not part of the deck's division"

	case errors.Is(err, service.ErrUnitNotResolved):
		return "Pack unit is missing from the catalog"

	case errors.Is(err, service.ErrInvalidVeterancy):
		return "Invalid veterancy level for this pack"

	case errors.Is(err, service.ErrInvalidTransport):
		return "Transport is not available for this pack"

	case errors.Is(err, service.ErrDraftLimitReached):
		return "Too many open decks, try again later"

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a user-friendly message
// naming the first failing field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid %s: %s", toSnakeCase(fe.Field()), getValidationTagMessage(fe.Tag()))
	}
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "gte", "min":
		return "too small"
	case "lte", "max":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
