package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/armoury-api/internal/api/shared"
	"github.com/phrazzld/armoury-api/internal/domain"
)

// getPathUUID extracts a UUID from the URL path parameters.
//
// Returns:
//   - (uuid.UUID, nil): The parsed UUID if valid
//   - (uuid.Nil, error): A validation error if the parameter is missing or invalid
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError("path", paramName, domain.ErrEmptyDescriptor)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("path", paramName, domain.ErrValidation)
	}
	return id, nil
}

// getPathInt extracts an integer from the URL path parameters. The sign is
// not checked; ids that were never issued are the caller's concern.
func getPathInt(r *http.Request, paramName string) (int, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError("path", paramName, domain.ErrEmptyDescriptor)
	}

	n, err := strconv.Atoi(pathParam)
	if err != nil {
		return 0, domain.NewValidationError("path", paramName, domain.ErrValidation)
	}
	return n, nil
}

// handleAPIError writes the status code and safe message matching err.
// A non-empty fallback replaces the generic message of unmapped errors.
func handleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
