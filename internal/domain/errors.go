package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a catalog entity fails validation.
	// Specific errors below wrap it so callers can match either.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyDescriptor is returned when a required descriptor is empty.
	ErrEmptyDescriptor = errors.New("descriptor cannot be empty")

	// ErrNegativeQuantity is returned when a pack declares a negative unit count.
	ErrNegativeQuantity = errors.New("quantity cannot be negative")

	// ErrEmptyMultipliers is returned when a pack has no veterancy multipliers.
	ErrEmptyMultipliers = errors.New("veterancy multipliers cannot be empty")

	// ErrNegativeCards is returned when a pack declares a negative card count.
	ErrNegativeCards = errors.New("number of cards cannot be negative")

	// ErrNegativeActivationCost is returned when a matrix row has a negative slot cost.
	ErrNegativeActivationCost = errors.New("activation cost cannot be negative")

	// ErrDuplicateCategory is returned when a cost matrix names a category twice.
	ErrDuplicateCategory = errors.New("duplicate cost matrix category")

	// ErrDuplicatePack is returned when a division lists a pack descriptor twice.
	ErrDuplicatePack = errors.New("duplicate pack descriptor")
)

// ValidationError describes which field of which entity failed validation.
type ValidationError struct {
	Entity string
	Field  string
	Err    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Entity + "." + e.Field + ": " + e.Err.Error()
}

// Unwrap exposes both the specific error and ErrValidation to errors.Is.
func (e *ValidationError) Unwrap() []error {
	return []error{e.Err, ErrValidation}
}

// NewValidationError creates a ValidationError for the given entity field.
func NewValidationError(entity, field string, err error) *ValidationError {
	return &ValidationError{Entity: entity, Field: field, Err: err}
}
