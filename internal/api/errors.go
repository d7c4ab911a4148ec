package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/parlo-app/parlo-api/internal/domain"
	"github.com/parlo-app/parlo-api/internal/store"
)

// MapErrorToStatusCode picks the HTTP status for an internal error.
// Unknown errors map to 500 so nothing internal leaks by default.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrEmptyAttemptTarget),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for an internal
// error. Only recognized sentinels get a specific message; everything else
// stays generic so driver and infrastructure detail never reaches clients.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"

	case errors.Is(err, domain.ErrCardNotFound):
		return "Card not found"

	case errors.Is(err, store.ErrNotFound):
		return "Record not found"

	case errors.Is(err, domain.ErrInvalidRating):
		return "Rating must be between 1 and 5"

	case errors.Is(err, domain.ErrEmptyAttemptTarget):
		return "Target phrase is required"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a validator error into a short message
// naming the first offending field, without echoing the submitted value.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}
	return "Validation error"
}

// getValidationTagMessage translates a validator tag into client wording.
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required", "required_without":
		return "required field"
	case "excluded_with":
		return "conflicting field"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
