package domain

import "errors"

// Errors shared across the review and practice flows. Entity-specific
// validation sentinels live next to their types in card.go, progress.go,
// and attempt.go.
var (
	// ErrInvalidRating reports a review rating outside the 1 to 5 range.
	ErrInvalidRating = errors.New("invalid rating: must be between 1 and 5")

	// ErrCardNotFound reports a card ID that does not exist in the catalog.
	ErrCardNotFound = errors.New("card not found in catalog")
)
