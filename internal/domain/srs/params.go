package srs

import (
	"errors"

	"github.com/parlo-app/parlo-api/internal/domain"
)

// Validation errors for Params
var (
	ErrIntervalTableSize = errors.New(
		"review intervals must cover every level from 0 through the maximum")
	ErrNegativeInterval = errors.New(
		"review intervals cannot be negative")
	ErrIntervalsNotMonotonic = errors.New(
		"review intervals must not decrease as the level rises")
	ErrInvalidPassRating = errors.New(
		"pass rating must be a valid rating")
)

// Params defines all configurable parameters for the scheduling algorithm
type Params struct {
	// ReviewIntervalDays maps a level to the number of days until the card
	// comes due again. Index 0 holds the interval for level 0, and so on
	// through the maximum level. Level 0 is due immediately.
	ReviewIntervalDays []int

	// PassRating is the lowest rating that counts as a successful recall.
	// Ratings at or above it promote the card; ratings below it demote it.
	PassRating domain.Rating
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance
type ParamsConfig struct {
	ReviewIntervalDays []int
	PassRating         int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		// Intervals by level: immediate, 1 day, 3 days, 1 week, 2 weeks, 1 month
		ReviewIntervalDays: []int{0, 1, 3, 7, 14, 30},

		PassRating: domain.RatingGood,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if len(config.ReviewIntervalDays) > 0 {
		params.ReviewIntervalDays = make([]int, len(config.ReviewIntervalDays))
		copy(params.ReviewIntervalDays, config.ReviewIntervalDays)
	}

	if config.PassRating > 0 {
		params.PassRating = domain.Rating(config.PassRating)
	}

	return params
}

// Validate checks the structural properties the scheduler relies on: one
// interval per level, no negative intervals, intervals that never shrink as
// the level rises, and a pass rating within the 1-5 range.
func (p *Params) Validate() error {
	if len(p.ReviewIntervalDays) != domain.MaxLevel+1 {
		return ErrIntervalTableSize
	}

	for i, days := range p.ReviewIntervalDays {
		if days < 0 {
			return ErrNegativeInterval
		}
		if i > 0 && days < p.ReviewIntervalDays[i-1] {
			return ErrIntervalsNotMonotonic
		}
	}

	if !p.PassRating.Valid() {
		return ErrInvalidPassRating
	}

	return nil
}
