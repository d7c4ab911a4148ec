package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Rating is a learner's 1-5 self-assessment of how well they recalled a card.
type Rating int

// Possible rating values
const (
	RatingForgot  Rating = 1 // no recall at all
	RatingHard    Rating = 2 // recalled with serious difficulty
	RatingGood    Rating = 3 // recalled with some effort
	RatingEasy    Rating = 4 // recalled comfortably
	RatingPerfect Rating = 5 // instant recall
)

// Level bounds for card progress. A card starts at MinLevel and is considered
// mastered once it reaches MaxLevel.
const (
	MinLevel = 0
	MaxLevel = 5
)

// Common validation errors for CardProgress
var (
	ErrEmptyProgressLearnerID = errors.New("card progress learner ID cannot be empty")
	ErrEmptyProgressCardID    = errors.New("card progress card ID cannot be empty")
	ErrLevelOutOfRange        = errors.New("level must be between 0 and 5")
	ErrDueBeforeReviewed      = errors.New("due time cannot precede the last review time")
)

// CardProgress tracks one learner's spaced repetition state for a specific
// vocabulary card. Level moves up on successful recall and down on failure;
// DueAt is derived from the level's review interval.
//
// A zero LastReviewedAt means the card has never been reviewed. A zero DueAt
// means no due time has been recorded yet; both states count as due.
type CardProgress struct {
	LearnerID      uuid.UUID `json:"learner_id"`
	CardID         string    `json:"card_id"`
	Level          int       `json:"level"`
	LastReviewedAt time.Time `json:"last_reviewed_at"`
	DueAt          time.Time `json:"due_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewCardProgress creates progress for a learner and card with default values.
// New cards start at level 0 and are available for review immediately.
func NewCardProgress(learnerID uuid.UUID, cardID string) (*CardProgress, error) {
	now := time.Now().UTC()
	progress := &CardProgress{
		LearnerID:      learnerID,
		CardID:         cardID,
		Level:          MinLevel,
		LastReviewedAt: time.Time{}, // Zero time
		DueAt:          now,         // Card is available for review immediately
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := progress.Validate(); err != nil {
		return nil, err
	}

	return progress, nil
}

// Validate checks if the CardProgress has valid data.
// Returns an error if any field fails validation.
func (p *CardProgress) Validate() error {
	if p.LearnerID == uuid.Nil {
		return ErrEmptyProgressLearnerID
	}

	if p.CardID == "" {
		return ErrEmptyProgressCardID
	}

	if p.Level < MinLevel || p.Level > MaxLevel {
		return ErrLevelOutOfRange
	}

	if !p.LastReviewedAt.IsZero() && !p.DueAt.IsZero() && p.DueAt.Before(p.LastReviewedAt) {
		return ErrDueBeforeReviewed
	}

	return nil
}

// Reviewed reports whether the card has been reviewed at least once.
func (p *CardProgress) Reviewed() bool {
	return !p.LastReviewedAt.IsZero()
}

// Learned reports whether the card has been answered correctly at least once,
// which is any level above the starting one.
func (p *CardProgress) Learned() bool {
	return p.Level >= MinLevel+1
}

// Mastered reports whether the card has reached the highest level.
func (p *CardProgress) Mastered() bool {
	return p.Level >= MaxLevel
}

// Valid reports whether the rating is within the accepted 1-5 range.
func (r Rating) Valid() bool {
	return r >= RatingForgot && r <= RatingPerfect
}

// Passing reports whether the rating counts as a successful recall under the
// given pass threshold.
func (r Rating) Passing(threshold Rating) bool {
	return r >= threshold
}
