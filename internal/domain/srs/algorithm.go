package srs

import (
	"time"

	"github.com/parlo-app/parlo-api/internal/domain"
)

// calculateNewLevel determines the card's new level after a review.
//
// The level represents how firmly the learner knows the card. Successful
// recalls move the card one level up, failed recalls move it one level down,
// and the result is always clamped to the valid level range.
//
// Parameters:
//   - currentLevel: The card's level before the review
//   - rating: The learner's 1-5 self-assessment of the recall
//   - params: Configuration parameters for the scheduling algorithm
//
// Returns:
//   - The new level, between domain.MinLevel and domain.MaxLevel inclusive
//
// Algorithm behavior:
//   - Ratings at or above params.PassRating promote the card by one level,
//     capped at the maximum
//   - Ratings below params.PassRating demote the card by one level, floored
//     at the minimum
//   - A card at the maximum level stays there on success; a card at the
//     minimum level stays there on failure
func calculateNewLevel(
	currentLevel int,
	rating domain.Rating,
	params *Params,
) int {
	if rating.Passing(params.PassRating) {
		newLevel := currentLevel + 1
		if newLevel > domain.MaxLevel {
			newLevel = domain.MaxLevel
		}
		return newLevel
	}

	newLevel := currentLevel - 1
	if newLevel < domain.MinLevel {
		newLevel = domain.MinLevel
	}
	return newLevel
}

// calculateDueTime determines when the card should next come due.
//
// The due time is derived from the card's new level: each level maps to a
// fixed number of days in params.ReviewIntervalDays, measured from the moment
// of the review. This applies to demotions as well as promotions, so a card
// that just fell to level 0 is due again immediately.
//
// Parameters:
//   - level: The card's level after the review
//   - now: The current time, usually the time when the review was performed
//   - params: Configuration parameters for the scheduling algorithm
//
// Returns:
//   - A time.Time value for when the card next comes due. A zero-day
//     interval returns now itself.
//
// Levels outside the interval table are clamped to its nearest edge, so a
// partially configured table still yields a defined due time.
func calculateDueTime(
	level int,
	now time.Time,
	params *Params,
) time.Time {
	if level < 0 {
		level = 0
	}
	if level >= len(params.ReviewIntervalDays) {
		level = len(params.ReviewIntervalDays) - 1
	}

	days := params.ReviewIntervalDays[level]
	if days == 0 {
		return now
	}

	return now.AddDate(0, 0, days)
}

// calculateNextProgress creates a new CardProgress with updated values after
// a review.
//
// This function orchestrates the full process of recording a review outcome,
// following immutability principles by creating a new progress object rather
// than modifying the existing one.
//
// Parameters:
//   - progress: The current CardProgress object
//   - rating: The learner's 1-5 self-assessment of the recall
//   - now: The current time, usually the time when the review was performed
//   - params: Configuration parameters for the scheduling algorithm
//
// Returns:
//   - A new CardProgress object with updated values
//
// Algorithm behavior:
//   - Creates a complete copy of the original progress to maintain immutability
//   - Moves the level up or down based on the rating
//   - Sets the last reviewed time to now
//   - Derives the new due time from the new level's interval
//   - Updates the updated timestamp to now
func calculateNextProgress(
	progress *domain.CardProgress,
	rating domain.Rating,
	now time.Time,
	params *Params,
) *domain.CardProgress {
	// Create a copy of the original progress
	newProgress := &domain.CardProgress{
		LearnerID:      progress.LearnerID,
		CardID:         progress.CardID,
		Level:          progress.Level,
		LastReviewedAt: progress.LastReviewedAt,
		DueAt:          progress.DueAt,
		CreatedAt:      progress.CreatedAt,
		UpdatedAt:      progress.UpdatedAt,
	}

	// Move the level according to the rating
	newProgress.Level = calculateNewLevel(progress.Level, rating, params)

	// Record the review time
	newProgress.LastReviewedAt = now

	// Schedule the next review from the new level
	newProgress.DueAt = calculateDueTime(newProgress.Level, now, params)

	// Update the updated timestamp
	newProgress.UpdatedAt = now

	return newProgress
}
