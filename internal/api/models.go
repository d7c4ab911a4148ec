package api

import (
	"time"

	"github.com/parlo-app/parlo-api/internal/domain"
)

// Common request/response structures

// EvaluateAttemptRequest defines the payload for the pronunciation evaluation
// endpoint. Exactly one of Target and CardID must be set: Target scores
// against a raw phrase, CardID against a catalog card's term.
type EvaluateAttemptRequest struct {
	Target        string   `json:"target"         validate:"required_without=CardID,excluded_with=CardID,max=500"`
	CardID        string   `json:"card_id"        validate:"required_without=Target,max=100"`
	SpokenPrimary string   `json:"spoken_primary" validate:"max=500"`
	Alternatives  []string `json:"alternatives"   validate:"max=10,dive,max=500"`
}

// SubmitReviewRequest defines the payload for the review submission endpoint.
// The zero rating fails the required check, so an absent rating and rating 0
// are rejected the same way.
type SubmitReviewRequest struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}

// CardProgressResponse represents a learner's progress on one card. Absent
// timestamps are omitted rather than rendered as zero times.
type CardProgressResponse struct {
	LearnerID      string     `json:"learner_id"`
	CardID         string     `json:"card_id"`
	Level          int        `json:"level"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	DueAt          *time.Time `json:"due_at,omitempty"`
}

// CardListResponse wraps a list of vocabulary cards.
type CardListResponse struct {
	Cards []domain.VocabularyCard `json:"cards"`
	Count int                     `json:"count"`
}

// progressToResponse converts a domain.CardProgress to a CardProgressResponse.
func progressToResponse(progress *domain.CardProgress) CardProgressResponse {
	response := CardProgressResponse{
		LearnerID: progress.LearnerID.String(),
		CardID:    progress.CardID,
		Level:     progress.Level,
	}

	if !progress.LastReviewedAt.IsZero() {
		t := progress.LastReviewedAt
		response.LastReviewedAt = &t
	}
	if !progress.DueAt.IsZero() {
		t := progress.DueAt
		response.DueAt = &t
	}

	return response
}

// cardsToResponse wraps catalog cards in a CardListResponse. A nil slice
// serializes as an empty array, never null.
func cardsToResponse(cards []domain.VocabularyCard) CardListResponse {
	if cards == nil {
		cards = []domain.VocabularyCard{}
	}
	return CardListResponse{
		Cards: cards,
		Count: len(cards),
	}
}
