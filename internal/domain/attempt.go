package domain

import (
	"errors"
	"strings"
)

// Tier is the discrete feedback category assigned to a pronunciation attempt.
type Tier string

// Possible tier values, from best match to worst
const (
	TierPerfect   Tier = "perfect"
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierPartial   Tier = "partial"
	TierClose     Tier = "close"
	TierTryAgain  Tier = "tryagain"
	TierDifferent Tier = "different"
)

// Common validation errors for PronunciationAttempt
var (
	ErrEmptyAttemptTarget = errors.New("attempt target cannot be empty")
	ErrInvalidTier        = errors.New("invalid feedback tier")
)

// PronunciationAttempt is one recognizer result being checked against a
// target phrase: the most confident transcription plus any lower ranked
// alternatives, in recognizer order. Attempts are ephemeral and never
// persisted; only the resulting review rating reaches storage.
type PronunciationAttempt struct {
	Target        string   `json:"target"`
	SpokenPrimary string   `json:"spoken_primary"`
	Alternatives  []string `json:"alternatives,omitempty"`
}

// MatchResult is the outcome of scoring a pronunciation attempt.
//
// SoundsAlike is a phonetic hint computed alongside the score: it reports
// whether the primary transcription and the target sound the same even when
// they are spelled differently. It never changes Score or Tier.
type MatchResult struct {
	Score            int    `json:"score"`
	Tier             Tier   `json:"tier"`
	NormalizedTarget string `json:"normalized_target"`
	SoundsAlike      bool   `json:"sounds_alike"`
}

// NewPronunciationAttempt creates an attempt for the given target phrase and
// recognizer output. Returns an error if validation fails.
func NewPronunciationAttempt(target, spokenPrimary string, alternatives []string) (*PronunciationAttempt, error) {
	attempt := &PronunciationAttempt{
		Target:        target,
		SpokenPrimary: spokenPrimary,
		Alternatives:  alternatives,
	}

	if err := attempt.Validate(); err != nil {
		return nil, err
	}

	return attempt, nil
}

// Validate checks if the PronunciationAttempt has valid data.
// An empty primary transcription is allowed: recognizers can return nothing,
// and scoring handles that case.
func (a *PronunciationAttempt) Validate() error {
	if strings.TrimSpace(a.Target) == "" {
		return ErrEmptyAttemptTarget
	}

	return nil
}

// Valid reports whether the tier is one of the defined feedback categories.
func (t Tier) Valid() bool {
	switch t {
	case TierPerfect, TierExcellent, TierGood, TierPartial,
		TierClose, TierTryAgain, TierDifferent:
		return true
	default:
		return false
	}
}
