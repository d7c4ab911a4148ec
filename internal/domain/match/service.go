package match

import (
	"errors"

	"github.com/parlo-app/parlo-api/internal/domain"
)

// Common errors
var (
	ErrNilAttempt = errors.New("pronunciation attempt cannot be nil")
)

// Matcher defines the interface for pronunciation scoring operations
type Matcher interface {
	// Evaluate scores an attempt against its target phrase and assigns a
	// feedback tier
	Evaluate(attempt *domain.PronunciationAttempt) (*domain.MatchResult, error)
}

// defaultMatcher is the standard implementation of the Matcher interface
type defaultMatcher struct {
	params *Params
}

// NewDefaultMatcher creates a new matcher with default parameters
func NewDefaultMatcher() Matcher {
	return &defaultMatcher{
		params: NewDefaultParams(),
	}
}

// NewMatcherWithParams creates a new matcher with custom parameters
func NewMatcherWithParams(params *Params) Matcher {
	return &defaultMatcher{
		params: params,
	}
}

// Evaluate implements the Matcher interface
func (m *defaultMatcher) Evaluate(
	attempt *domain.PronunciationAttempt,
) (*domain.MatchResult, error) {
	if attempt == nil {
		return nil, ErrNilAttempt
	}

	result := classifyAttempt(
		attempt.Target,
		attempt.SpokenPrimary,
		attempt.Alternatives,
		m.params,
	)

	return result, nil
}
