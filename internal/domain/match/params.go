package match

import "errors"

// Validation errors for Params
var (
	ErrThresholdOrder = errors.New(
		"tier thresholds must descend from good through close to tryagain")
	ErrScoreOutOfRange = errors.New(
		"score parameters must be between 0 and 100")
	ErrInvalidPhoneticThreshold = errors.New(
		"phonetic threshold must be between 0 and 1")
)

// Params defines all configurable parameters for attempt classification.
// The defaults reproduce the product's tuned values; none of them are
// derived, so changing one never recomputes another.
type Params struct {
	// Score assigned when an alternative transcription, rather than the
	// primary one, matches the target exactly.
	AlternativeScore int

	// Floors applied when one normalized string contains the other.
	ContainsFloor  int // spoken contains target
	ContainedFloor int // target contains spoken

	// Minimum normalized length the spoken string must exceed for the
	// contained-in-target rule to apply. Filters out fragments like "a"
	// or "to" that appear inside almost any phrase.
	MinContainedLength int

	// Similarity thresholds mapping a score to a tier.
	GoodThreshold     int
	CloseThreshold    int
	TryAgainThreshold int

	// Jaro-Winkler score at or above which two phrases count as sounding
	// alike when their phonetic codes do not align.
	PhoneticThreshold float64
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance
type ParamsConfig struct {
	AlternativeScore   int
	ContainsFloor      int
	ContainedFloor     int
	MinContainedLength int
	GoodThreshold      int
	CloseThreshold     int
	TryAgainThreshold  int
	PhoneticThreshold  float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		AlternativeScore: 95,

		ContainsFloor:  85,
		ContainedFloor: 70,

		MinContainedLength: 2,

		GoodThreshold:     80,
		CloseThreshold:    60,
		TryAgainThreshold: 40,

		PhoneticThreshold: 0.85,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.AlternativeScore > 0 {
		params.AlternativeScore = config.AlternativeScore
	}
	if config.ContainsFloor > 0 {
		params.ContainsFloor = config.ContainsFloor
	}
	if config.ContainedFloor > 0 {
		params.ContainedFloor = config.ContainedFloor
	}
	if config.MinContainedLength > 0 {
		params.MinContainedLength = config.MinContainedLength
	}
	if config.GoodThreshold > 0 {
		params.GoodThreshold = config.GoodThreshold
	}
	if config.CloseThreshold > 0 {
		params.CloseThreshold = config.CloseThreshold
	}
	if config.TryAgainThreshold > 0 {
		params.TryAgainThreshold = config.TryAgainThreshold
	}
	if config.PhoneticThreshold > 0 {
		params.PhoneticThreshold = config.PhoneticThreshold
	}

	return params
}

// Validate checks the structural properties the classifier relies on:
// scores and floors within 0-100, thresholds strictly descending, and a
// phonetic threshold within (0, 1].
func (p *Params) Validate() error {
	scores := []int{
		p.AlternativeScore,
		p.ContainsFloor,
		p.ContainedFloor,
		p.GoodThreshold,
		p.CloseThreshold,
		p.TryAgainThreshold,
	}
	for _, s := range scores {
		if s < 0 || s > 100 {
			return ErrScoreOutOfRange
		}
	}

	if p.GoodThreshold <= p.CloseThreshold || p.CloseThreshold <= p.TryAgainThreshold {
		return ErrThresholdOrder
	}

	if p.PhoneticThreshold <= 0 || p.PhoneticThreshold > 1 {
		return ErrInvalidPhoneticThreshold
	}

	return nil
}
