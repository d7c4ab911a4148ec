package match

import (
	"strings"

	"github.com/parlo-app/parlo-api/internal/domain"
)

// classifyAttempt maps a pronunciation attempt onto a score and feedback tier.
//
// This function is the core of the matching engine. It applies a fixed,
// ordered rule set so that every (target, spokenPrimary, alternatives) triple
// yields exactly one result, with earlier rules taking precedence over later
// ones.
//
// Parameters:
//   - target: The phrase the learner was asked to say
//   - spokenPrimary: The recognizer's most confident transcription
//   - alternatives: Lower ranked transcriptions, in recognizer order
//   - params: Configuration parameters for classification
//
// Returns:
//   - A MatchResult carrying the score, tier, normalized target, and a
//     phonetic sounds-alike hint
//
// Rule order:
//  1. Normalized primary equals normalized target: score 100, tier perfect.
//  2. Any normalized alternative equals normalized target: the alternative
//     score (default 95), tier excellent.
//  3. Otherwise compute similarity between the normalized strings.
//  4. Primary contains the target as a substring: at least the contains
//     floor (default 85), tier good. The learner said the whole phrase with
//     extra words around it.
//  5. Target contains the primary and the primary is longer than the
//     minimum contained length: at least the contained floor (default 70),
//     tier partial. The learner said a real fragment of the phrase.
//  6. Tier by similarity threshold: good, close, tryagain, or different,
//     with the similarity itself as the score.
//
// The sounds-alike hint is computed independently of the rules above and
// never changes the score or tier.
func classifyAttempt(
	target string,
	spokenPrimary string,
	alternatives []string,
	params *Params,
) *domain.MatchResult {
	normTarget := Normalize(target)
	normSpoken := Normalize(spokenPrimary)

	result := &domain.MatchResult{
		NormalizedTarget: normTarget,
	}

	// Rule 1: exact match on the primary transcription
	if normSpoken == normTarget {
		result.Score = 100
		result.Tier = domain.TierPerfect
		result.SoundsAlike = normTarget != ""
		return result
	}

	// Rule 2: exact match on any alternative transcription
	for _, alt := range alternatives {
		if Normalize(alt) == normTarget {
			result.Score = params.AlternativeScore
			result.Tier = domain.TierExcellent
			result.SoundsAlike = soundsAlike(normTarget, normSpoken, params.PhoneticThreshold)
			return result
		}
	}

	similarity := similarityNormalized(normTarget, normSpoken)
	result.SoundsAlike = soundsAlike(normTarget, normSpoken, params.PhoneticThreshold)

	// Rule 4: the learner said the target with extra words around it
	if strings.Contains(normSpoken, normTarget) {
		result.Score = atLeast(similarity, params.ContainsFloor)
		result.Tier = domain.TierGood
		return result
	}

	// Rule 5: the learner said a fragment of the target
	if strings.Contains(normTarget, normSpoken) &&
		len(normSpoken) > params.MinContainedLength {
		result.Score = atLeast(similarity, params.ContainedFloor)
		result.Tier = domain.TierPartial
		return result
	}

	// Rule 6: tier purely by similarity
	result.Score = similarity
	switch {
	case similarity >= params.GoodThreshold:
		result.Tier = domain.TierGood
	case similarity >= params.CloseThreshold:
		result.Tier = domain.TierClose
	case similarity >= params.TryAgainThreshold:
		result.Tier = domain.TierTryAgain
	default:
		result.Tier = domain.TierDifferent
	}

	return result
}

// atLeast returns score raised to floor when it falls below it.
func atLeast(score, floor int) int {
	if score < floor {
		return floor
	}
	return score
}
