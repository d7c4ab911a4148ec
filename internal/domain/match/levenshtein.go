package match

import "math"

// Similarity computes how alike two raw strings are on a 0-100 scale.
// Both inputs are normalized first, so callers can pass recognizer output
// and catalog phrases as-is.
//
// Scoring rules:
//   - Both strings normalize to empty: 100.
//   - Exactly one normalizes to empty: 0.
//   - Otherwise: round((1 - distance/longerLength) * 100), where distance is
//     the rune-level edit distance between the normalized strings, clamped
//     to the 0-100 range.
func Similarity(a, b string) int {
	return similarityNormalized(Normalize(a), Normalize(b))
}

// similarityNormalized scores two already normalized strings. Callers that
// normalize once and reuse the result go through here to avoid paying for
// normalization twice.
func similarityNormalized(na, nb string) int {
	if na == "" && nb == "" {
		return 100
	}
	if na == "" || nb == "" {
		return 0
	}

	ra := []rune(na)
	rb := []rune(nb)

	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}

	distance := levenshtein(ra, rb)
	score := int(math.Round((1 - float64(distance)/float64(longer)) * 100))

	// Ensure the score stays within bounds
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score
}

// levenshtein computes the edit distance between two rune slices with unit
// costs for insertion, deletion, and substitution. Only two rows of the
// dynamic programming table are kept at a time.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
