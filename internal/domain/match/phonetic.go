package match

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// soundsAlike reports whether two normalized phrases plausibly sound the
// same when spoken, even if they are spelled differently. It is a hint for
// feedback ("right" for "write" is a spelling miss, not a pronunciation
// miss), so it favors precision over recall.
//
// Three checks run in order, cheapest first:
//
//  1. Token-aligned Double Metaphone: same token count and every aligned
//     pair of tokens shares a phonetic code ("write a letter" vs
//     "right a letter").
//  2. Whole-phrase Double Metaphone on the space-stripped strings, which
//     catches token boundary differences ("ice cream" vs "icecream").
//  3. Jaro-Winkler similarity of the space-stripped strings at or above
//     threshold, for near-homophones Double Metaphone separates.
func soundsAlike(a, b string, threshold float64) bool {
	if a == "" || b == "" {
		return false
	}

	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)

	if len(tokensA) == len(tokensB) && tokensAlign(tokensA, tokensB) {
		return true
	}

	joinedA := strings.Join(tokensA, "")
	joinedB := strings.Join(tokensB, "")

	if codesShared(joinedA, joinedB) {
		return true
	}

	return matchr.JaroWinkler(joinedA, joinedB, false) >= threshold
}

// tokensAlign reports whether every aligned token pair shares a phonetic
// code. Both slices must have the same length.
func tokensAlign(a, b []string) bool {
	for i := range a {
		if !codesShared(a[i], b[i]) {
			return false
		}
	}
	return true
}

// codesShared reports whether two words share at least one non-empty
// Double Metaphone code. Words with no code at all (digits, empty strings)
// never match phonetically.
func codesShared(a, b string) bool {
	primaryA, secondaryA := matchr.DoubleMetaphone(a)
	primaryB, secondaryB := matchr.DoubleMetaphone(b)

	for _, codeA := range []string{primaryA, secondaryA} {
		if codeA == "" {
			continue
		}
		for _, codeB := range []string{primaryB, secondaryB} {
			if codeB != "" && codeA == codeB {
				return true
			}
		}
	}

	return false
}
