// Package match scores how closely a recognized utterance matches a target
// phrase. It normalizes both strings, measures rune-level edit distance, and
// maps the resulting similarity plus containment relationships onto a discrete
// feedback tier. All scoring functions are pure and deterministic; the same
// inputs always produce the same result.
package match
