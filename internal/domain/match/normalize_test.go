package match

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "Hello, World!",
			expected: "hello world",
		},
		{
			name:     "trims and collapses whitespace",
			input:    "  GOOD   morning  ",
			expected: "good morning",
		},
		{
			name:     "removes apostrophes without splitting the word",
			input:    "don't",
			expected: "dont",
		},
		{
			name:     "drops accented characters",
			input:    "café",
			expected: "caf",
		},
		{
			name:     "keeps digits",
			input:    "123 Main St.",
			expected: "123 main st",
		},
		{
			name:     "tabs and newlines count as whitespace",
			input:    "a\tb\nc",
			expected: "a b c",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "!!!",
			expected: "",
		},
		{
			name:     "hyphens are removed not spaced",
			input:    "well-known",
			expected: "wellknown",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)

			if got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}

			// Normalization must be idempotent
			if again := Normalize(got); again != got {
				t.Errorf("Expected idempotent result, got %q then %q", got, again)
			}
		})
	}
}
