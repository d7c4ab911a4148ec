package match

import "testing"

func TestLevenshtein(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{
			name:     "identical strings",
			a:        "hello",
			b:        "hello",
			expected: 0,
		},
		{
			name:     "single substitution",
			a:        "hello",
			b:        "hallo",
			expected: 1,
		},
		{
			name:     "classic kitten sitting",
			a:        "kitten",
			b:        "sitting",
			expected: 3,
		},
		{
			name:     "empty against word",
			a:        "",
			b:        "word",
			expected: 4,
		},
		{
			name:     "word against empty",
			a:        "word",
			b:        "",
			expected: 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := levenshtein([]rune(tc.a), []rune(tc.b))

			if got != tc.expected {
				t.Errorf("Expected distance %d, got %d", tc.expected, got)
			}

			// Distance is symmetric
			if rev := levenshtein([]rune(tc.b), []rune(tc.a)); rev != got {
				t.Errorf("Expected symmetric distance, got %d and %d", got, rev)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{
			name:     "both empty after normalization",
			a:        "!!!",
			b:        "???",
			expected: 100,
		},
		{
			name:     "one empty after normalization",
			a:        "hello",
			b:        "...",
			expected: 0,
		},
		{
			name:     "identical raw strings",
			a:        "hello",
			b:        "hello",
			expected: 100,
		},
		{
			name:     "identical after normalization",
			a:        "Hello!",
			b:        "hello",
			expected: 100,
		},
		{
			name:     "kitten sitting",
			a:        "kitten",
			b:        "sitting",
			expected: 57, // round((1 - 3/7) * 100) = 57
		},
		{
			name:     "good morning vs good afternoon",
			a:        "good morning",
			b:        "good afternoon",
			expected: 50, // distance 7, longer length 14
		},
		{
			name:     "accent stripped before comparison",
			a:        "café",
			b:        "cafe",
			expected: 75, // "caf" vs "cafe": distance 1, length 4
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Similarity(tc.a, tc.b)

			if got != tc.expected {
				t.Errorf("Expected similarity %d, got %d", tc.expected, got)
			}

			// Similarity is symmetric
			if rev := Similarity(tc.b, tc.a); rev != got {
				t.Errorf("Expected symmetric similarity, got %d and %d", got, rev)
			}

			if got < 0 || got > 100 {
				t.Errorf("Expected similarity within 0-100, got %d", got)
			}
		})
	}
}
