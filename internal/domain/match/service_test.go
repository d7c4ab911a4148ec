package match

import (
	"testing"

	"github.com/parlo-app/parlo-api/internal/domain"
)

func TestMatcherEvaluate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	matcher := NewDefaultMatcher()

	attempt := &domain.PronunciationAttempt{
		Target:        "Good morning!",
		SpokenPrimary: "good morning",
	}

	result, err := matcher.Evaluate(attempt)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Score != 100 {
		t.Errorf("Expected score 100, got %d", result.Score)
	}
	if result.Tier != domain.TierPerfect {
		t.Errorf("Expected tier %q, got %q", domain.TierPerfect, result.Tier)
	}
	if result.NormalizedTarget != "good morning" {
		t.Errorf("Expected normalized target %q, got %q", "good morning", result.NormalizedTarget)
	}
}

func TestMatcherEvaluateNilAttempt(t *testing.T) {
	t.Parallel() // Enable parallel execution
	matcher := NewDefaultMatcher()

	_, err := matcher.Evaluate(nil)
	if err != ErrNilAttempt {
		t.Errorf("Expected error %v, got %v", ErrNilAttempt, err)
	}
}

func TestMatcherEvaluateWithCustomParams(t *testing.T) {
	t.Parallel() // Enable parallel execution
	matcher := NewMatcherWithParams(NewParams(ParamsConfig{
		AlternativeScore: 90,
	}))

	attempt := &domain.PronunciationAttempt{
		Target:        "hello",
		SpokenPrimary: "hallo",
		Alternatives:  []string{"hello"},
	}

	result, err := matcher.Evaluate(attempt)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Score != 90 {
		t.Errorf("Expected overridden alternative score 90, got %d", result.Score)
	}
	if result.Tier != domain.TierExcellent {
		t.Errorf("Expected tier %q, got %q", domain.TierExcellent, result.Tier)
	}
}

func TestMatcherIsDeterministic(t *testing.T) {
	t.Parallel() // Enable parallel execution
	matcher := NewDefaultMatcher()

	attempt := &domain.PronunciationAttempt{
		Target:        "how much does it cost",
		SpokenPrimary: "how much does it caught",
		Alternatives:  []string{"how much dozen cost"},
	}

	first, err := matcher.Evaluate(attempt)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for i := 0; i < 5; i++ {
		next, err := matcher.Evaluate(attempt)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if next.Score != first.Score || next.Tier != first.Tier {
			t.Errorf("Expected stable result %d/%s, got %d/%s",
				first.Score, first.Tier, next.Score, next.Tier)
		}
	}
}
