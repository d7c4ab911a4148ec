package domain

import (
	"testing"
)

func validCard() VocabularyCard {
	return VocabularyCard{
		ID:         "good-morning",
		Term:       "Good morning",
		Meaning:    "A greeting used before noon",
		Example:    "Good morning, how did you sleep?",
		Category:   CategoryGreetings,
		Difficulty: DifficultyBeginner,
	}
}

func TestCardValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	card := validCard()

	// Test valid card
	if err := card.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test empty ID
	invalidCard := validCard()
	invalidCard.ID = ""
	if err := invalidCard.Validate(); err != ErrCardIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardIDEmpty, err)
	}

	// Test non-slug ID
	invalidCard = validCard()
	invalidCard.ID = "Good Morning!"
	if err := invalidCard.Validate(); err != ErrCardIDInvalid {
		t.Errorf("Expected error %v, got %v", ErrCardIDInvalid, err)
	}

	// Test empty term
	invalidCard = validCard()
	invalidCard.Term = "   "
	if err := invalidCard.Validate(); err != ErrCardTermEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardTermEmpty, err)
	}

	// Test empty meaning
	invalidCard = validCard()
	invalidCard.Meaning = ""
	if err := invalidCard.Validate(); err != ErrCardMeaningEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardMeaningEmpty, err)
	}

	// Test unknown category
	invalidCard = validCard()
	invalidCard.Category = "sports"
	if err := invalidCard.Validate(); err != ErrInvalidCategory {
		t.Errorf("Expected error %v, got %v", ErrInvalidCategory, err)
	}

	// Test unknown difficulty
	invalidCard = validCard()
	invalidCard.Difficulty = "expert"
	if err := invalidCard.Validate(); err != ErrInvalidDifficulty {
		t.Errorf("Expected error %v, got %v", ErrInvalidDifficulty, err)
	}

	// Test empty example is allowed
	card = validCard()
	card.Example = ""
	if err := card.Validate(); err != nil {
		t.Errorf("Expected no error for empty example, got %v", err)
	}
}

func TestCardIDSlugAlphabet(t *testing.T) {
	t.Parallel() // Enable parallel execution
	valid := []string{"a", "good-morning", "how_much_2", "x9"}
	for _, id := range valid {
		card := validCard()
		card.ID = id
		if err := card.Validate(); err != nil {
			t.Errorf("Expected ID %q to be valid, got %v", id, err)
		}
	}

	invalid := []string{"Good-morning", "café", "a b", "a.b"}
	for _, id := range invalid {
		card := validCard()
		card.ID = id
		if err := card.Validate(); err != ErrCardIDInvalid {
			t.Errorf("Expected ID %q to fail with %v, got %v", id, ErrCardIDInvalid, err)
		}
	}
}
