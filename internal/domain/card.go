package domain

import (
	"errors"
	"strings"
)

// Category groups vocabulary cards by everyday theme
type Category string

// Possible category values
const (
	CategoryGreetings Category = "greetings"
	CategoryTravel    Category = "travel"
	CategoryFood      Category = "food"
	CategoryShopping  Category = "shopping"
	CategoryWork      Category = "work"
	CategoryDailyLife Category = "daily_life"
)

// Difficulty indicates how advanced a vocabulary card is
type Difficulty string

// Possible difficulty values
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardIDInvalid is returned when a card ID contains characters
	// outside the slug alphabet.
	ErrCardIDInvalid = errors.New("card ID must be a lowercase slug")

	// ErrCardTermEmpty is returned when a card's term is empty.
	ErrCardTermEmpty = errors.New("card term cannot be empty")

	// ErrCardMeaningEmpty is returned when a card's meaning is empty.
	ErrCardMeaningEmpty = errors.New("card meaning cannot be empty")

	// ErrInvalidCategory is returned when a card category is not valid.
	ErrInvalidCategory = errors.New("invalid card category")

	// ErrInvalidDifficulty is returned when a card difficulty is not valid.
	ErrInvalidDifficulty = errors.New("invalid card difficulty")
)

// VocabularyCard is one entry of the static vocabulary catalog: the phrase a
// learner practices, its meaning, and an example sentence. Cards are immutable
// reference data; catalog position defines their canonical order.
type VocabularyCard struct {
	ID         string     `json:"id"         yaml:"id"`
	Term       string     `json:"term"       yaml:"term"`
	Meaning    string     `json:"meaning"    yaml:"meaning"`
	Example    string     `json:"example,omitempty" yaml:"example,omitempty"`
	Category   Category   `json:"category"   yaml:"category"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
}

// Validate checks if the VocabularyCard has valid data.
// Returns an error if any field fails validation.
func (c *VocabularyCard) Validate() error {
	if c.ID == "" {
		return ErrCardIDEmpty
	}

	if !isValidCardID(c.ID) {
		return ErrCardIDInvalid
	}

	if strings.TrimSpace(c.Term) == "" {
		return ErrCardTermEmpty
	}

	if strings.TrimSpace(c.Meaning) == "" {
		return ErrCardMeaningEmpty
	}

	if !c.Category.Valid() {
		return ErrInvalidCategory
	}

	if !c.Difficulty.Valid() {
		return ErrInvalidDifficulty
	}

	return nil
}

// isValidCardID checks that an ID uses only lowercase letters, digits,
// hyphens, and underscores, as catalog slugs do.
func isValidCardID(id string) bool {
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

// Valid reports whether the category is one of the defined values.
func (c Category) Valid() bool {
	switch c {
	case CategoryGreetings, CategoryTravel, CategoryFood,
		CategoryShopping, CategoryWork, CategoryDailyLife:
		return true
	default:
		return false
	}
}

// Valid reports whether the difficulty is one of the defined values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}
