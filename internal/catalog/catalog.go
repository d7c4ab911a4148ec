// Package catalog loads and serves the static vocabulary catalog. The
// catalog is immutable reference data: cards are defined once in YAML,
// validated at load time, and kept in file order, which is the canonical
// presentation order everywhere in the application.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/parlo-app/parlo-api/internal/domain"
)

// Common catalog errors
var (
	// ErrEmptyCatalog is returned when a catalog source contains no cards.
	ErrEmptyCatalog = errors.New("catalog contains no cards")

	// ErrDuplicateCardID is returned when two cards share an ID.
	ErrDuplicateCardID = errors.New("catalog contains a duplicate card ID")
)

// catalogFile mirrors the YAML document layout.
type catalogFile struct {
	Cards []domain.VocabularyCard `yaml:"cards"`
}

// Catalog is an ordered, validated collection of vocabulary cards with
// constant-time lookup by ID. It is immutable after construction and safe
// for concurrent readers.
type Catalog struct {
	cards []domain.VocabularyCard
	byID  map[string]int
}

// New builds a Catalog from the given cards, preserving their order.
// Every card is validated and IDs must be unique.
func New(cards []domain.VocabularyCard) (*Catalog, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		cards: make([]domain.VocabularyCard, len(cards)),
		byID:  make(map[string]int, len(cards)),
	}

	for i, card := range cards {
		if err := card.Validate(); err != nil {
			return nil, fmt.Errorf("card %d (%s): %w", i, card.ID, err)
		}
		if _, exists := c.byID[card.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCardID, card.ID)
		}

		c.cards[i] = card
		c.byID[card.ID] = i
	}

	return c, nil
}

// Parse builds a Catalog from YAML catalog data.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	return New(file.Cards)
}

// LoadFile builds a Catalog from a YAML file on disk. It serves deployments
// that override the built-in card set.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	return Parse(data)
}

// Len returns the number of cards in the catalog.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Cards returns all cards in catalog order. The returned slice is a copy;
// callers can modify it freely.
func (c *Catalog) Cards() []domain.VocabularyCard {
	cards := make([]domain.VocabularyCard, len(c.cards))
	copy(cards, c.cards)
	return cards
}

// Get returns the card with the given ID and whether it exists.
func (c *Catalog) Get(id string) (domain.VocabularyCard, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.VocabularyCard{}, false
	}
	return c.cards[i], true
}

// Filter returns the cards matching the given category and difficulty in
// catalog order. Empty values match everything, so Filter("", "") is
// equivalent to Cards().
func (c *Catalog) Filter(category domain.Category, difficulty domain.Difficulty) []domain.VocabularyCard {
	cards := make([]domain.VocabularyCard, 0, len(c.cards))
	for _, card := range c.cards {
		if category != "" && card.Category != category {
			continue
		}
		if difficulty != "" && card.Difficulty != difficulty {
			continue
		}
		cards = append(cards, card)
	}
	return cards
}
