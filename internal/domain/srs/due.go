package srs

import (
	"sort"
	"time"

	"github.com/parlo-app/parlo-api/internal/domain"
)

// isDue reports whether a card should be offered for review at the given
// time. A card with no progress record, or a record with no due time, has
// never been scheduled and is always due. A scheduled card is due once its
// due time is no longer in the future.
func isDue(progress *domain.CardProgress, now time.Time) bool {
	if progress == nil {
		return true
	}
	if progress.DueAt.IsZero() {
		return true
	}
	return !progress.DueAt.After(now)
}

// selectDueCards filters the catalog down to the cards due for review and
// orders them for presentation: never-reviewed cards first, then reviewed
// cards by ascending level, with catalog order breaking ties. Weak cards
// surface before strong ones, and fresh material before either.
//
// The progress map is keyed by card ID and may omit any card. The returned
// slice is freshly allocated on every call; callers can reorder or trim it
// without affecting anyone else.
func selectDueCards(
	cards []domain.VocabularyCard,
	progress map[string]*domain.CardProgress,
	now time.Time,
) []domain.VocabularyCard {
	type entry struct {
		card  domain.VocabularyCard
		level int
		seen  bool
	}

	entries := make([]entry, 0, len(cards))
	for _, card := range cards {
		p := progress[card.ID]
		if !isDue(p, now) {
			continue
		}

		e := entry{card: card}
		if p != nil && p.Reviewed() {
			e.level = p.Level
			e.seen = true
		}
		entries = append(entries, e)
	}

	// Stable sort keeps catalog order within each group
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].seen != entries[j].seen {
			return !entries[i].seen
		}
		return entries[i].level < entries[j].level
	})

	due := make([]domain.VocabularyCard, len(entries))
	for i, e := range entries {
		due[i] = e.card
	}
	return due
}

// summarize counts a learner's standing across the catalog: how many cards
// exist, how many have been reviewed at least once, how many have been
// learned (level 1 or higher), how many are mastered (top level), and how
// many are currently due.
func summarize(
	cards []domain.VocabularyCard,
	progress map[string]*domain.CardProgress,
	now time.Time,
) Summary {
	s := Summary{TotalCards: len(cards)}

	for _, card := range cards {
		p := progress[card.ID]

		if isDue(p, now) {
			s.DueCount++
		}
		if p == nil {
			continue
		}
		if p.Reviewed() {
			s.SeenCount++
		}
		if p.Learned() {
			s.LearnedCount++
		}
		if p.Mastered() {
			s.MasteredCount++
		}
	}

	return s
}
