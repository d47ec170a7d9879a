package service

import (
	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// GenerateMatching builds one matching-set question with a random item count
// drawn from the configured range. Unlike multiple-choice, matching may reuse
// entries already seen in this quiz: when the unused pool is too small it
// tops up with previously used entries before giving up. Returns nil only
// when the whole pool is still short of the target count.
//
// The three columns are shuffled independently of each other and of the item
// order — a positionally aligned triple would make the task trivial.
func (g *Generator) GenerateMatching(
	pool []*entities.VocabularyEntry,
	used map[string]struct{},
) *entities.MatchingQuestion {
	span := g.cfg.MatchingMaxItems - g.cfg.MatchingMinItems + 1
	target := g.cfg.MatchingMinItems + g.rng.Intn(span)

	available := filterUnused(pool, used)
	if len(available) < target {
		need := target - len(available)
		available = append(available, g.selectRandom(filterUsed(pool, used), need)...)
	}
	if len(available) < target {
		return nil
	}

	selected := g.selectRandom(available, target)

	items := make([]entities.MatchingItem, len(selected))
	words := make([]string, len(selected))
	pinyins := make([]string, len(selected))
	meanings := make([]string, len(selected))
	for i, e := range selected {
		items[i] = entities.MatchingItem{
			ID:      e.ID,
			Word:    e.Word,
			Pinyin:  e.Pinyin,
			Meaning: e.Meaning(),
			Example: e.Example,
		}
		words[i] = e.Word
		pinyins[i] = e.Pinyin
		meanings[i] = e.Meaning()
	}

	return &entities.MatchingQuestion{
		ID:               newQuestionID(),
		Items:            items,
		ShuffledWords:    g.shuffledStrings(words),
		ShuffledPinyins:  g.shuffledStrings(pinyins),
		ShuffledMeanings: g.shuffledStrings(meanings),
	}
}
