package service

import (
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// optionLabels are the positional markers for choice-based questions.
var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// Generator builds single questions of every archetype. All methods follow
// the same contract: given a candidate pool and the set of already used entry
// IDs they return one question, or nil when the pool cannot satisfy the
// archetype's structural minimum. Infeasibility is a normal outcome, never an
// error.
//
// Generators are pure over their inputs apart from the injected random
// source, so they are safe to call repeatedly and deterministic under a
// seeded rng.
type Generator struct {
	cfg QuizConfig
	rng *rand.Rand
}

// NewGenerator creates a Generator. Pass a seeded rng for deterministic
// output; nil falls back to a time-seeded source.
func NewGenerator(cfg QuizConfig, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{cfg: cfg, rng: rng}
}

// newQuestionID returns a unique question identifier.
func newQuestionID() string {
	return uuid.NewString()
}

// promptField returns the entry field shown as the prompt for a variant.
func promptField(variant entities.MCVariant, e *entities.VocabularyEntry) string {
	switch variant {
	case entities.VariantWordToPinyin, entities.VariantWordToMeaning:
		return e.Word
	case entities.VariantPinyinToWord, entities.VariantPinyinToMeaning:
		return e.Pinyin
	default: // meaning-to-word, meaning-to-pinyin
		return e.Meaning()
	}
}

// optionField returns the entry field that options and distractors are drawn
// from for a variant.
func optionField(variant entities.MCVariant, e *entities.VocabularyEntry) string {
	switch variant {
	case entities.VariantWordToPinyin, entities.VariantMeaningToPinyin:
		return e.Pinyin
	case entities.VariantPinyinToWord, entities.VariantMeaningToWord:
		return e.Word
	default: // word-to-meaning, pinyin-to-meaning
		return e.Meaning()
	}
}

// filterUnused returns the pool entries whose IDs are not in used.
func filterUnused(pool []*entities.VocabularyEntry, used map[string]struct{}) []*entities.VocabularyEntry {
	out := make([]*entities.VocabularyEntry, 0, len(pool))
	for _, e := range pool {
		if _, ok := used[e.ID]; !ok {
			out = append(out, e)
		}
	}
	return out
}

// filterUsed returns the pool entries whose IDs are in used.
func filterUsed(pool []*entities.VocabularyEntry, used map[string]struct{}) []*entities.VocabularyEntry {
	out := make([]*entities.VocabularyEntry, 0, len(used))
	for _, e := range pool {
		if _, ok := used[e.ID]; ok {
			out = append(out, e)
		}
	}
	return out
}

// shuffledEntries returns a shuffled copy of entries.
func (g *Generator) shuffledEntries(entries []*entities.VocabularyEntry) []*entities.VocabularyEntry {
	out := append([]*entities.VocabularyEntry(nil), entries...)
	g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// selectRandom returns up to count random entries from the pool.
func (g *Generator) selectRandom(pool []*entities.VocabularyEntry, count int) []*entities.VocabularyEntry {
	shuffled := g.shuffledEntries(pool)
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// shuffledStrings returns a shuffled copy of values.
func (g *Generator) shuffledStrings(values []string) []string {
	out := append([]string(nil), values...)
	g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// lengthMatchedDistractors picks count distractors whose field length is close
// to the correct entry's. It scans for exact length matches first, widening
// the tolerance window one character at a time up to the configured maximum;
// if the pool still cannot fill the quota, it samples uniformly from every
// remaining entry.
func (g *Generator) lengthMatchedDistractors(
	pool []*entities.VocabularyEntry,
	correct *entities.VocabularyEntry,
	field func(*entities.VocabularyEntry) string,
	count int,
) []*entities.VocabularyEntry {
	target := utf8.RuneCountInString(field(correct))

	for tolerance := 0; tolerance <= g.cfg.MaxLengthTolerance; tolerance++ {
		candidates := make([]*entities.VocabularyEntry, 0, len(pool))
		for _, e := range pool {
			if e.ID == correct.ID {
				continue
			}
			diff := utf8.RuneCountInString(field(e)) - target
			if diff < 0 {
				diff = -diff
			}
			if diff <= tolerance {
				candidates = append(candidates, e)
			}
		}
		if len(candidates) >= count {
			return g.selectRandom(candidates, count)
		}
	}

	// Fallback: whole remaining pool, length ignored.
	rest := make([]*entities.VocabularyEntry, 0, len(pool))
	for _, e := range pool {
		if e.ID != correct.ID {
			rest = append(rest, e)
		}
	}
	return g.selectRandom(rest, count)
}

// buildOptions shuffles the correct entry among its distractors and assigns
// positional labels afterwards, so the label carries no information about
// which option is correct.
func (g *Generator) buildOptions(
	correct *entities.VocabularyEntry,
	distractors []*entities.VocabularyEntry,
	value func(*entities.VocabularyEntry) string,
) []entities.Option {
	all := append([]*entities.VocabularyEntry{correct}, distractors...)
	all = g.shuffledEntries(all)

	options := make([]entities.Option, len(all))
	for i, e := range all {
		label := ""
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		options[i] = entities.Option{
			ID:        e.ID,
			Label:     label,
			Value:     value(e),
			IsCorrect: e.ID == correct.ID,
		}
	}
	return options
}
