package service

import (
	"strings"
	"unicode/utf8"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// GenerateFillBlank builds one fill-in-blank question from an entry whose
// example sentence contains the entry's own word. The blank sits at the first
// occurrence of the word; distractors use the same expanding
// length-tolerance search as multiple-choice, keyed on word length.
func (g *Generator) GenerateFillBlank(
	pool []*entities.VocabularyEntry,
	used map[string]struct{},
) *entities.FillBlankQuestion {
	available := make([]*entities.VocabularyEntry, 0, len(pool))
	for _, e := range filterUnused(pool, used) {
		if e.HasUsableExample() && e.ExampleMeaning != "" {
			available = append(available, e)
		}
	}
	if len(available) == 0 {
		return nil
	}

	correct := available[g.rng.Intn(len(available))]

	byteOffset := strings.Index(correct.Example, correct.Word)
	if byteOffset < 0 {
		// Defensive: the filter above should have excluded this entry.
		return nil
	}
	blankPosition := utf8.RuneCountInString(correct.Example[:byteOffset])

	word := func(e *entities.VocabularyEntry) string { return e.Word }
	distractors := g.lengthMatchedDistractors(pool, correct, word, g.cfg.DistractorCount)

	return &entities.FillBlankQuestion{
		ID:              newQuestionID(),
		Sentence:        correct.Example,
		SentencePinyin:  correct.ExamplePinyin,
		SentenceMeaning: correct.ExampleMeaning,
		BlankPosition:   blankPosition,
		BlankLength:     utf8.RuneCountInString(correct.Word),
		CorrectAnswer:   correct,
		Options:         g.buildOptions(correct, distractors, word),
	}
}
