package service

import (
	"strings"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// GenerateSentenceCompletion builds one sentence-completion question: the
// entry's own word is removed from its example sentence and the learner types
// it back, with the word's pinyin left visible as a hint. The sentence text
// before and after the blank is kept verbatim for reconstruction.
func (g *Generator) GenerateSentenceCompletion(
	pool []*entities.VocabularyEntry,
	used map[string]struct{},
) *entities.SentenceCompletionQuestion {
	available := make([]*entities.VocabularyEntry, 0, len(pool))
	for _, e := range filterUnused(pool, used) {
		if e.HasUsableExample() && e.ExampleMeaning != "" {
			available = append(available, e)
		}
	}
	if len(available) == 0 {
		return nil
	}

	chosen := available[g.rng.Intn(len(available))]

	offset := strings.Index(chosen.Example, chosen.Word)
	if offset < 0 {
		return nil
	}

	return &entities.SentenceCompletionQuestion{
		ID:              newQuestionID(),
		Sentence:        chosen.Example,
		SentenceMeaning: chosen.ExampleMeaning,
		BlankWord:       chosen.Word,
		BlankPinyin:     chosen.Pinyin,
		Before:          chosen.Example[:offset],
		After:           chosen.Example[offset+len(chosen.Word):],
		Entry:           chosen,
	}
}
