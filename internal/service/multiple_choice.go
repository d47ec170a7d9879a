package service

import (
	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// GenerateMultipleChoice builds one multiple-choice question. One entry is
// picked uniformly from the unused pool as the correct answer, a random
// variant decides the prompt and option fields, and distractors come from the
// expanding length-tolerance search over the full pool. Returns nil when
// fewer unused entries remain than options are needed.
func (g *Generator) GenerateMultipleChoice(
	pool []*entities.VocabularyEntry,
	used map[string]struct{},
) *entities.MultipleChoiceQuestion {
	available := filterUnused(pool, used)
	if len(available) < g.cfg.OptionCount {
		return nil
	}

	correct := available[g.rng.Intn(len(available))]
	variant := entities.MCVariants[g.rng.Intn(len(entities.MCVariants))]

	value := func(e *entities.VocabularyEntry) string { return optionField(variant, e) }
	distractors := g.lengthMatchedDistractors(pool, correct, value, g.cfg.DistractorCount)

	return &entities.MultipleChoiceQuestion{
		ID:            newQuestionID(),
		Variant:       variant,
		Prompt:        promptField(variant, correct),
		CorrectAnswer: correct,
		Options:       g.buildOptions(correct, distractors, value),
	}
}
