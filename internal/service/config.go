package service

import (
	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// HSKWeights are the relative sampling weights per proficiency level. They do
// not need to sum to 100.
type HSKWeights struct {
	HSK1 int `mapstructure:"hsk1"`
	HSK2 int `mapstructure:"hsk2"`
	HSK3 int `mapstructure:"hsk3"`
}

// Total returns the cumulative weight mass.
func (w HSKWeights) Total() int { return w.HSK1 + w.HSK2 + w.HSK3 }

// QuizConfig carries every knob of the composition engine. Zero values are not
// usable; start from DefaultQuizConfig and override via configuration.
type QuizConfig struct {
	// Lengths maps a named preset to its target question count.
	Lengths map[entities.QuizLength]int `mapstructure:"lengths"`

	// OptionCount and DistractorCount shape choice-based questions.
	// OptionCount must equal DistractorCount + 1.
	OptionCount     int `mapstructure:"option_count"`
	DistractorCount int `mapstructure:"distractor_count"`

	// MaxLengthTolerance caps the expanding window of the length-matching
	// distractor search before it falls back to the whole pool.
	MaxLengthTolerance int `mapstructure:"max_length_tolerance"`

	// Matching item count is drawn uniformly from [MatchingMinItems, MatchingMaxItems].
	MatchingMinItems int `mapstructure:"matching_min_items"`
	MatchingMaxItems int `mapstructure:"matching_max_items"`

	// Sentence-arrangement accepts segmentations within
	// [ArrangementMinWords, ArrangementMaxWords] tokens.
	ArrangementMinWords int `mapstructure:"arrangement_min_words"`
	ArrangementMaxWords int `mapstructure:"arrangement_max_words"`

	// HSKWeights bias which proficiency level each question samples from.
	HSKWeights HSKWeights `mapstructure:"hsk_weights"`

	// ArchetypeWeights apportion question counts across archetypes; relative,
	// need not sum to 100.
	ArchetypeWeights map[entities.Archetype]int `mapstructure:"archetype_weights"`
}

// DefaultQuizConfig returns the stock tuning of the drill generator.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{
		Lengths: map[entities.QuizLength]int{
			entities.LengthShort:   10,
			entities.LengthMedium:  20,
			entities.LengthLong:    30,
			entities.LengthMaximum: 50,
		},
		OptionCount:         4,
		DistractorCount:     3,
		MaxLengthTolerance:  3,
		MatchingMinItems:    3,
		MatchingMaxItems:    5,
		ArrangementMinWords: 4,
		ArrangementMaxWords: 10,
		HSKWeights:          HSKWeights{HSK1: 2, HSK2: 3, HSK3: 5},
		ArchetypeWeights: map[entities.Archetype]int{
			entities.ArchetypeMultipleChoice:      30,
			entities.ArchetypeMatching:            20,
			entities.ArchetypeFillBlank:           20,
			entities.ArchetypeSentenceArrangement: 15,
			entities.ArchetypeSentenceCompletion:  15,
		},
	}
}
