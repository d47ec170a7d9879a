package entities

import "time"

// Answer mirrors the Question union: one concrete answer type per archetype.
// Every answer knows which question it belongs to, how long the learner took,
// and carries its correctness signal.
type Answer interface {
	AnsweredQuestionID() string
	AnswerArchetype() Archetype
	TimeSpent() time.Duration
}

// MultipleChoiceAnswer records the selected option of a multiple-choice question.
type MultipleChoiceAnswer struct {
	QuestionID       string
	SelectedOptionID string
	IsCorrect        bool
	Duration         time.Duration
}

func (a *MultipleChoiceAnswer) AnsweredQuestionID() string { return a.QuestionID }
func (a *MultipleChoiceAnswer) AnswerArchetype() Archetype { return ArchetypeMultipleChoice }
func (a *MultipleChoiceAnswer) TimeSpent() time.Duration   { return a.Duration }

// MatchingConnection is the learner's placed pinyin and meaning for one word.
type MatchingConnection struct {
	Word      string
	Pinyin    string
	Meaning   string
	IsCorrect bool
}

// MatchingAnswer scores per item: CorrectCount out of len(Connections).
type MatchingAnswer struct {
	QuestionID   string
	Connections  []MatchingConnection
	CorrectCount int
	Duration     time.Duration
}

func (a *MatchingAnswer) AnsweredQuestionID() string { return a.QuestionID }
func (a *MatchingAnswer) AnswerArchetype() Archetype { return ArchetypeMatching }
func (a *MatchingAnswer) TimeSpent() time.Duration   { return a.Duration }

// FillBlankAnswer records the selected option of a fill-in-blank question.
type FillBlankAnswer struct {
	QuestionID       string
	SelectedOptionID string
	IsCorrect        bool
	Duration         time.Duration
}

func (a *FillBlankAnswer) AnsweredQuestionID() string { return a.QuestionID }
func (a *FillBlankAnswer) AnswerArchetype() Archetype { return ArchetypeFillBlank }
func (a *FillBlankAnswer) TimeSpent() time.Duration   { return a.Duration }

// SentenceArrangementAnswer records the learner's token order. CorrectCount is
// the number of tokens placed at their original position; the answer is
// correct only when every token is in place.
type SentenceArrangementAnswer struct {
	QuestionID       string
	ArrangedTokenIDs []string
	CorrectCount     int
	TotalTokens      int
	IsCorrect        bool
	Duration         time.Duration
}

func (a *SentenceArrangementAnswer) AnsweredQuestionID() string { return a.QuestionID }
func (a *SentenceArrangementAnswer) AnswerArchetype() Archetype {
	return ArchetypeSentenceArrangement
}
func (a *SentenceArrangementAnswer) TimeSpent() time.Duration { return a.Duration }

// SentenceCompletionAnswer records the learner's typed word.
type SentenceCompletionAnswer struct {
	QuestionID string
	UserInput  string
	IsCorrect  bool
	Duration   time.Duration
}

func (a *SentenceCompletionAnswer) AnsweredQuestionID() string { return a.QuestionID }
func (a *SentenceCompletionAnswer) AnswerArchetype() Archetype {
	return ArchetypeSentenceCompletion
}
func (a *SentenceCompletionAnswer) TimeSpent() time.Duration { return a.Duration }
