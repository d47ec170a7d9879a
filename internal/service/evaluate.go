package service

import (
	"strings"
	"time"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// Answer evaluation lives here so the rendering layer only reports what the
// learner did; correctness is always derived from the question itself.

// EvaluateMultipleChoice builds the answer for a selected option ID.
func EvaluateMultipleChoice(
	q *entities.MultipleChoiceQuestion,
	selectedOptionID string,
	spent time.Duration,
) *entities.MultipleChoiceAnswer {
	return &entities.MultipleChoiceAnswer{
		QuestionID:       q.ID,
		SelectedOptionID: selectedOptionID,
		IsCorrect:        optionIsCorrect(q.Options, selectedOptionID),
		Duration:         spent,
	}
}

// EvaluateFillBlank builds the answer for a selected option ID.
func EvaluateFillBlank(
	q *entities.FillBlankQuestion,
	selectedOptionID string,
	spent time.Duration,
) *entities.FillBlankAnswer {
	return &entities.FillBlankAnswer{
		QuestionID:       q.ID,
		SelectedOptionID: selectedOptionID,
		IsCorrect:        optionIsCorrect(q.Options, selectedOptionID),
		Duration:         spent,
	}
}

// MatchingPlacement is the learner's chosen pinyin and meaning for one word.
type MatchingPlacement struct {
	Word    string
	Pinyin  string
	Meaning string
}

// EvaluateMatching scores each item by comparing its expected pinyin and
// meaning against the learner's placement for that word. Items with no
// placement count as incorrect.
func EvaluateMatching(
	q *entities.MatchingQuestion,
	placements []MatchingPlacement,
	spent time.Duration,
) *entities.MatchingAnswer {
	byWord := make(map[string]MatchingPlacement, len(placements))
	for _, p := range placements {
		byWord[p.Word] = p
	}

	connections := make([]entities.MatchingConnection, 0, len(q.Items))
	correct := 0
	for _, item := range q.Items {
		p, ok := byWord[item.Word]
		conn := entities.MatchingConnection{
			Word:    item.Word,
			Pinyin:  p.Pinyin,
			Meaning: p.Meaning,
		}
		if ok && p.Pinyin == item.Pinyin && p.Meaning == item.Meaning {
			conn.IsCorrect = true
			correct++
		}
		connections = append(connections, conn)
	}

	return &entities.MatchingAnswer{
		QuestionID:   q.ID,
		Connections:  connections,
		CorrectCount: correct,
		Duration:     spent,
	}
}

// EvaluateSentenceArrangement scores the learner's token order: a token is
// correct when its index in the submitted order equals its recorded original
// position. The answer is correct only when every token is in place.
func EvaluateSentenceArrangement(
	q *entities.SentenceArrangementQuestion,
	arrangedTokenIDs []string,
	spent time.Duration,
) *entities.SentenceArrangementAnswer {
	positions := make(map[string]int, len(q.Tokens))
	for _, tok := range q.Tokens {
		positions[tok.ID] = tok.Position
	}

	correct := 0
	for i, id := range arrangedTokenIDs {
		if pos, ok := positions[id]; ok && pos == i {
			correct++
		}
	}

	total := len(q.Tokens)
	return &entities.SentenceArrangementAnswer{
		QuestionID:       q.ID,
		ArrangedTokenIDs: append([]string(nil), arrangedTokenIDs...),
		CorrectCount:     correct,
		TotalTokens:      total,
		IsCorrect:        len(arrangedTokenIDs) == total && correct == total,
		Duration:         spent,
	}
}

// EvaluateSentenceCompletion compares the typed word against the blanked one,
// ignoring surrounding whitespace.
func EvaluateSentenceCompletion(
	q *entities.SentenceCompletionQuestion,
	input string,
	spent time.Duration,
) *entities.SentenceCompletionAnswer {
	return &entities.SentenceCompletionAnswer{
		QuestionID: q.ID,
		UserInput:  input,
		IsCorrect:  strings.TrimSpace(input) == q.BlankWord,
		Duration:   spent,
	}
}

func optionIsCorrect(options []entities.Option, selectedID string) bool {
	for _, o := range options {
		if o.ID == selectedID {
			return o.IsCorrect
		}
	}
	return false
}
