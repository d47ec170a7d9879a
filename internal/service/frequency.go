package service

import (
	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// Tracker holds the session-scoped frequency records, one per vocabulary
// entry referenced by the quiz. A Tracker is an immutable snapshot: Apply
// returns a new Tracker and never mutates the receiver, so session state can
// be reduced and tested as pure values.
type Tracker struct {
	records map[string]*entities.FrequencyRecord
}

// NewTracker creates zeroed records for every vocabulary ID appearing in any
// quiz question. Matching questions contribute one record per item.
func NewTracker(quiz *entities.Quiz, corpus []*entities.VocabularyEntry) *Tracker {
	byID := make(map[string]*entities.VocabularyEntry, len(corpus))
	for _, e := range corpus {
		byID[e.ID] = e
	}

	records := make(map[string]*entities.FrequencyRecord)
	for _, q := range quiz.Questions {
		for _, id := range q.VocabularyIDs() {
			if _, ok := records[id]; ok {
				continue
			}
			entry, ok := byID[id]
			if !ok {
				continue
			}
			records[id] = &entities.FrequencyRecord{
				WordID:   id,
				Word:     entry.Word,
				Pinyin:   entry.Pinyin,
				Meanings: append([]string(nil), entry.Meanings...),
			}
		}
	}

	return &Tracker{records: records}
}

// Apply folds one submitted answer into a new snapshot. Single-entry
// archetypes touch exactly the question's entry; matching touches every item,
// scoring each by the learner's connection for that word.
func (t *Tracker) Apply(q entities.Question, a entities.Answer) *Tracker {
	next := t.clone()

	switch question := q.(type) {
	case *entities.MultipleChoiceQuestion:
		if answer, ok := a.(*entities.MultipleChoiceAnswer); ok {
			next.touch(question.CorrectAnswer.ID, answer.IsCorrect)
		}
	case *entities.FillBlankQuestion:
		if answer, ok := a.(*entities.FillBlankAnswer); ok {
			next.touch(question.CorrectAnswer.ID, answer.IsCorrect)
		}
	case *entities.SentenceArrangementQuestion:
		if answer, ok := a.(*entities.SentenceArrangementAnswer); ok {
			next.touch(question.Entry.ID, answer.IsCorrect)
		}
	case *entities.SentenceCompletionQuestion:
		if answer, ok := a.(*entities.SentenceCompletionAnswer); ok {
			next.touch(question.Entry.ID, answer.IsCorrect)
		}
	case *entities.MatchingQuestion:
		answer, ok := a.(*entities.MatchingAnswer)
		if !ok {
			break
		}
		correctByWord := make(map[string]bool, len(answer.Connections))
		for _, conn := range answer.Connections {
			correctByWord[conn.Word] = conn.IsCorrect
		}
		for _, item := range question.Items {
			next.touch(item.ID, correctByWord[item.Word])
		}
	}

	return next
}

// Record returns the snapshot's record for a word, or nil.
func (t *Tracker) Record(wordID string) *entities.FrequencyRecord {
	return t.records[wordID]
}

// Records returns all records of the snapshot.
func (t *Tracker) Records() []*entities.FrequencyRecord {
	out := make([]*entities.FrequencyRecord, 0, len(t.records))
	for _, r := range t.records {
		out = append(out, r)
	}
	return out
}

// Len reports the number of tracked words.
func (t *Tracker) Len() int { return len(t.records) }

func (t *Tracker) clone() *Tracker {
	records := make(map[string]*entities.FrequencyRecord, len(t.records))
	for id, r := range t.records {
		records[id] = r.Clone()
	}
	return &Tracker{records: records}
}

func (t *Tracker) touch(wordID string, correct bool) {
	if r, ok := t.records[wordID]; ok {
		r.Touch(correct)
	}
}
