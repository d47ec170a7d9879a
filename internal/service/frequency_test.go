package service

import (
	"testing"
	"time"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

func trackerFixture() (*entities.Quiz, []*entities.VocabularyEntry) {
	corpus := testCorpus(5)

	mc := &entities.MultipleChoiceQuestion{
		ID:            "mc1",
		CorrectAnswer: corpus[0],
	}
	matching := &entities.MatchingQuestion{
		ID: "m1",
		Items: []entities.MatchingItem{
			{ID: corpus[1].ID, Word: corpus[1].Word, Pinyin: corpus[1].Pinyin, Meaning: corpus[1].Meaning()},
			{ID: corpus[2].ID, Word: corpus[2].Word, Pinyin: corpus[2].Pinyin, Meaning: corpus[2].Meaning()},
			{ID: corpus[3].ID, Word: corpus[3].Word, Pinyin: corpus[3].Pinyin, Meaning: corpus[3].Meaning()},
		},
	}

	quiz := &entities.Quiz{
		ID:        "quiz1",
		Length:    entities.LengthShort,
		Questions: []entities.Question{mc, matching},
		StartedAt: time.Now(),
	}
	return quiz, corpus
}

func TestNewTracker(t *testing.T) {
	quiz, corpus := trackerFixture()
	tracker := NewTracker(quiz, corpus)

	if tracker.Len() != 4 {
		t.Fatalf("tracked %d words, want 4", tracker.Len())
	}
	r := tracker.Record(corpus[0].ID)
	if r == nil {
		t.Fatal("no record for the multiple-choice entry")
	}
	if r.Appearances != 0 || r.Word != corpus[0].Word || r.Pinyin != corpus[0].Pinyin {
		t.Errorf("unexpected zero record: %+v", r)
	}
	if tracker.Record(corpus[4].ID) != nil {
		t.Error("tracked an entry no question references")
	}
}

func TestTrackerApply(t *testing.T) {
	quiz, corpus := trackerFixture()
	tracker := NewTracker(quiz, corpus)

	mc := quiz.Questions[0].(*entities.MultipleChoiceQuestion)
	next := tracker.Apply(mc, &entities.MultipleChoiceAnswer{
		QuestionID: mc.ID,
		IsCorrect:  true,
	})

	if r := tracker.Record(corpus[0].ID); r.Appearances != 0 {
		t.Error("Apply mutated the original snapshot")
	}
	r := next.Record(corpus[0].ID)
	if r.Appearances != 1 || r.CorrectAnswers != 1 || r.Accuracy != 100 {
		t.Errorf("unexpected record after correct answer: %+v", r)
	}
}

func TestTrackerApplyMatching(t *testing.T) {
	quiz, corpus := trackerFixture()
	tracker := NewTracker(quiz, corpus)

	matching := quiz.Questions[1].(*entities.MatchingQuestion)
	answer := &entities.MatchingAnswer{
		QuestionID: matching.ID,
		Connections: []entities.MatchingConnection{
			{Word: corpus[1].Word, IsCorrect: true},
			{Word: corpus[2].Word, IsCorrect: false},
			{Word: corpus[3].Word, IsCorrect: true},
		},
		CorrectCount: 2,
	}

	next := tracker.Apply(matching, answer)

	for i, wantCorrect := range map[int]bool{1: true, 2: false, 3: true} {
		r := next.Record(corpus[i].ID)
		if r.Appearances != 1 {
			t.Errorf("item %d: appearances %d, want 1", i, r.Appearances)
		}
		if (r.CorrectAnswers == 1) != wantCorrect {
			t.Errorf("item %d: correct=%d, want correct=%v", i, r.CorrectAnswers, wantCorrect)
		}
		if got := r.CorrectAnswers + r.IncorrectAnswers; got != r.Appearances {
			t.Errorf("item %d: correct+incorrect=%d != appearances=%d", i, got, r.Appearances)
		}
	}
}
