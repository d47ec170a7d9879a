package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
	"github.com/hantubot/hantu-quiz-bot/internal/repository"
)

type fakeStatsRepo struct {
	stats    map[string]*entities.GlobalWordStats
	upserted []*entities.GlobalWordStats
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{stats: make(map[string]*entities.GlobalWordStats)}
}

func (f *fakeStatsRepo) Get(_ context.Context, wordID string) (*entities.GlobalWordStats, error) {
	s, ok := f.stats[wordID]
	if !ok {
		return nil, repository.ErrWordStatsNotFound
	}
	return s, nil
}

func (f *fakeStatsRepo) BulkUpsert(_ context.Context, stats []*entities.GlobalWordStats) error {
	for _, s := range stats {
		f.stats[s.WordID] = s
	}
	f.upserted = stats
	return nil
}

type fakeHistoryRepo struct {
	saved []*entities.QuizResult
}

func (f *fakeHistoryRepo) Save(_ context.Context, result *entities.QuizResult) error {
	f.saved = append(f.saved, result)
	return nil
}

// twoAnswerQuiz builds a quiz asking about the same entry twice, with one
// correct and one incorrect answer.
func twoAnswerQuiz(entry *entities.VocabularyEntry) (*entities.Quiz, []entities.Answer) {
	q1 := &entities.MultipleChoiceQuestion{ID: "q1", CorrectAnswer: entry}
	q2 := &entities.MultipleChoiceQuestion{ID: "q2", CorrectAnswer: entry}

	quiz := &entities.Quiz{
		ID:        "quiz1",
		Length:    entities.LengthShort,
		Questions: []entities.Question{q1, q2},
		StartedAt: time.Now().Add(-time.Minute),
	}
	answers := []entities.Answer{
		&entities.MultipleChoiceAnswer{QuestionID: "q1", IsCorrect: true, Duration: 2 * time.Second},
		&entities.MultipleChoiceAnswer{QuestionID: "q2", IsCorrect: false, Duration: 4 * time.Second},
	}
	return quiz, answers
}

func TestScorerFinishQuiz(t *testing.T) {
	entry := testEntry(0)
	quiz, answers := twoAnswerQuiz(entry)

	tracker := NewTracker(quiz, []*entities.VocabularyEntry{entry})
	for i, a := range answers {
		tracker = tracker.Apply(quiz.Questions[i], a)
	}

	statsRepo := newFakeStatsRepo()
	historyRepo := &fakeHistoryRepo{}
	scorer := NewScorer(statsRepo, historyRepo)

	result, err := scorer.FinishQuiz(context.Background(), quiz, answers, tracker)
	if err != nil {
		t.Fatalf("FinishQuiz: %v", err)
	}

	// First answer on a fresh word is worth +10.0; the second sees one prior
	// appearance and costs -9.8, so the session nets +0.2.
	if result.ProgressScore != 0.2 {
		t.Errorf("ProgressScore = %v, want 0.2", result.ProgressScore)
	}
	if result.CorrectCount != 1 || result.TotalQuestions != 2 {
		t.Errorf("correct %d/%d, want 1/2", result.CorrectCount, result.TotalQuestions)
	}
	if result.PercentageScore != 50 {
		t.Errorf("PercentageScore = %d, want 50", result.PercentageScore)
	}
	if avg := result.AverageTimes[entities.ArchetypeMultipleChoice]; avg != 3*time.Second {
		t.Errorf("average time = %v, want 3s", avg)
	}

	stats := statsRepo.stats[entry.ID]
	if stats == nil {
		t.Fatal("word stats were not persisted")
	}
	if stats.TotalAppearances != 2 || stats.TotalCorrect != 1 || stats.TotalIncorrect != 1 {
		t.Errorf("stats counters %d/%d/%d, want 2/1/1",
			stats.TotalAppearances, stats.TotalCorrect, stats.TotalIncorrect)
	}
	if math.Abs(stats.ProgressScore-0.2) > 1e-9 {
		t.Errorf("persisted ProgressScore = %v, want 0.2", stats.ProgressScore)
	}

	if len(historyRepo.saved) != 1 {
		t.Fatalf("saved %d history entries, want 1", len(historyRepo.saved))
	}
	if len(result.FrequencyData) != 1 {
		t.Fatalf("got %d frequency records, want 1", len(result.FrequencyData))
	}
	if result.FrequencyData[0].ProgressPoints != 0.2 {
		t.Errorf("frequency ProgressPoints = %v, want 0.2", result.FrequencyData[0].ProgressPoints)
	}
}

func TestScorerFinishQuizSeasonedWord(t *testing.T) {
	entry := testEntry(1)
	q := &entities.MultipleChoiceQuestion{ID: "q1", CorrectAnswer: entry}
	quiz := &entities.Quiz{
		ID:        "quiz1",
		Length:    entities.LengthShort,
		Questions: []entities.Question{q},
		StartedAt: time.Now(),
	}
	answers := []entities.Answer{
		&entities.MultipleChoiceAnswer{QuestionID: "q1", IsCorrect: true, Duration: time.Second},
	}

	tracker := NewTracker(quiz, []*entities.VocabularyEntry{entry}).Apply(q, answers[0])

	statsRepo := newFakeStatsRepo()
	seasoned := entities.NewGlobalWordStats(entry.ID, entry.Word, entry.Pinyin, entry.Meanings)
	seasoned.TotalAppearances = 50
	statsRepo.stats[entry.ID] = seasoned

	scorer := NewScorer(statsRepo, &fakeHistoryRepo{})
	result, err := scorer.FinishQuiz(context.Background(), quiz, answers, tracker)
	if err != nil {
		t.Fatalf("FinishQuiz: %v", err)
	}

	// At 50 prior appearances the weight floors at 0.2, worth 2 points.
	if result.ProgressScore != 2.0 {
		t.Errorf("ProgressScore = %v, want 2.0", result.ProgressScore)
	}
}
