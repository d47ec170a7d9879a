package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
	"github.com/hantubot/hantu-quiz-bot/internal/repository"
)

// WordStatsRepo is the persistence collaborator for cross-session word stats.
type WordStatsRepo interface {
	Get(ctx context.Context, wordID string) (*entities.GlobalWordStats, error)
	BulkUpsert(ctx context.Context, stats []*entities.GlobalWordStats) error
}

// HistoryRepo persists finished quiz results.
type HistoryRepo interface {
	Save(ctx context.Context, result *entities.QuizResult) error
}

// Scorer folds a finished session into the persistent per-word mastery
// scores and builds the session result.
type Scorer struct {
	statsRepo   WordStatsRepo
	historyRepo HistoryRepo
}

// NewScorer creates a Scorer over the two persistence collaborators.
func NewScorer(statsRepo WordStatsRepo, historyRepo HistoryRepo) *Scorer {
	return &Scorer{statsRepo: statsRepo, historyRepo: historyRepo}
}

// FinishQuiz computes the QuizResult for a session and persists both the
// updated word stats and the history record. For every word the session
// touched, correct answers are applied before incorrect ones, each at a
// sequentially incremented appearance offset — a word answered twice in one
// session is already marginally less "new" for its second answer.
//
// Persistence errors propagate to the caller; nothing is retried here.
func (s *Scorer) FinishQuiz(
	ctx context.Context,
	quiz *entities.Quiz,
	answers []entities.Answer,
	tracker *Tracker,
) (*entities.QuizResult, error) {
	now := time.Now()

	correctCount := 0
	timeTotals := make(map[entities.Archetype]time.Duration)
	timeCounts := make(map[entities.Archetype]int)

	for _, a := range answers {
		timeTotals[a.AnswerArchetype()] += a.TimeSpent()
		timeCounts[a.AnswerArchetype()]++

		switch answer := a.(type) {
		case *entities.MultipleChoiceAnswer:
			if answer.IsCorrect {
				correctCount++
			}
		case *entities.FillBlankAnswer:
			if answer.IsCorrect {
				correctCount++
			}
		case *entities.SentenceArrangementAnswer:
			// All tokens must be in place; partial orders score zero.
			if answer.IsCorrect {
				correctCount++
			}
		case *entities.SentenceCompletionAnswer:
			if answer.IsCorrect {
				correctCount++
			}
		case *entities.MatchingAnswer:
			correctCount += answer.CorrectCount
		}
	}

	averages := make(map[entities.Archetype]time.Duration, len(timeTotals))
	for archetype, total := range timeTotals {
		averages[archetype] = total / time.Duration(timeCounts[archetype])
	}

	records := tracker.Records()
	updated := make([]*entities.GlobalWordStats, 0, len(records))
	totalScore := 0.0

	for _, record := range records {
		if record.Appearances == 0 {
			continue
		}

		stats, err := s.statsRepo.Get(ctx, record.WordID)
		if err != nil {
			if !errors.Is(err, repository.ErrWordStatsNotFound) {
				return nil, fmt.Errorf("get word stats: %w", err)
			}
			stats = entities.NewGlobalWordStats(record.WordID, record.Word, record.Pinyin, record.Meanings)
		}

		points := 0.0
		for i := 0; i < record.CorrectAnswers; i++ {
			points += stats.Record(true)
		}
		for i := 0; i < record.IncorrectAnswers; i++ {
			points += stats.Record(false)
		}

		record.ProgressPoints = roundTenth(points)
		totalScore += points
		updated = append(updated, stats)
	}

	totalScore = entities.ClampProgressScore(roundTenth(totalScore))

	frequencyData := make([]*entities.FrequencyRecord, 0, len(records))
	for _, r := range records {
		if r.Appearances > 0 {
			frequencyData = append(frequencyData, r)
		}
	}
	sort.Slice(frequencyData, func(i, j int) bool {
		if frequencyData[i].ProgressPoints != frequencyData[j].ProgressPoints {
			return frequencyData[i].ProgressPoints > frequencyData[j].ProgressPoints
		}
		return frequencyData[i].IncorrectAnswers > frequencyData[j].IncorrectAnswers
	})

	totalUnits := quiz.TotalUnits()
	percentage := 0
	if totalUnits > 0 {
		percentage = int(math.Round(float64(correctCount) / float64(totalUnits) * 100))
	}

	result := &entities.QuizResult{
		QuizID:          quiz.ID,
		Date:            now,
		Length:          quiz.Length,
		TotalQuestions:  totalUnits,
		CorrectCount:    correctCount,
		IncorrectCount:  totalUnits - correctCount,
		TotalTime:       now.Sub(quiz.StartedAt),
		AverageTimes:    averages,
		FrequencyData:   frequencyData,
		Answers:         answers,
		ProgressScore:   totalScore,
		PercentageScore: percentage,
	}

	if err := s.statsRepo.BulkUpsert(ctx, updated); err != nil {
		return nil, fmt.Errorf("persist word stats: %w", err)
	}
	if err := s.historyRepo.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("persist quiz result: %w", err)
	}

	return result, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
