package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
	"github.com/hantubot/hantu-quiz-bot/internal/infra/postgres"
)

// QuizHistoryRepository stores finished quiz results.
type QuizHistoryRepository struct {
	db postgres.DBTX
}

// NewQuizHistoryRepository creates a QuizHistoryRepository over the given pool.
func NewQuizHistoryRepository(db postgres.DBTX) *QuizHistoryRepository {
	return &QuizHistoryRepository{db: db}
}

// HistoryEntry is one row of the quiz history listing.
type HistoryEntry struct {
	ID              int64
	QuizID          string
	FinishedAt      time.Time
	Length          entities.QuizLength
	TotalQuestions  int
	CorrectCount    int
	IncorrectCount  int
	Duration        time.Duration
	ProgressScore   float64
	PercentageScore int
}

// Save persists one finished quiz result. The frequency data travels as JSON;
// it is displayed, never queried field by field.
func (r *QuizHistoryRepository) Save(ctx context.Context, result *entities.QuizResult) error {
	frequency, err := json.Marshal(result.FrequencyData)
	if err != nil {
		return fmt.Errorf("marshal frequency data: %w", err)
	}

	query := `
		INSERT INTO quiz_history (
			quiz_id, finished_at, quiz_length, total_questions,
			correct_count, incorrect_count, duration_ms,
			progress_score, percentage_score, frequency_data
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.db.Exec(ctx, query,
		result.QuizID,
		result.Date,
		string(result.Length),
		result.TotalQuestions,
		result.CorrectCount,
		result.IncorrectCount,
		result.TotalTime.Milliseconds(),
		result.ProgressScore,
		result.PercentageScore,
		frequency,
	)
	if err != nil {
		return fmt.Errorf("save quiz history: %w", err)
	}
	return nil
}

// List returns the most recent history entries, newest first.
func (r *QuizHistoryRepository) List(ctx context.Context, limit int) ([]*HistoryEntry, error) {
	query := `
		SELECT id, quiz_id, finished_at, quiz_length, total_questions,
		       correct_count, incorrect_count, duration_ms,
		       progress_score, percentage_score
		FROM quiz_history
		ORDER BY finished_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query quiz history: %w", err)
	}
	defer rows.Close()

	var out []*HistoryEntry
	for rows.Next() {
		var (
			entry      HistoryEntry
			length     string
			durationMS int64
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.QuizID,
			&entry.FinishedAt,
			&length,
			&entry.TotalQuestions,
			&entry.CorrectCount,
			&entry.IncorrectCount,
			&durationMS,
			&entry.ProgressScore,
			&entry.PercentageScore,
		); err != nil {
			return nil, fmt.Errorf("scan quiz history: %w", err)
		}
		entry.Length = entities.QuizLength(length)
		entry.Duration = time.Duration(durationMS) * time.Millisecond
		out = append(out, &entry)
	}

	return out, rows.Err()
}
