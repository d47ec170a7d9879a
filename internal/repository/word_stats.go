package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
	"github.com/hantubot/hantu-quiz-bot/internal/infra/postgres"
)

var ErrWordStatsNotFound = errors.New("word stats not found")

// WordStatsRepository stores the persistent per-word mastery scores.
type WordStatsRepository struct {
	db postgres.DBTX
}

// NewWordStatsRepository creates a WordStatsRepository over the given pool.
func NewWordStatsRepository(db postgres.DBTX) *WordStatsRepository {
	return &WordStatsRepository{db: db}
}

const upsertWordStatsQuery = `
	INSERT INTO global_word_stats (
		word_id, word, pinyin, meanings,
		total_appearances, total_correct, total_incorrect, progress_score
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (word_id) DO UPDATE SET
		total_appearances = EXCLUDED.total_appearances,
		total_correct = EXCLUDED.total_correct,
		total_incorrect = EXCLUDED.total_incorrect,
		progress_score = EXCLUDED.progress_score
`

// Get retrieves the stats record for one word.
func (r *WordStatsRepository) Get(ctx context.Context, wordID string) (*entities.GlobalWordStats, error) {
	query := `
		SELECT word_id, word, pinyin, meanings,
		       total_appearances, total_correct, total_incorrect, progress_score
		FROM global_word_stats
		WHERE word_id = $1
	`

	var stats entities.GlobalWordStats
	err := r.db.QueryRow(ctx, query, wordID).Scan(
		&stats.WordID,
		&stats.Word,
		&stats.Pinyin,
		&stats.Meanings,
		&stats.TotalAppearances,
		&stats.TotalCorrect,
		&stats.TotalIncorrect,
		&stats.ProgressScore,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWordStatsNotFound
		}
		return nil, fmt.Errorf("get word stats: %w", err)
	}

	return &stats, nil
}

// Upsert writes one stats record.
func (r *WordStatsRepository) Upsert(ctx context.Context, stats *entities.GlobalWordStats) error {
	_, err := r.db.Exec(ctx, upsertWordStatsQuery,
		stats.WordID,
		stats.Word,
		stats.Pinyin,
		stats.Meanings,
		stats.TotalAppearances,
		stats.TotalCorrect,
		stats.TotalIncorrect,
		stats.ProgressScore,
	)
	if err != nil {
		return fmt.Errorf("upsert word stats: %w", err)
	}
	return nil
}

// BulkUpsert writes all records in one round trip.
func (r *WordStatsRepository) BulkUpsert(ctx context.Context, stats []*entities.GlobalWordStats) error {
	if len(stats) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, s := range stats {
		batch.Queue(upsertWordStatsQuery,
			s.WordID,
			s.Word,
			s.Pinyin,
			s.Meanings,
			s.TotalAppearances,
			s.TotalCorrect,
			s.TotalIncorrect,
			s.ProgressScore,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range stats {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("bulk upsert word stats: %w", err)
		}
	}
	return nil
}

// GetAll returns every stored stats record.
func (r *WordStatsRepository) GetAll(ctx context.Context) ([]*entities.GlobalWordStats, error) {
	query := `
		SELECT word_id, word, pinyin, meanings,
		       total_appearances, total_correct, total_incorrect, progress_score
		FROM global_word_stats
		ORDER BY progress_score DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query word stats: %w", err)
	}
	defer rows.Close()

	var out []*entities.GlobalWordStats
	for rows.Next() {
		var stats entities.GlobalWordStats
		if err := rows.Scan(
			&stats.WordID,
			&stats.Word,
			&stats.Pinyin,
			&stats.Meanings,
			&stats.TotalAppearances,
			&stats.TotalCorrect,
			&stats.TotalIncorrect,
			&stats.ProgressScore,
		); err != nil {
			return nil, fmt.Errorf("scan word stats: %w", err)
		}
		out = append(out, &stats)
	}

	return out, rows.Err()
}
