package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS global_word_stats (
		word_id           TEXT PRIMARY KEY,
		word              TEXT NOT NULL,
		pinyin            TEXT NOT NULL,
		meanings          TEXT[] NOT NULL DEFAULT '{}',
		total_appearances INT NOT NULL DEFAULT 0,
		total_correct     INT NOT NULL DEFAULT 0,
		total_incorrect   INT NOT NULL DEFAULT 0,
		progress_score    DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS quiz_history (
		id               BIGSERIAL PRIMARY KEY,
		quiz_id          TEXT NOT NULL,
		finished_at      TIMESTAMPTZ NOT NULL,
		quiz_length      TEXT NOT NULL,
		total_questions  INT NOT NULL,
		correct_count    INT NOT NULL,
		incorrect_count  INT NOT NULL,
		duration_ms      BIGINT NOT NULL,
		progress_score   DOUBLE PRECISION NOT NULL,
		percentage_score INT NOT NULL,
		frequency_data   JSONB NOT NULL DEFAULT '[]'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_quiz_history_finished_at ON quiz_history (finished_at DESC)`,
}

// Migrate creates the bot's tables if they do not exist yet.
func Migrate(ctx context.Context, db DBTX) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
