package service

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// CorpusSource loads the vocabulary corpus from its backing store.
type CorpusSource interface {
	Load(ctx context.Context) ([]*entities.VocabularyEntry, error)
}

// CorpusService caches the loaded corpus and coalesces concurrent loads:
// callers arriving while a load is in flight share its outcome instead of
// triggering duplicate reads. The cache holds until Invalidate or Reload.
type CorpusService struct {
	source CorpusSource
	logger *zap.Logger

	group singleflight.Group

	mu     sync.RWMutex
	cached []*entities.VocabularyEntry
}

// NewCorpusService creates a CorpusService over the given source.
func NewCorpusService(source CorpusSource, logger *zap.Logger) *CorpusService {
	return &CorpusService{source: source, logger: logger}
}

// Entries returns the corpus, loading it on first use. Load failures are not
// cached; the next call retries.
func (s *CorpusService) Entries(ctx context.Context) ([]*entities.VocabularyEntry, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := s.group.Do("corpus", func() (interface{}, error) {
		entries, err := s.source.Load(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.cached = entries
		s.mu.Unlock()

		s.logger.Info("corpus loaded", zap.Int("entries", len(entries)))
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*entities.VocabularyEntry), nil
}

// Invalidate drops the cached corpus; the next Entries call reloads.
func (s *CorpusService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// Reload bypasses the cache and loads the corpus anew.
func (s *CorpusService) Reload(ctx context.Context) ([]*entities.VocabularyEntry, error) {
	s.Invalidate()
	return s.Entries(ctx)
}
