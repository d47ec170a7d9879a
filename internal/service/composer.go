package service

import (
	"math/rand"
	"time"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// mcAttemptFactor bounds the multiple-choice retry loop at factor × target.
const mcAttemptFactor = 3

// Composer assembles full quizzes out of the per-archetype generators. It is
// synchronous and side-effect free: feeding it the same corpus and a seeded
// rng reproduces the same quiz.
type Composer struct {
	cfg QuizConfig
	gen *Generator
	rng *rand.Rand
}

// NewComposer creates a Composer. A nil rng falls back to a time-seeded source.
func NewComposer(cfg QuizConfig, rng *rand.Rand) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Composer{cfg: cfg, gen: NewGenerator(cfg, rng), rng: rng}
}

// ComposeQuiz builds a quiz of the given length preset. When archetype is
// non-empty every question uses that single archetype; otherwise counts are
// distributed across all archetypes by weight.
//
// A generator returning nil is not an error: the composer retries the slot
// once against the unrestricted corpus and otherwise drops it, so the
// resulting quiz may hold fewer questions than requested. Callers that need
// an exact count must validate corpus size up front.
func (c *Composer) ComposeQuiz(
	corpus []*entities.VocabularyEntry,
	length entities.QuizLength,
	archetype entities.Archetype,
) *entities.Quiz {
	count := c.cfg.Lengths[length]
	if count > len(corpus) {
		count = len(corpus)
	}

	counts := c.archetypeCounts(count, archetype)
	pools := splitByLevel(corpus)

	used := make(map[string]struct{})
	questions := make([]entities.Question, 0, count)

	for _, a := range entities.Archetypes {
		n := counts[a]
		if n == 0 {
			continue
		}
		if a == entities.ArchetypeMultipleChoice {
			questions = c.appendMultipleChoice(questions, corpus, pools, used, n)
			continue
		}
		for i := 0; i < n; i++ {
			q := c.generateOne(a, corpus, pools, used)
			if q == nil {
				continue
			}
			questions = append(questions, q)
			markUsed(used, q)
		}
	}

	c.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return &entities.Quiz{
		ID:        newQuestionID(),
		Length:    length,
		Questions: questions,
		StartedAt: time.Now(),
	}
}

// archetypeCounts distributes the question count across archetypes. Every
// archetype is guaranteed one question when the count allows it; the
// remainder is apportioned by weight with integer division, and the rounding
// leftover lands on fill-blank. The counts always sum to the requested total.
func (c *Composer) archetypeCounts(count int, only entities.Archetype) map[entities.Archetype]int {
	counts := make(map[entities.Archetype]int, len(entities.Archetypes))
	if only != "" {
		counts[only] = count
		return counts
	}

	if count < len(entities.Archetypes) {
		for _, a := range entities.Archetypes[:count] {
			counts[a] = 1
		}
		return counts
	}

	totalWeight := 0
	for _, a := range entities.Archetypes {
		counts[a] = 1
		totalWeight += c.cfg.ArchetypeWeights[a]
	}

	remaining := count - len(entities.Archetypes)
	if remaining == 0 || totalWeight <= 0 {
		counts[entities.ArchetypeFillBlank] += remaining
		return counts
	}

	assigned := 0
	for _, a := range entities.Archetypes {
		extra := remaining * c.cfg.ArchetypeWeights[a] / totalWeight
		counts[a] += extra
		assigned += extra
	}
	// Rounding leftover goes to fill-blank, not to the largest remainder.
	counts[entities.ArchetypeFillBlank] += remaining - assigned

	return counts
}

// generateOne produces one question of the archetype, drawing the candidate
// pool from a weighted HSK level and falling back to the full corpus when the
// level pool is structurally too small or generation fails on it.
func (c *Composer) generateOne(
	archetype entities.Archetype,
	corpus []*entities.VocabularyEntry,
	pools map[int][]*entities.VocabularyEntry,
	used map[string]struct{},
) entities.Question {
	pool := c.levelPool(corpus, pools, archetype)

	if q := c.generate(archetype, pool, used); q != nil {
		return q
	}
	return c.generate(archetype, corpus, used)
}

// appendMultipleChoice fills the multiple-choice quota. Entries may repeat
// across multiple-choice questions within one quiz, so the loop is bounded by
// attempts rather than pool size.
func (c *Composer) appendMultipleChoice(
	questions []entities.Question,
	corpus []*entities.VocabularyEntry,
	pools map[int][]*entities.VocabularyEntry,
	used map[string]struct{},
	target int,
) []entities.Question {
	generated := 0
	for attempts := 0; generated < target && attempts < target*mcAttemptFactor; attempts++ {
		pool := c.levelPool(corpus, pools, entities.ArchetypeMultipleChoice)
		none := map[string]struct{}{}

		q := c.gen.GenerateMultipleChoice(pool, none)
		if q == nil {
			q = c.gen.GenerateMultipleChoice(corpus, none)
		}
		if q == nil {
			continue
		}
		questions = append(questions, q)
		markUsed(used, q)
		generated++
	}
	return questions
}

func (c *Composer) generate(
	archetype entities.Archetype,
	pool []*entities.VocabularyEntry,
	used map[string]struct{},
) entities.Question {
	switch archetype {
	case entities.ArchetypeMultipleChoice:
		if q := c.gen.GenerateMultipleChoice(pool, used); q != nil {
			return q
		}
	case entities.ArchetypeMatching:
		if q := c.gen.GenerateMatching(pool, used); q != nil {
			return q
		}
	case entities.ArchetypeFillBlank:
		if q := c.gen.GenerateFillBlank(pool, used); q != nil {
			return q
		}
	case entities.ArchetypeSentenceArrangement:
		if q := c.gen.GenerateSentenceArrangement(pool, used); q != nil {
			return q
		}
	case entities.ArchetypeSentenceCompletion:
		if q := c.gen.GenerateSentenceCompletion(pool, used); q != nil {
			return q
		}
	}
	return nil
}

// levelPool draws an HSK level from the cumulative weight distribution and
// returns that level's pool, or the full corpus when the corpus carries no
// level tags or the drawn pool is below the archetype's structural minimum.
func (c *Composer) levelPool(
	corpus []*entities.VocabularyEntry,
	pools map[int][]*entities.VocabularyEntry,
	archetype entities.Archetype,
) []*entities.VocabularyEntry {
	if len(pools) == 0 {
		return corpus
	}

	pool := pools[c.drawLevel()]
	if len(pool) < c.structuralMinimum(archetype) {
		return corpus
	}
	return pool
}

// drawLevel locates a uniform draw in [0, totalWeight) within the cumulative
// weight buckets.
func (c *Composer) drawLevel() int {
	w := c.cfg.HSKWeights
	total := w.Total()
	if total <= 0 {
		return entities.HSKLevel1
	}

	r := c.rng.Float64() * float64(total)
	switch {
	case r < float64(w.HSK1):
		return entities.HSKLevel1
	case r < float64(w.HSK1+w.HSK2):
		return entities.HSKLevel2
	default:
		return entities.HSKLevel3
	}
}

// structuralMinimum is the smallest pool an archetype can possibly generate from.
func (c *Composer) structuralMinimum(archetype entities.Archetype) int {
	switch archetype {
	case entities.ArchetypeMultipleChoice:
		return c.cfg.OptionCount
	case entities.ArchetypeMatching:
		return c.cfg.MatchingMinItems
	default:
		return 1
	}
}

// splitByLevel groups tagged entries by HSK level. An empty map means the
// corpus carries no level tags at all.
func splitByLevel(corpus []*entities.VocabularyEntry) map[int][]*entities.VocabularyEntry {
	pools := make(map[int][]*entities.VocabularyEntry)
	for _, e := range corpus {
		if e.HSKLevel == 0 {
			continue
		}
		pools[e.HSKLevel] = append(pools[e.HSKLevel], e)
	}
	return pools
}

func markUsed(used map[string]struct{}, q entities.Question) {
	for _, id := range q.VocabularyIDs() {
		used[id] = struct{}{}
	}
}
