package entities

import "math"

const (
	// basePoints is the maximum reward for answering a brand-new word.
	basePoints = 10.0
	// decayAppearances is the appearance count at which the weight bottoms out.
	decayAppearances = 50.0
	// minWeight keeps very familiar words worth ±2 points instead of zero.
	minWeight = 0.2

	maxProgressScore = 100.0
	minProgressScore = -100.0
)

// ProgressPoints is the decaying-weight formula of the progress scorer.
// A word seen `appearances` times before is worth
// round1(10 * max(0.2, 1 - appearances/50)) points, negative when the answer
// was wrong. New words reward up to 10 points; words seen 50+ times floor at
// ±2, so mistakes on well-known words keep stinging relative to their reward.
func ProgressPoints(appearances int, correct bool) float64 {
	weight := math.Max(minWeight, 1-float64(appearances)/decayAppearances)
	points := math.Round(basePoints*weight*10) / 10
	if !correct {
		return -points
	}
	return points
}

// ClampProgressScore bounds a progress score to [-100, 100].
func ClampProgressScore(score float64) float64 {
	return math.Max(minProgressScore, math.Min(maxProgressScore, score))
}

// GlobalWordStats is the persistent cross-session mastery record of one word.
// Invariant: ProgressScore stays within [-100, 100]; Record clamps on every
// update.
type GlobalWordStats struct {
	WordID           string
	Word             string
	Pinyin           string
	Meanings         []string
	TotalAppearances int
	TotalCorrect     int
	TotalIncorrect   int
	ProgressScore    float64
}

// NewGlobalWordStats creates a zeroed stats record for an unseen word.
func NewGlobalWordStats(wordID, word, pinyin string, meanings []string) *GlobalWordStats {
	return &GlobalWordStats{
		WordID:   wordID,
		Word:     word,
		Pinyin:   pinyin,
		Meanings: append([]string(nil), meanings...),
	}
}

// Record applies one answer to the stats and returns the point delta. Points
// are computed against the appearance count before the answer, so applying a
// session's answers one by one yields the sequential appearance offsets the
// scorer requires.
func (s *GlobalWordStats) Record(correct bool) float64 {
	points := ProgressPoints(s.TotalAppearances, correct)
	s.TotalAppearances++
	if correct {
		s.TotalCorrect++
	} else {
		s.TotalIncorrect++
	}
	s.ProgressScore = ClampProgressScore(s.ProgressScore + points)
	return points
}
