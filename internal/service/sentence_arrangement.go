package service

import (
	"unicode/utf8"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// minArrangementSentenceLen is the minimum example length (in characters) for
// a sentence to be worth arranging.
const minArrangementSentenceLen = 4

// GenerateSentenceArrangement builds one sentence-arrangement question.
// Candidates need an example sentence with its pinyin transcription. The
// generator tries candidates in random order until one segments into a token
// count within the configured range; if none does, it keeps the first
// candidate's segmentation anyway, splitting character by character as a last
// resort when even that yields too few tokens.
func (g *Generator) GenerateSentenceArrangement(
	pool []*entities.VocabularyEntry,
	used map[string]struct{},
) *entities.SentenceArrangementQuestion {
	candidates := make([]*entities.VocabularyEntry, 0, len(pool))
	for _, e := range filterUnused(pool, used) {
		if e.Example == "" || e.ExamplePinyin == "" {
			continue
		}
		if utf8.RuneCountInString(e.Example) < minArrangementSentenceLen {
			continue
		}
		candidates = append(candidates, e)
	}
	if len(candidates) == 0 {
		return nil
	}

	candidates = g.shuffledEntries(candidates)

	var (
		chosen *entities.VocabularyEntry
		words  []string
	)
	for _, c := range candidates {
		tokens := SegmentSentence(c.Example, c.ExamplePinyin)
		if len(tokens) >= g.cfg.ArrangementMinWords && len(tokens) <= g.cfg.ArrangementMaxWords {
			chosen, words = c, tokens
			break
		}
	}
	if chosen == nil {
		chosen = candidates[0]
		words = SegmentSentence(chosen.Example, chosen.ExamplePinyin)
		if len(words) < g.cfg.ArrangementMinWords {
			words = SplitCharacters(chosen.Example)
		}
	}

	tokens := make([]entities.SentenceToken, len(words))
	for i, w := range words {
		tokens[i] = entities.SentenceToken{
			ID:       newQuestionID(),
			Text:     w,
			Position: i,
		}
	}

	shuffled := append([]entities.SentenceToken(nil), tokens...)
	g.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	return &entities.SentenceArrangementQuestion{
		ID:              newQuestionID(),
		CorrectSentence: chosen.Example,
		SentencePinyin:  chosen.ExamplePinyin,
		SentenceMeaning: chosen.ExampleMeaning,
		Tokens:          tokens,
		ShuffledTokens:  shuffled,
		Entry:           chosen,
	}
}
