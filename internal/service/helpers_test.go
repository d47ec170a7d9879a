package service

import (
	"math/rand"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// Fixture vocabulary shared by the generator and composer tests. Every entry
// is a single character with a one-syllable reading and an example sentence
// containing the word, so every archetype can generate from any slice of it.
var fixtureWords = []struct {
	word   string
	pinyin string
}{
	{"猫", "māo"},
	{"门", "mén"},
	{"民", "mín"},
	{"墨", "mò"},
	{"木", "mù"},
	{"哪", "nǎ"},
	{"讷", "nè"},
	{"泥", "ní"},
	{"农", "nóng"},
	{"女", "nǚ"},
	{"趴", "pā"},
	{"陪", "péi"},
	{"品", "pǐn"},
	{"婆", "pó"},
	{"铺", "pù"},
	{"七", "qī"},
	{"钱", "qián"},
	{"请", "qǐng"},
	{"球", "qiú"},
	{"去", "qù"},
}

func testEntry(i int) *entities.VocabularyEntry {
	w := fixtureWords[i]
	return &entities.VocabularyEntry{
		ID:             entities.NewVocabularyID(w.word, w.pinyin),
		Word:           w.word,
		Pinyin:         w.pinyin,
		Meanings:       []string{"nghĩa " + w.word},
		Example:        w.word + "很重要。",
		ExamplePinyin:  w.pinyin + " hěn zhòng yào",
		ExampleMeaning: w.word + " rất quan trọng.",
		HSKLevel:       i%3 + 1,
	}
}

func testCorpus(n int) []*entities.VocabularyEntry {
	if n > len(fixtureWords) {
		n = len(fixtureWords)
	}
	corpus := make([]*entities.VocabularyEntry, n)
	for i := range corpus {
		corpus[i] = testEntry(i)
	}
	return corpus
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func noneUsed() map[string]struct{} {
	return map[string]struct{}{}
}
