package service

import (
	"testing"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

func TestGenerateFillBlank(t *testing.T) {
	cfg := DefaultQuizConfig()
	g := NewGenerator(cfg, testRNG())
	corpus := testCorpus(10)

	t.Run("blank covers the word's rune span", func(t *testing.T) {
		q := g.GenerateFillBlank(corpus, noneUsed())
		if q == nil {
			t.Fatal("expected a question, got nil")
		}

		runes := []rune(q.Sentence)
		blanked := string(runes[q.BlankPosition : q.BlankPosition+q.BlankLength])
		if blanked != q.CorrectAnswer.Word {
			t.Errorf("blank covers %q, want %q", blanked, q.CorrectAnswer.Word)
		}
		if len(q.Options) != cfg.OptionCount {
			t.Errorf("got %d options, want %d", len(q.Options), cfg.OptionCount)
		}
	})

	t.Run("rune offsets with multibyte prefix", func(t *testing.T) {
		pool := []*entities.VocabularyEntry{
			{
				ID:             "w1",
				Word:           "学习",
				Pinyin:         "xuéxí",
				Meanings:       []string{"học tập"},
				Example:        "我们一起学习中文。",
				ExamplePinyin:  "wǒmen yìqǐ xuéxí zhōngwén",
				ExampleMeaning: "Chúng ta cùng học tiếng Trung.",
			},
			{ID: "w2", Word: "朋友", Pinyin: "péngyou", Meanings: []string{"bạn"}},
			{ID: "w3", Word: "时间", Pinyin: "shíjiān", Meanings: []string{"thời gian"}},
			{ID: "w4", Word: "工作", Pinyin: "gōngzuò", Meanings: []string{"công việc"}},
		}

		q := g.GenerateFillBlank(pool, noneUsed())
		if q == nil {
			t.Fatal("expected a question, got nil")
		}
		if q.BlankPosition != 4 {
			t.Errorf("BlankPosition = %d, want 4", q.BlankPosition)
		}
		if q.BlankLength != 2 {
			t.Errorf("BlankLength = %d, want 2", q.BlankLength)
		}
	})

	t.Run("nil without usable examples", func(t *testing.T) {
		pool := []*entities.VocabularyEntry{
			{ID: "a", Word: "猫", Pinyin: "māo", Meanings: []string{"mèo"}},
			{ID: "b", Word: "狗", Pinyin: "gǒu", Meanings: []string{"chó"},
				Example: "这个句子没有那个词。"},
		}
		if q := g.GenerateFillBlank(pool, noneUsed()); q != nil {
			t.Errorf("expected nil question, got %v", q)
		}
	})
}
