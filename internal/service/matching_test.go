package service

import (
	"sort"
	"testing"
)

func TestGenerateMatching(t *testing.T) {
	cfg := DefaultQuizConfig()
	g := NewGenerator(cfg, testRNG())
	corpus := testCorpus(12)

	t.Run("item count within configured range", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			q := g.GenerateMatching(corpus, noneUsed())
			if q == nil {
				t.Fatal("expected a question, got nil")
			}
			n := len(q.Items)
			if n < cfg.MatchingMinItems || n > cfg.MatchingMaxItems {
				t.Fatalf("item count %d outside [%d, %d]",
					n, cfg.MatchingMinItems, cfg.MatchingMaxItems)
			}
		}
	})

	t.Run("columns are permutations of the item fields", func(t *testing.T) {
		q := g.GenerateMatching(corpus, noneUsed())
		if q == nil {
			t.Fatal("expected a question, got nil")
		}

		words := make([]string, len(q.Items))
		pinyins := make([]string, len(q.Items))
		meanings := make([]string, len(q.Items))
		for i, item := range q.Items {
			words[i] = item.Word
			pinyins[i] = item.Pinyin
			meanings[i] = item.Meaning
		}

		assertSameMultiset(t, "words", q.ShuffledWords, words)
		assertSameMultiset(t, "pinyins", q.ShuffledPinyins, pinyins)
		assertSameMultiset(t, "meanings", q.ShuffledMeanings, meanings)
	})

	t.Run("columns decorrelate from item order", func(t *testing.T) {
		aligned := 0
		const trials = 100
		for i := 0; i < trials; i++ {
			q := g.GenerateMatching(corpus, noneUsed())
			if q == nil {
				t.Fatal("expected a question, got nil")
			}
			identical := true
			for j, item := range q.Items {
				if q.ShuffledWords[j] != item.Word ||
					q.ShuffledPinyins[j] != item.Pinyin ||
					q.ShuffledMeanings[j] != item.Meaning {
					identical = false
					break
				}
			}
			if identical {
				aligned++
			}
		}
		// With at least 3 items and three independent shuffles, an aligned
		// triple should be a rare accident, never the norm.
		if aligned > trials/10 {
			t.Errorf("%d/%d questions kept all columns aligned with item order", aligned, trials)
		}
	})

	t.Run("tops up from used entries", func(t *testing.T) {
		small := testCorpus(5)
		used := map[string]struct{}{}
		for _, e := range small[:3] {
			used[e.ID] = struct{}{}
		}

		// Unused pool holds only 2 entries; the minimum item count is 3, so
		// every generated set must borrow at least one used entry.
		q := g.GenerateMatching(small, used)
		if q == nil {
			t.Fatal("expected a question, got nil")
		}
		if len(q.Items) < cfg.MatchingMinItems {
			t.Fatalf("item count %d below minimum %d", len(q.Items), cfg.MatchingMinItems)
		}
	})

	t.Run("nil when whole pool is too small", func(t *testing.T) {
		if q := g.GenerateMatching(testCorpus(2), noneUsed()); q != nil {
			t.Errorf("expected nil question for pool of 2, got %v", q)
		}
	})
}

func assertSameMultiset(t *testing.T, name string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d values, want %d", name, len(got), len(want))
	}
	g := append([]string(nil), got...)
	w := append([]string(nil), want...)
	sort.Strings(g)
	sort.Strings(w)
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("%s: %v is not a permutation of %v", name, got, want)
		}
	}
}
