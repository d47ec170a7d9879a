package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

const corpusCSV = `word,pinyin,word_class,meaning,example,example_pinyin,example_meaning,hsk_level
猫,māo,Danh từ,mèo,我家有一只猫。,wǒ jiā yǒu yì zhī māo,Nhà tôi có một con mèo.,1
,kōng,,trống,,,,1
狗,gǒu,Danh từ,chó,,,,2
猫,māo,Danh từ,con mèo,,,,1
鱼,yú,Danh từ,cá,,,,9
`

func TestParseCorpus(t *testing.T) {
	entries, err := parseCorpus(strings.NewReader(corpusCSV))
	if err != nil {
		t.Fatalf("parseCorpus: %v", err)
	}

	// Header skipped, empty-word row skipped, duplicate merged into the first.
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	cat := entries[0]
	if cat.Word != "猫" || cat.Pinyin != "māo" {
		t.Fatalf("first entry is %s/%s, want 猫/māo", cat.Word, cat.Pinyin)
	}
	if cat.ID != entities.NewVocabularyID("猫", "māo") {
		t.Errorf("entry ID not derived from word and pinyin")
	}
	if len(cat.Meanings) != 2 || cat.Meanings[0] != "mèo" || cat.Meanings[1] != "con mèo" {
		t.Errorf("duplicate row meanings not merged: %v", cat.Meanings)
	}
	if cat.Example == "" || cat.ExampleMeaning == "" {
		t.Errorf("example columns not loaded: %+v", cat)
	}
	if cat.HSKLevel != 1 {
		t.Errorf("HSKLevel = %d, want 1", cat.HSKLevel)
	}

	// Out-of-range level tags are dropped, the entry is kept.
	fish := entries[2]
	if fish.Word != "鱼" {
		t.Fatalf("third entry is %s, want 鱼", fish.Word)
	}
	if fish.HSKLevel != 0 {
		t.Errorf("invalid level 9 kept as %d, want 0", fish.HSKLevel)
	}
}

func TestParseCorpusEmpty(t *testing.T) {
	_, err := parseCorpus(strings.NewReader("word,pinyin,word_class,meaning\n"))
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("err = %v, want ErrEmptyCorpus", err)
	}
}

func TestParseCorpusShortRows(t *testing.T) {
	// Optional trailing columns may be missing entirely.
	entries, err := parseCorpus(strings.NewReader("学习,xuéxí,,học tập\n"))
	if err != nil {
		t.Fatalf("parseCorpus: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Example != "" || e.HSKLevel != 0 {
		t.Errorf("missing columns not zeroed: %+v", e)
	}
}

func TestCorpusRepositoryLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabulary.csv")
	if err := os.WriteFile(path, []byte(corpusCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	repo := NewCorpusRepository(path)
	entries, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}

	if _, err := NewCorpusRepository(filepath.Join(t.TempDir(), "absent.csv")).Load(context.Background()); err == nil {
		t.Error("expected an error for a missing file")
	}
}
