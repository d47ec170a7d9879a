package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

var ErrEmptyCorpus = errors.New("corpus file contains no usable entries")

// Expected CSV header columns. The format is
// word,pinyin,word_class,meaning,example,example_pinyin,example_meaning,hsk_level
// with word_class, the example columns and hsk_level optional.
const (
	colWord = iota
	colPinyin
	colWordClass
	colMeaning
	colExample
	colExamplePinyin
	colExampleMeaning
	colHSKLevel
)

// CorpusRepository reads the drill corpus from a CSV file. Rows missing word,
// pinyin, or meaning are skipped — filtering invalid entries here keeps the
// generators free of validity checks. A row whose word+pinyin pair was seen
// before merges its meanings into the existing entry instead of duplicating
// it.
type CorpusRepository struct {
	path string
}

// NewCorpusRepository creates a repository over the CSV file at path.
func NewCorpusRepository(path string) *CorpusRepository {
	return &CorpusRepository{path: path}
}

// Load parses the corpus file into vocabulary entries, preserving row order.
func (r *CorpusRepository) Load(_ context.Context) ([]*entities.VocabularyEntry, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	entries, err := parseCorpus(f)
	if err != nil {
		return nil, fmt.Errorf("parse corpus file %s: %w", r.path, err)
	}
	return entries, nil
}

func parseCorpus(r io.Reader) ([]*entities.VocabularyEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // trailing optional columns may be absent

	var (
		entries []*entities.VocabularyEntry
		byID    = make(map[string]*entities.VocabularyEntry)
		first   = true
	)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		// Skip a header row if present.
		if first {
			first = false
			if strings.EqualFold(field(row, colWord), "word") {
				continue
			}
		}

		word := field(row, colWord)
		pinyin := field(row, colPinyin)
		meaning := field(row, colMeaning)
		if word == "" || pinyin == "" || meaning == "" {
			continue
		}

		id := entities.NewVocabularyID(word, pinyin)
		if existing, ok := byID[id]; ok {
			if !contains(existing.Meanings, meaning) {
				existing.Meanings = append(existing.Meanings, meaning)
			}
			continue
		}

		level, _ := strconv.Atoi(field(row, colHSKLevel))
		if level < entities.HSKLevel1 || level > entities.HSKLevel3 {
			level = 0
		}

		entry := &entities.VocabularyEntry{
			ID:             id,
			Word:           word,
			Pinyin:         pinyin,
			WordClass:      field(row, colWordClass),
			Meanings:       []string{meaning},
			Example:        field(row, colExample),
			ExamplePinyin:  field(row, colExamplePinyin),
			ExampleMeaning: field(row, colExampleMeaning),
			HSKLevel:       level,
		}
		byID[id] = entry
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, ErrEmptyCorpus
	}
	return entries, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
