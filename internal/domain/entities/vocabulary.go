package entities

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// HSK proficiency levels supported by the drill corpus.
// Zero means the entry carries no level tag.
const (
	HSKLevel1 = 1
	HSKLevel2 = 2
	HSKLevel3 = 3
)

// VocabularyEntry is a single word of the drill corpus. Entries are immutable
// once loaded: generators and the composer only ever read them.
type VocabularyEntry struct {
	ID             string   // content hash of word + pinyin
	Word           string   // Chinese characters
	Pinyin         string   // phonetic transcription, space-delimited per character
	WordClass      string   // "Danh từ", "Động từ", ... (optional)
	Meanings       []string // Vietnamese meanings, never empty for a valid entry
	Example        string   // example sentence in Chinese (optional)
	ExamplePinyin  string   // pinyin of the example (optional)
	ExampleMeaning string   // Vietnamese translation of the example (optional)
	HSKLevel       int      // 1-3, or 0 when untagged
}

// NewVocabularyID derives a stable entry ID from word and pinyin, so the same
// written form with two readings yields two distinct entries.
func NewVocabularyID(word, pinyin string) string {
	sum := md5.Sum([]byte(strings.TrimSpace(word + "_" + pinyin)))
	return hex.EncodeToString(sum[:])
}

// Meaning returns the primary (first) meaning of the entry.
func (e *VocabularyEntry) Meaning() string {
	if len(e.Meanings) == 0 {
		return ""
	}
	return e.Meanings[0]
}

// HasUsableExample reports whether the example sentence exists and actually
// contains the entry's own word, which blank-based questions require.
func (e *VocabularyEntry) HasUsableExample() bool {
	return e.Example != "" && strings.Contains(e.Example, e.Word)
}
