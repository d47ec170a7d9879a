package service

import (
	"strings"
	"unicode"
)

// pinyinVowels contains every vowel rune that can occur in a toned pinyin
// syllable. Each maximal vowel run inside one pinyin word approximates one
// syllable, and one syllable corresponds to one Chinese character.
const pinyinVowels = "aeiouüāáǎàēéěèīíǐìōóǒòūúǔùǖǘǚǜê"

// SegmentSentence splits a Chinese sentence into word tokens using its
// space-delimited pinyin transcription as the word-boundary hint.
//
// The character stream is stripped of punctuation first (each mark is glued
// back onto the token of the character it followed). Every pinyin word then
// consumes as many characters as it has vowel clusters. Characters left over
// after all pinyin words are consumed become one final token.
//
// This is a heuristic, not a real segmenter: it assumes one character per
// syllable and a transcription that matches the sentence. When either
// assumption fails the split degrades gracefully instead of erroring.
func SegmentSentence(sentence, pinyin string) []string {
	chars := make([]rune, 0, len(sentence))
	trailing := make(map[int]string)

	for _, r := range sentence {
		if unicode.IsSpace(r) {
			continue
		}
		if isSentencePunct(r) {
			if len(chars) > 0 {
				trailing[len(chars)-1] += string(r)
			}
			continue
		}
		chars = append(chars, r)
	}

	words := strings.Fields(pinyin)
	tokens := make([]string, 0, len(words)+1)
	pos := 0

	for _, w := range words {
		if pos >= len(chars) {
			break
		}
		n := vowelClusters(w)
		if n < 1 {
			n = 1
		}
		end := pos + n
		if end > len(chars) {
			end = len(chars)
		}
		tokens = append(tokens, buildToken(chars, trailing, pos, end))
		pos = end
	}

	if pos < len(chars) {
		tokens = append(tokens, buildToken(chars, trailing, pos, len(chars)))
	}

	return tokens
}

// SplitCharacters is the last-resort split: every character becomes its own
// token, with punctuation glued to the preceding character.
func SplitCharacters(sentence string) []string {
	var tokens []string
	for _, r := range sentence {
		if unicode.IsSpace(r) {
			continue
		}
		if isSentencePunct(r) {
			if len(tokens) > 0 {
				tokens[len(tokens)-1] += string(r)
			}
			continue
		}
		tokens = append(tokens, string(r))
	}
	return tokens
}

// vowelClusters counts maximal runs of vowel runes in one pinyin word.
func vowelClusters(word string) int {
	count := 0
	inCluster := false
	for _, r := range strings.ToLower(word) {
		if strings.ContainsRune(pinyinVowels, r) {
			if !inCluster {
				count++
				inCluster = true
			}
			continue
		}
		inCluster = false
	}
	return count
}

func isSentencePunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func buildToken(chars []rune, trailing map[int]string, start, end int) string {
	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteRune(chars[i])
		if p, ok := trailing[i]; ok {
			b.WriteString(p)
		}
	}
	return b.String()
}
