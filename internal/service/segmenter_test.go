package service

import (
	"reflect"
	"testing"
)

func TestSegmentSentence(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		pinyin   string
		want     []string
	}{
		{
			name:     "aligned transcription",
			sentence: "我喜欢学习中文。",
			pinyin:   "wǒ xǐhuan xuéxí zhōngwén",
			want:     []string{"我", "喜欢", "学习", "中文。"},
		},
		{
			name:     "leftover characters become final token",
			sentence: "你好吗",
			pinyin:   "nǐ hǎo",
			want:     []string{"你", "好", "吗"},
		},
		{
			name:     "punctuation glued to preceding token",
			sentence: "是的，我去。",
			pinyin:   "shìde wǒ qù",
			want:     []string{"是的，", "我", "去。"},
		},
		{
			name:     "pinyin longer than sentence",
			sentence: "好",
			pinyin:   "hǎo de hěn",
			want:     []string{"好"},
		},
		{
			name:     "empty pinyin yields one token",
			sentence: "你好",
			pinyin:   "",
			want:     []string{"你好"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentSentence(tt.sentence, tt.pinyin)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SegmentSentence(%q, %q) = %v, want %v",
					tt.sentence, tt.pinyin, got, tt.want)
			}
		})
	}
}

func TestSplitCharacters(t *testing.T) {
	got := SplitCharacters("你好！再见")
	want := []string{"你", "好！", "再", "见"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitCharacters = %v, want %v", got, want)
	}
}

func TestVowelClusters(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"wǒ", 1},
		{"xǐhuan", 2},
		{"xuéxí", 2},
		{"zhōngwén", 2},
		{"zh", 0},
		{"piàoliang", 2},
	}

	for _, tt := range tests {
		if got := vowelClusters(tt.word); got != tt.want {
			t.Errorf("vowelClusters(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}
