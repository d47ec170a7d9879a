package entities

import (
	"math"
	"testing"
)

func TestProgressPoints(t *testing.T) {
	tests := []struct {
		name        string
		appearances int
		correct     bool
		want        float64
	}{
		{"new word correct", 0, true, 10.0},
		{"new word incorrect", 0, false, -10.0},
		{"halfway decayed incorrect", 25, false, -5.0},
		{"fully decayed correct", 50, true, 2.0},
		{"beyond decay floor", 200, true, 2.0},
		{"beyond decay floor incorrect", 200, false, -2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressPoints(tt.appearances, tt.correct)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ProgressPoints(%d, %v) = %v, want %v", tt.appearances, tt.correct, got, tt.want)
			}
		})
	}
}

func TestProgressPoints_RoundedToOneDecimal(t *testing.T) {
	for n := 0; n <= 60; n++ {
		p := ProgressPoints(n, true)
		if math.Abs(p*10-math.Round(p*10)) > 1e-9 {
			t.Errorf("ProgressPoints(%d, true) = %v, not rounded to one decimal", n, p)
		}
	}
}

func TestGlobalWordStats_ScoreStaysBounded(t *testing.T) {
	s := NewGlobalWordStats("id", "你好", "nǐ hǎo", []string{"xin chào"})

	for i := 0; i < 500; i++ {
		s.Record(true)
		if s.ProgressScore > 100 || s.ProgressScore < -100 {
			t.Fatalf("score out of bounds after %d correct answers: %v", i+1, s.ProgressScore)
		}
	}
	if s.ProgressScore != 100 {
		t.Errorf("expected score pinned at 100, got %v", s.ProgressScore)
	}

	for i := 0; i < 1000; i++ {
		s.Record(false)
		if s.ProgressScore > 100 || s.ProgressScore < -100 {
			t.Fatalf("score out of bounds after %d incorrect answers: %v", i+1, s.ProgressScore)
		}
	}
	if s.ProgressScore != -100 {
		t.Errorf("expected score pinned at -100, got %v", s.ProgressScore)
	}
}

func TestGlobalWordStats_RecordCounters(t *testing.T) {
	s := NewGlobalWordStats("id", "学校", "xué xiào", []string{"trường học"})

	first := s.Record(true)
	second := s.Record(false)

	if first != 10.0 {
		t.Errorf("first answer delta = %v, want 10.0", first)
	}
	if second != -9.8 {
		t.Errorf("second answer delta = %v, want -9.8", second)
	}
	if s.TotalAppearances != 2 || s.TotalCorrect != 1 || s.TotalIncorrect != 1 {
		t.Errorf("counters = %d/%d/%d, want 2/1/1",
			s.TotalAppearances, s.TotalCorrect, s.TotalIncorrect)
	}
}
