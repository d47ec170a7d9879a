package entities

// FrequencyRecord counts how often and how accurately one word was exercised
// within a single session. Invariant: CorrectAnswers + IncorrectAnswers ==
// Appearances, and Accuracy == CorrectAnswers / Appearances.
type FrequencyRecord struct {
	WordID           string
	Word             string
	Pinyin           string
	Meanings         []string
	Appearances      int
	CorrectAnswers   int
	IncorrectAnswers int
	Accuracy         float64 // percentage, 0-100
	ProgressPoints   float64 // points earned or lost this session
}

// Touch registers one appearance of the word and recomputes accuracy.
func (r *FrequencyRecord) Touch(correct bool) {
	r.Appearances++
	if correct {
		r.CorrectAnswers++
	} else {
		r.IncorrectAnswers++
	}
	r.Accuracy = float64(r.CorrectAnswers) / float64(r.Appearances) * 100
}

// Clone returns a deep copy of the record.
func (r *FrequencyRecord) Clone() *FrequencyRecord {
	c := *r
	c.Meanings = append([]string(nil), r.Meanings...)
	return &c
}
