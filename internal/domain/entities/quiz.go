package entities

import "time"

// QuizLength is a named length preset ("short", "medium", ...). The actual
// question count per preset comes from configuration.
type QuizLength string

const (
	LengthShort   QuizLength = "short"
	LengthMedium  QuizLength = "medium"
	LengthLong    QuizLength = "long"
	LengthMaximum QuizLength = "maximum"
)

// Quiz is one composed drill. It is created once by the composer and is
// immutable afterwards; answers are tracked alongside, never written into it.
type Quiz struct {
	ID        string
	Length    QuizLength
	Questions []Question
	StartedAt time.Time
}

// QuestionByID returns the question with the given ID, or nil.
func (q *Quiz) QuestionByID(id string) Question {
	for _, question := range q.Questions {
		if question.QuestionID() == id {
			return question
		}
	}
	return nil
}

// TotalUnits counts scoring units: a matching question contributes one unit
// per item, every other archetype contributes one.
func (q *Quiz) TotalUnits() int {
	total := 0
	for _, question := range q.Questions {
		if m, ok := question.(*MatchingQuestion); ok {
			total += len(m.Items)
			continue
		}
		total++
	}
	return total
}

// QuizResult aggregates a finished session.
type QuizResult struct {
	QuizID          string
	Date            time.Time
	Length          QuizLength
	TotalQuestions  int // scoring units, matching counted per item
	CorrectCount    int
	IncorrectCount  int
	TotalTime       time.Duration
	AverageTimes    map[Archetype]time.Duration
	FrequencyData   []*FrequencyRecord
	Answers         []Answer
	ProgressScore   float64 // clamped to [-100, 100]
	PercentageScore int     // 0-100
}
