package service

import (
	"context"
	"errors"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// SessionState is the lifecycle phase of a quiz session.
type SessionState string

const (
	StateNotStarted SessionState = "not-started"
	StateInProgress SessionState = "in-progress"
	StateFinished   SessionState = "finished"
)

var (
	ErrNoActiveQuiz = errors.New("no active quiz")
	ErrEmptyQuiz    = errors.New("quiz has no questions")
)

// Session drives one quiz from start to finish. It is not safe for
// concurrent use; each learner gets their own session.
type Session struct {
	composer *Composer
	scorer   *Scorer

	state        SessionState
	quiz         *entities.Quiz
	answers      []entities.Answer
	tracker      *Tracker
	currentIndex int
	isSubmitted  bool
	result       *entities.QuizResult
}

// NewSession creates an idle session.
func NewSession(composer *Composer, scorer *Scorer) *Session {
	return &Session{
		composer: composer,
		scorer:   scorer,
		state:    StateNotStarted,
	}
}

// Start composes a fresh quiz over the corpus and initializes the frequency
// tracker. An empty composition result (corpus too small for every archetype)
// is reported as ErrEmptyQuiz.
func (s *Session) Start(
	corpus []*entities.VocabularyEntry,
	length entities.QuizLength,
	archetype entities.Archetype,
) error {
	quiz := s.composer.ComposeQuiz(corpus, length, archetype)
	if len(quiz.Questions) == 0 {
		return ErrEmptyQuiz
	}

	s.state = StateInProgress
	s.quiz = quiz
	s.answers = nil
	s.tracker = NewTracker(quiz, corpus)
	s.currentIndex = 0
	s.isSubmitted = false
	s.result = nil
	return nil
}

// Submit records an answer and updates the frequency tracker. Submitting a
// second answer for the same question is a no-op: the first answer stands.
func (s *Session) Submit(a entities.Answer) {
	if s.state != StateInProgress {
		return
	}
	if s.AnswerFor(a.AnsweredQuestionID()) != nil {
		return
	}
	q := s.quiz.QuestionByID(a.AnsweredQuestionID())
	if q == nil {
		return
	}

	s.answers = append(s.answers, a)
	s.tracker = s.tracker.Apply(q, a)
	s.isSubmitted = true
}

// Next advances to the following question, if any.
func (s *Session) Next() {
	if s.state != StateInProgress {
		return
	}
	if s.currentIndex < len(s.quiz.Questions)-1 {
		s.currentIndex++
		s.isSubmitted = s.currentQuestionAnswered()
	}
}

// Previous moves back one question. Revisited questions show as submitted
// whenever an answer exists, so they stay read-only.
func (s *Session) Previous() {
	if s.state != StateInProgress {
		return
	}
	if s.currentIndex > 0 {
		s.currentIndex--
		s.isSubmitted = s.currentQuestionAnswered()
	}
}

// GoTo jumps to an arbitrary question index.
func (s *Session) GoTo(index int) {
	if s.state != StateInProgress {
		return
	}
	if index < 0 || index >= len(s.quiz.Questions) {
		return
	}
	s.currentIndex = index
	s.isSubmitted = s.currentQuestionAnswered()
}

// Finish computes and persists the quiz result and moves the session to
// Finished. Persistence failures leave the session in progress so the caller
// can retry.
func (s *Session) Finish(ctx context.Context) (*entities.QuizResult, error) {
	if s.state != StateInProgress {
		return nil, ErrNoActiveQuiz
	}

	result, err := s.scorer.FinishQuiz(ctx, s.quiz, s.answers, s.tracker)
	if err != nil {
		return nil, err
	}

	s.state = StateFinished
	s.result = result
	return result, nil
}

// Reset discards all in-memory state.
func (s *Session) Reset() {
	*s = Session{
		composer: s.composer,
		scorer:   s.scorer,
		state:    StateNotStarted,
	}
}

// State returns the session's lifecycle phase.
func (s *Session) State() SessionState { return s.state }

// Quiz returns the active quiz, or nil.
func (s *Session) Quiz() *entities.Quiz { return s.quiz }

// Result returns the finished result, or nil.
func (s *Session) Result() *entities.QuizResult { return s.result }

// CurrentQuestion returns the question at the session cursor, or nil.
func (s *Session) CurrentQuestion() entities.Question {
	if s.state != StateInProgress {
		return nil
	}
	return s.quiz.Questions[s.currentIndex]
}

// CurrentIndex returns the session cursor.
func (s *Session) CurrentIndex() int { return s.currentIndex }

// IsSubmitted reports whether the current question already has an answer.
func (s *Session) IsSubmitted() bool { return s.isSubmitted }

// AnswerFor returns the recorded answer for a question, or nil.
func (s *Session) AnswerFor(questionID string) entities.Answer {
	for _, a := range s.answers {
		if a.AnsweredQuestionID() == questionID {
			return a
		}
	}
	return nil
}

// Answers returns all recorded answers in submission order.
func (s *Session) Answers() []entities.Answer {
	return append([]entities.Answer(nil), s.answers...)
}

// Progress reports the 1-based cursor position and the question total.
func (s *Session) Progress() (current, total int) {
	if s.quiz == nil {
		return 0, 0
	}
	return s.currentIndex + 1, len(s.quiz.Questions)
}

func (s *Session) currentQuestionAnswered() bool {
	q := s.quiz.Questions[s.currentIndex]
	return s.AnswerFor(q.QuestionID()) != nil
}
