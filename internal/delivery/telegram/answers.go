// answers.go parses text replies for the non-keyboard archetypes and drives
// the submit/advance flow shared by all question types.

package telegram

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
	"github.com/hantubot/hantu-quiz-bot/internal/service"
)

// handleText treats a plain message as the answer to the current text-reply
// question, when there is one.
func (h *Handler) handleText(ctx context.Context, chatID int64, text string) {
	cs := h.chat(chatID)
	if cs == nil {
		h.send(newPlainMessage(chatID, msgNoActiveQuiz))
		return
	}

	q := cs.session.CurrentQuestion()
	if q == nil {
		h.send(newPlainMessage(chatID, msgNoActiveQuiz))
		return
	}
	if cs.session.IsSubmitted() {
		h.send(newPlainMessage(chatID, msgAlreadyAnswered))
		return
	}

	spent := time.Since(cs.askedAt)
	var answer entities.Answer

	switch question := q.(type) {
	case *entities.MatchingQuestion:
		placements, ok := parseMatchingReply(question, text)
		if !ok {
			h.send(newPlainMessage(chatID, msgInvalidAnswer))
			return
		}
		answer = service.EvaluateMatching(question, placements, spent)

	case *entities.SentenceArrangementQuestion:
		order, ok := parseArrangementReply(question, text)
		if !ok {
			h.send(newPlainMessage(chatID, msgInvalidAnswer))
			return
		}
		answer = service.EvaluateSentenceArrangement(question, order, spent)

	case *entities.SentenceCompletionQuestion:
		answer = service.EvaluateSentenceCompletion(question, text, spent)

	default:
		// Choice questions answer via their keyboard.
		h.send(newPlainMessage(chatID, msgInvalidAnswer))
		return
	}

	h.submitAndAdvance(ctx, chatID, cs, q, answer)
}

// submitAndAdvance records the answer, shows feedback, and either asks the
// next question or finishes the quiz.
func (h *Handler) submitAndAdvance(
	ctx context.Context,
	chatID int64,
	cs *chatSession,
	q entities.Question,
	answer entities.Answer,
) {
	cs.session.Submit(answer)
	h.send(newPlainMessage(chatID, renderFeedback(q, answer)))

	current, total := cs.session.Progress()
	if current < total {
		cs.session.Next()
		h.askCurrent(chatID, cs)
		return
	}

	result, err := cs.session.Finish(ctx)
	if err != nil {
		h.logger.Error("failed to finish quiz",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	h.dropChat(chatID)
	h.send(newPlainMessage(chatID, renderResult(result)))
}

// askCurrent presents the session's current question and stamps the ask time.
func (h *Handler) askCurrent(chatID int64, cs *chatSession) {
	q := cs.session.CurrentQuestion()
	if q == nil {
		return
	}

	index, total := cs.session.Progress()
	text, keyboard := renderQuestion(q, index, total)

	msg := newPlainMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}

	cs.askedAt = time.Now()
	h.send(msg)
}

// parseMatchingReply reads lines like "1-b-2": word index, pinyin letter,
// meaning index, all referring to the shuffled columns as displayed.
func parseMatchingReply(q *entities.MatchingQuestion, text string) ([]service.MatchingPlacement, bool) {
	var placements []service.MatchingPlacement

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.FieldsFunc(line, func(r rune) bool {
			return r == '-' || r == ' ' || r == ','
		})
		if len(parts) != 3 {
			return nil, false
		}

		wordIdx, err := strconv.Atoi(parts[0])
		if err != nil || wordIdx < 1 || wordIdx > len(q.ShuffledWords) {
			return nil, false
		}

		letter := strings.ToLower(parts[1])
		if len(letter) != 1 || letter[0] < 'a' || int(letter[0]-'a') >= len(q.ShuffledPinyins) {
			return nil, false
		}

		meaningIdx, err := strconv.Atoi(parts[2])
		if err != nil || meaningIdx < 1 || meaningIdx > len(q.ShuffledMeanings) {
			return nil, false
		}

		placements = append(placements, service.MatchingPlacement{
			Word:    q.ShuffledWords[wordIdx-1],
			Pinyin:  q.ShuffledPinyins[letter[0]-'a'],
			Meaning: q.ShuffledMeanings[meaningIdx-1],
		})
	}

	return placements, len(placements) > 0
}

// parseArrangementReply reads a token order like "3 1 4 2" over the shuffled
// tokens as displayed and maps it to token IDs.
func parseArrangementReply(q *entities.SentenceArrangementQuestion, text string) ([]string, bool) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != len(q.ShuffledTokens) {
		return nil, false
	}

	seen := make(map[int]struct{}, len(fields))
	order := make([]string, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(q.ShuffledTokens) {
			return nil, false
		}
		if _, dup := seen[n]; dup {
			return nil, false
		}
		seen[n] = struct{}{}
		order = append(order, q.ShuffledTokens[n-1].ID)
	}

	return order, true
}
