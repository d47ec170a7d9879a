package telegram

import (
	"context"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
	"github.com/hantubot/hantu-quiz-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID

	switch {
	case strings.HasPrefix(cb.Data, "len:"):
		h.startQuiz(ctx, chatID, entities.QuizLength(strings.TrimPrefix(cb.Data, "len:")))
	case strings.HasPrefix(cb.Data, "opt:"):
		h.handleOptionCallback(ctx, chatID, strings.TrimPrefix(cb.Data, "opt:"))
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}

func (h *Handler) startQuiz(ctx context.Context, chatID int64, length entities.QuizLength) {
	corpus, err := h.corpus.Entries(ctx)
	if err != nil {
		h.logger.Error("failed to load corpus", zap.Error(err))
		h.send(newPlainMessage(chatID, msgCorpusUnavailable))
		return
	}

	session := service.NewSession(service.NewComposer(h.quizCfg, nil), h.scorer)
	if err := session.Start(corpus, length, ""); err != nil {
		h.logger.Error("failed to start quiz",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgQuizUnavailable))
		return
	}

	cs := &chatSession{session: session}
	h.putChat(chatID, cs)
	h.askCurrent(chatID, cs)
}

// handleOptionCallback resolves an option tap on the current choice question.
// Data format: "<question-id-prefix>:<option-index>".
func (h *Handler) handleOptionCallback(ctx context.Context, chatID int64, data string) {
	cs := h.chat(chatID)
	if cs == nil {
		h.send(newPlainMessage(chatID, msgNoActiveQuiz))
		return
	}

	parts := strings.SplitN(data, ":", 2)
	if len(parts) != 2 {
		return
	}
	idPrefix := parts[0]
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}

	q := cs.session.CurrentQuestion()
	if q == nil || shortID(q.QuestionID()) != idPrefix {
		// A tap on an already superseded question's keyboard.
		return
	}
	if cs.session.IsSubmitted() {
		h.send(newPlainMessage(chatID, msgAlreadyAnswered))
		return
	}

	spent := time.Since(cs.askedAt)
	var answer entities.Answer

	switch question := q.(type) {
	case *entities.MultipleChoiceQuestion:
		if index < 0 || index >= len(question.Options) {
			return
		}
		answer = service.EvaluateMultipleChoice(question, question.Options[index].ID, spent)
	case *entities.FillBlankQuestion:
		if index < 0 || index >= len(question.Options) {
			return
		}
		answer = service.EvaluateFillBlank(question, question.Options[index].ID, spent)
	default:
		return
	}

	h.submitAndAdvance(ctx, chatID, cs, q, answer)
}
