package telegram

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const historyPageSize = 5

func (h *Handler) handleCommand(ctx context.Context, chatID int64, command, args string) {
	switch command {
	case "start":
		h.send(newPlainMessage(chatID, msgWelcome))
	case "help":
		h.send(newPlainMessage(chatID, msgHelp))
	case "quiz":
		msg := newPlainMessage(chatID, msgChooseLength)
		msg.ReplyMarkup = lengthKeyboard()
		h.send(msg)
	case "cancel":
		h.handleCancel(chatID)
	case "progress":
		h.handleProgress(ctx, chatID)
	case "history":
		h.handleHistory(ctx, chatID)
	case "reload":
		h.handleReload(ctx, chatID)
	default:
		h.send(newPlainMessage(chatID, msgHelp))
	}
	_ = args
}

func (h *Handler) handleCancel(chatID int64) {
	cs := h.chat(chatID)
	if cs == nil {
		h.send(newPlainMessage(chatID, msgNoActiveQuiz))
		return
	}
	cs.session.Reset()
	h.dropChat(chatID)
	h.send(newPlainMessage(chatID, msgQuizCancelled))
}

func (h *Handler) handleProgress(ctx context.Context, chatID int64) {
	stats, err := h.stats.GetAll(ctx)
	if err != nil {
		h.logger.Error("failed to load word stats", zap.Error(err))
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}
	if len(stats) == 0 {
		h.send(newPlainMessage(chatID, msgProgressEmpty))
		return
	}

	var b strings.Builder
	b.WriteString("Tiến độ học theo từ:\n\n")
	for i, s := range stats {
		if i == 15 {
			fmt.Fprintf(&b, "... và %d từ khác\n", len(stats)-i)
			break
		}
		accuracy := 0.0
		if s.TotalAppearances > 0 {
			accuracy = float64(s.TotalCorrect) / float64(s.TotalAppearances) * 100
		}
		fmt.Fprintf(&b, "%s (%s): %+.1f điểm, %.0f%% đúng trong %d lần\n",
			s.Word, s.Pinyin, s.ProgressScore, accuracy, s.TotalAppearances)
	}
	h.send(newPlainMessage(chatID, b.String()))
}

func (h *Handler) handleHistory(ctx context.Context, chatID int64) {
	entries, err := h.history.List(ctx, historyPageSize)
	if err != nil {
		h.logger.Error("failed to load quiz history", zap.Error(err))
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}
	if len(entries) == 0 {
		h.send(newPlainMessage(chatID, msgHistoryEmpty))
		return
	}

	var b strings.Builder
	b.WriteString("Các bài gần đây:\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s — %d/%d (%d%%), điểm tiến bộ %+.1f\n",
			e.FinishedAt.Format("02.01.2006 15:04"),
			e.CorrectCount, e.TotalQuestions, e.PercentageScore, e.ProgressScore)
	}
	h.send(newPlainMessage(chatID, b.String()))
}

func (h *Handler) handleReload(ctx context.Context, chatID int64) {
	if _, err := h.corpus.Reload(ctx); err != nil {
		h.logger.Error("failed to reload corpus", zap.Error(err))
		h.send(newPlainMessage(chatID, msgCorpusUnavailable))
		return
	}
	h.send(newPlainMessage(chatID, msgReloaded))
}
