package telegram

import (
	"context"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
	"github.com/hantubot/hantu-quiz-bot/internal/repository"
	"github.com/hantubot/hantu-quiz-bot/internal/service"
)

// CorpusProvider serves the cached vocabulary corpus.
type CorpusProvider interface {
	Entries(ctx context.Context) ([]*entities.VocabularyEntry, error)
	Reload(ctx context.Context) ([]*entities.VocabularyEntry, error)
}

// HistoryLister lists finished quiz results.
type HistoryLister interface {
	List(ctx context.Context, limit int) ([]*repository.HistoryEntry, error)
}

// StatsLister lists the persistent per-word mastery records.
type StatsLister interface {
	GetAll(ctx context.Context) ([]*entities.GlobalWordStats, error)
}

// chatSession pairs a quiz session with the moment its current question was
// presented, so answer times can be measured.
type chatSession struct {
	session *service.Session
	askedAt time.Time
}

// Handler routes Telegram updates into quiz sessions, one session per chat.
type Handler struct {
	bot     *tgbotapi.BotAPI
	logger  *zap.Logger
	corpus  CorpusProvider
	scorer  *service.Scorer
	quizCfg service.QuizConfig
	history HistoryLister
	stats   StatsLister

	mu       sync.Mutex
	sessions map[int64]*chatSession
}

// NewHandler creates the Telegram handler.
func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	corpus CorpusProvider,
	scorer *service.Scorer,
	quizCfg service.QuizConfig,
	history HistoryLister,
	stats StatsLister,
) *Handler {
	return &Handler{
		bot:      bot,
		logger:   logger,
		corpus:   corpus,
		scorer:   scorer,
		quizCfg:  quizCfg,
		history:  history,
		stats:    stats,
		sessions: make(map[int64]*chatSession),
	}
}

// Run consumes updates until the context is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if update.Message.IsCommand() {
		h.handleCommand(ctx, chatID, update.Message.Command(), update.Message.CommandArguments())
		return
	}

	h.handleText(ctx, chatID, update.Message.Text)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send message", zap.Error(err))
	}
}

func (h *Handler) chat(chatID int64) *chatSession {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessions[chatID]
}

func (h *Handler) putChat(chatID int64, cs *chatSession) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[chatID] = cs
}

func (h *Handler) dropChat(chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, chatID)
}
