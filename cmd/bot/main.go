package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hantubot/hantu-quiz-bot/internal/config"
	"github.com/hantubot/hantu-quiz-bot/internal/delivery/telegram"
	"github.com/hantubot/hantu-quiz-bot/internal/infra/postgres"
	"github.com/hantubot/hantu-quiz-bot/internal/logger"
	"github.com/hantubot/hantu-quiz-bot/internal/repository"
	"github.com/hantubot/hantu-quiz-bot/internal/service"
)

func main() {
	// Local development convenience; the file is absent in production.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot", zap.Error(err))
	}

	commands := []tgbotapi.BotCommand{
		{Command: "quiz", Description: "Bắt đầu bài luyện tập"},
		{Command: "cancel", Description: "Huỷ bài đang làm"},
		{Command: "progress", Description: "Tiến độ học theo từ"},
		{Command: "history", Description: "Lịch sử bài làm"},
		{Command: "reload", Description: "Tải lại dữ liệu từ vựng"},
		{Command: "help", Description: "Trợ giúp"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zl.Fatal("database is not configured", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		zl.Fatal("failed to run migrations", zap.Error(err))
	}

	corpusRepo := repository.NewCorpusRepository(cfg.CorpusCSVPath)
	statsRepo := repository.NewWordStatsRepository(pool)
	historyRepo := repository.NewQuizHistoryRepository(pool)

	corpusService := service.NewCorpusService(corpusRepo, zl)
	scorer := service.NewScorer(statsRepo, historyRepo)

	handler := telegram.NewHandler(
		bot,
		zl,
		corpusService,
		scorer,
		cfg.Quiz,
		historyRepo,
		statsRepo,
	)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
