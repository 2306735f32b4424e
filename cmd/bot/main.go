package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/rAtAtUY6/CoW-bot/internal/app"
	"github.com/rAtAtUY6/CoW-bot/internal/catalog"
	"github.com/rAtAtUY6/CoW-bot/internal/config"
	"github.com/rAtAtUY6/CoW-bot/internal/controller"
	"github.com/rAtAtUY6/CoW-bot/internal/dialog"
	"github.com/rAtAtUY6/CoW-bot/internal/sheets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, cfg.LogDir)
	defer logger.Sync()

	logger.Info("Starting lesson recording bot",
		zap.String("environment", cfg.Environment),
		zap.Int("token_length", len(cfg.TelegramToken)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sheetsClient := sheets.NewClient(cfg.SheetsURL, cfg.HTTPTimeout, logger)
	flow := dialog.NewFlow(dialog.NewStore(), catalog.Default(), sheetsClient, logger)
	guard := dialog.NewGuard()

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, flow, guard, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	logger.Info("🤖 Bot started")

	botController.Start(ctx)

	logger.Info("⛔ Bot stopped")
}
