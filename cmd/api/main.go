package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"notes-to-tasks/config"
	_ "notes-to-tasks/docs" // Swagger docs
	"notes-to-tasks/internal/bootstrap"
	"notes-to-tasks/internal/httpserver"
	tgDelivery "notes-to-tasks/internal/suggestion/delivery/telegram"
	"notes-to-tasks/pkg/log"
	"notes-to-tasks/pkg/telegram"
)

// @title       Notes to Tasks API
// @description Turns free-form notes and note photos into task suggestions, with AI extraction and a keyword heuristic fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	configFile := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	// 1. Configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Notes to Tasks...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Suggestion.Timezone)

	// 3. Suggestion domain
	suggestionUC, err := bootstrap.NewSuggestionUseCase(ctx, cfg, logger, bootstrap.Options{})
	if err != nil {
		logger.Error(ctx, "Failed to initialize suggestion use case: ", err)
		return
	}

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, suggestionUC, bot)
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RequestsPerMin:  cfg.RateLimit.RequestsPerMin,
		SuggestionUC:    suggestionUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
