package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-chatbot-backend/config"
	_ "ai-chatbot-backend/docs" // Swagger docs
	chatHTTP "ai-chatbot-backend/internal/chat/delivery/http"
	"ai-chatbot-backend/internal/chat/repository/inmem"
	"ai-chatbot-backend/internal/chat/usecase"
	"ai-chatbot-backend/internal/httpserver"
	pkgLog "ai-chatbot-backend/pkg/log"
	"ai-chatbot-backend/pkg/openai"
)

// @title       AI Chatbot Backend
// @description Conversational chat backend with SSE streaming, per-session rolling memory, and transcript export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := pkgLog.Init(pkgLog.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Chatbot Backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Model: %s", cfg.OpenAI.Model)

	// 3. Completion service client
	llmClient, err := openai.New(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}

	// 4. Chat domain
	store := inmem.New(inmem.Config{
		SystemPrompt: cfg.Chat.SystemPrompt,
		DefaultTurns: cfg.Chat.MemoryTurns,
		MaxSessions:  cfg.Chat.MaxSessions,
		SessionTTL:   cfg.Chat.SessionTTL,
	}, logger)

	chatUC := usecase.New(logger, llmClient, store, cfg.OpenAI.Temperature)
	chatHandler := chatHTTP.New(logger, chatUC)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
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
