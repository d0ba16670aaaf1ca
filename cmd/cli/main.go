package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"ai-chatbot-backend/config"
	"ai-chatbot-backend/internal/chat"
	"ai-chatbot-backend/internal/chat/repository/inmem"
	"ai-chatbot-backend/internal/chat/usecase"
	pkgLog "ai-chatbot-backend/pkg/log"
	"ai-chatbot-backend/pkg/openai"
)

// CLI chat loop: a thin transport adapter over the chat usecase.
// Commands: :clear, :memory <N>, :save [file], :load <file>, :export json [file].
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Keep interactive output clean; only warnings and errors reach the terminal.
	logger := pkgLog.Init(pkgLog.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	llmClient, err := openai.New(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	if err != nil {
		fmt.Println("Failed to initialize OpenAI client: ", err)
		return
	}

	store := inmem.New(inmem.Config{
		SystemPrompt: cfg.Chat.SystemPrompt,
		DefaultTurns: cfg.Chat.MemoryTurns,
	}, logger)

	uc := usecase.New(logger, llmClient, store, cfg.OpenAI.Temperature)

	ctx := context.Background()
	sessionID := uuid.NewString()

	fmt.Println("Memory ON. Commands: :clear, :memory <N>, :save [file], :load <file>, :export json [file]. Type 'quit' to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		switch {
		case isQuit(line):
			fmt.Println("Bot: Bye!")
			return

		case strings.HasPrefix(line, ":clear"):
			uc.Clear(ctx, sessionID)
			fmt.Println("Bot: Memory cleared.")
			fmt.Println()

		case strings.HasPrefix(line, ":memory"):
			parts := strings.Fields(line)
			turns := 0
			if len(parts) == 2 {
				turns, _ = strconv.Atoi(parts[1])
			}
			if err := uc.SetMemory(ctx, chat.SetMemoryInput{SessionID: sessionID, Turns: turns}); err != nil {
				fmt.Println("Bot: Usage -> :memory <number>")
			} else {
				fmt.Printf("Bot: Memory limit set to %d turns.\n", turns)
			}
			fmt.Println()

		case strings.HasPrefix(line, ":save"):
			filename := strings.TrimSpace(strings.TrimPrefix(line, ":save"))
			out, err := uc.SaveTranscript(ctx, chat.SaveInput{SessionID: sessionID, Filename: filename})
			if err != nil {
				fmt.Printf("Bot: Could not save transcript: %v\n", err)
			} else {
				fmt.Printf("Bot: Conversation saved to '%s'.\n", out.Filename)
			}
			fmt.Println()

		case strings.HasPrefix(line, ":load"):
			filename := strings.TrimSpace(strings.TrimPrefix(line, ":load"))
			if filename == "" {
				fmt.Println("Bot: Usage -> :load <filename>")
				fmt.Println()
				continue
			}
			if err := uc.LoadTranscript(ctx, chat.LoadInput{SessionID: sessionID, Filename: filename}); err != nil {
				fmt.Printf("Bot: Could not load transcript: %v\n", err)
			} else {
				fmt.Printf("Bot: Loaded transcript from '%s'.\n", filename)
			}
			fmt.Println()

		case strings.HasPrefix(line, ":export json"):
			filename := strings.TrimSpace(strings.TrimPrefix(line, ":export json"))
			out, err := uc.SaveTranscriptJSON(ctx, chat.SaveInput{SessionID: sessionID, Filename: filename})
			if err != nil {
				fmt.Printf("Bot: Could not export JSON: %v\n", err)
			} else {
				fmt.Printf("Bot: JSON exported to '%s'.\n", out.Filename)
			}
			fmt.Println()

		default:
			fmt.Print("Bot: ")
			_, err := uc.Stream(ctx, chat.StreamInput{SessionID: sessionID, Message: line}, func(delta string) error {
				fmt.Print(delta)
				return nil
			})
			if err != nil {
				fmt.Printf("[error: %v]", err)
			}
			fmt.Println()
			fmt.Println()
		}
	}
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "quit", "exit":
		return true
	}
	return false
}
