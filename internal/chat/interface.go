package chat

import (
	"context"

	"ai-chatbot-backend/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Stream runs one conversation turn: append the user message, relay the
	// completion stream through sink fragment by fragment, then commit the
	// accumulated assistant reply and trim the window.
	Stream(ctx context.Context, input StreamInput, sink FragmentSink) (StreamOutput, error)

	// Memory controls
	Clear(ctx context.Context, sessionID string) error
	SetMemory(ctx context.Context, input SetMemoryInput) error

	// Exports
	ExportJSON(ctx context.Context, sessionID string) ([]byte, error)
	ExportText(ctx context.Context, sessionID string) (string, error)
	Export(ctx context.Context, sessionID string) ([]model.Message, error)

	// File-based transcripts (CLI use)
	SaveTranscript(ctx context.Context, input SaveInput) (SaveOutput, error)
	SaveTranscriptJSON(ctx context.Context, input SaveInput) (SaveOutput, error)
	LoadTranscript(ctx context.Context, input LoadInput) error
}
