package usecase

import (
	"context"
	"fmt"
	"os"

	"ai-chatbot-backend/internal/chat"
	"ai-chatbot-backend/internal/model"
	"ai-chatbot-backend/internal/transcript"
)

// Export returns a read-only snapshot of a session's conversation. An unknown
// session exports as the default system message alone.
func (uc *implUseCase) Export(ctx context.Context, sessionID string) ([]model.Message, error) {
	return uc.repo.Snapshot(sessionID), nil
}

// ExportJSON renders the conversation as an indented JSON array of
// {role, content} objects.
func (uc *implUseCase) ExportJSON(ctx context.Context, sessionID string) ([]byte, error) {
	data, err := transcript.EncodeJSON(uc.repo.Snapshot(sessionID))
	if err != nil {
		return nil, fmt.Errorf("encode transcript: %w", err)
	}
	return data, nil
}

// ExportText renders the conversation in the "<ROLE>: <content>" text format.
func (uc *implUseCase) ExportText(ctx context.Context, sessionID string) (string, error) {
	return transcript.EncodeText(uc.repo.Snapshot(sessionID)), nil
}

// SaveTranscript writes the conversation to a text file and returns the
// filename actually used (synthesized from the timestamp when blank).
func (uc *implUseCase) SaveTranscript(ctx context.Context, input chat.SaveInput) (chat.SaveOutput, error) {
	filename := transcript.ResolveFilename(input.Filename, transcript.ExtText)
	body := transcript.EncodeText(uc.repo.Snapshot(input.SessionID))

	if err := os.WriteFile(filename, []byte(body), 0o644); err != nil {
		return chat.SaveOutput{}, fmt.Errorf("write transcript: %w", err)
	}

	uc.l.Infof(ctx, "transcript for session %q saved to %q", input.SessionID, filename)
	return chat.SaveOutput{Filename: filename}, nil
}

// SaveTranscriptJSON writes the conversation as JSON under the same filename
// policy.
func (uc *implUseCase) SaveTranscriptJSON(ctx context.Context, input chat.SaveInput) (chat.SaveOutput, error) {
	filename := transcript.ResolveFilename(input.Filename, transcript.ExtJSON)

	data, err := transcript.EncodeJSON(uc.repo.Snapshot(input.SessionID))
	if err != nil {
		return chat.SaveOutput{}, fmt.Errorf("encode transcript: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return chat.SaveOutput{}, fmt.Errorf("write transcript: %w", err)
	}

	uc.l.Infof(ctx, "transcript for session %q exported to %q", input.SessionID, filename)
	return chat.SaveOutput{Filename: filename}, nil
}

// LoadTranscript replaces a session's conversation with the contents of a
// text transcript. The loaded conversation is trimmed to the session's
// capacity immediately, keeping the most recent turns.
func (uc *implUseCase) LoadTranscript(ctx context.Context, input chat.LoadInput) error {
	raw, err := os.ReadFile(input.Filename)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", chat.ErrTranscriptNotFound, input.Filename)
		}
		return fmt.Errorf("read transcript: %w", err)
	}

	msgs := transcript.DecodeText(string(raw))
	msgs = chat.TrimWindow(msgs, uc.repo.Capacity(input.SessionID))
	uc.repo.Replace(input.SessionID, msgs)

	uc.l.Infof(ctx, "transcript %q loaded into session %q (%d messages)", input.Filename, input.SessionID, len(msgs))
	return nil
}
