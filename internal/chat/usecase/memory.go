package usecase

import (
	"context"

	"ai-chatbot-backend/internal/chat"
)

// Clear resets a session to the default system message. Idempotent for
// unknown sessions.
func (uc *implUseCase) Clear(ctx context.Context, sessionID string) error {
	uc.repo.Clear(sessionID)
	uc.l.Infof(ctx, "session %q cleared", sessionID)
	return nil
}

// SetMemory updates the memory window capacity used on subsequent trims.
// An empty SessionID changes the default shared by all sessions; otherwise
// only the named session is affected. Already-stored history beyond a lower
// capacity is kept until the next turn completes.
func (uc *implUseCase) SetMemory(ctx context.Context, input chat.SetMemoryInput) error {
	if input.Turns < 1 {
		return chat.ErrInvalidTurns
	}

	if input.SessionID == "" {
		uc.repo.SetDefaultCapacity(input.Turns)
		uc.l.Infof(ctx, "default memory capacity set to %d turns", input.Turns)
		return nil
	}

	uc.repo.SetCapacity(input.SessionID, input.Turns)
	uc.l.Infof(ctx, "memory capacity for session %q set to %d turns", input.SessionID, input.Turns)
	return nil
}
