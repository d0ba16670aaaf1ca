package repository

import (
	"context"

	"ai-chatbot-backend/internal/model"
)

// Session is the mutable conversation state handed to a turn while its lock
// is held. Messages returns a copy; Append and Replace mutate the stored
// conversation.
type Session interface {
	Messages() []model.Message
	Append(msg model.Message)
	Replace(msgs []model.Message)
}

//go:generate mockery --name SessionRepository
type SessionRepository interface {
	// Turn runs fn while holding the session's turn lock, creating the session
	// on first touch. Two concurrent turns on the same id serialize; turns on
	// different ids proceed independently. A cancelled ctx while waiting for
	// the lock returns ctx.Err() without touching the session.
	Turn(ctx context.Context, id string, fn func(sess Session) error) error

	// Snapshot returns a read-only copy of the conversation. An unknown id
	// behaves as if it held only the default system message; nothing is
	// created.
	Snapshot(id string) []model.Message

	// Clear resets the conversation to the default system message. Idempotent
	// even when the session never existed.
	Clear(id string)

	// Replace substitutes the whole conversation (load/import paths).
	Replace(id string, msgs []model.Message)

	// Capacity returns the memory window for a session in turns: the
	// per-session override when set, otherwise the shared default.
	Capacity(id string) int
	SetCapacity(id string, turns int)
	SetDefaultCapacity(turns int)
}
