package chat

import "ai-chatbot-backend/internal/model"

// DefaultMemoryTurns is the memory window used when no capacity was configured.
const DefaultMemoryTurns = 10

// MaxMessages converts a capacity in turns to a message count: the leading
// system message plus one user and one assistant message per turn.
func MaxMessages(turns int) int {
	return 1 + 2*turns
}

// TrimWindow bounds a conversation to the given capacity. The conversation is
// returned unchanged when it fits; otherwise the leading system message is
// kept together with the most recent 2*turns messages, discarding the oldest
// pairs first. Pure function: the input slice is never mutated.
func TrimWindow(msgs []model.Message, turns int) []model.Message {
	if turns < 1 {
		turns = DefaultMemoryTurns
	}
	limit := MaxMessages(turns)
	if len(msgs) <= limit {
		return msgs
	}

	trimmed := make([]model.Message, 0, limit)
	trimmed = append(trimmed, msgs[0])
	trimmed = append(trimmed, msgs[len(msgs)-(limit-1):]...)
	return trimmed
}
