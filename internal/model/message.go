package model

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ValidRole reports whether r is one of the three conversation roles.
func ValidRole(r Role) bool {
	return r == RoleSystem || r == RoleUser || r == RoleAssistant
}

// Message is a single role-tagged entry in a conversation. Content is never
// nil; it may be empty only while an assistant reply is still streaming.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// DefaultSystemPrompt seeds every new session. Kept short on purpose: the
// assistant is meant to be concise, not exploratory.
const DefaultSystemPrompt = "You are a helpful, concise assistant. Keep answers short unless asked."

// SystemMessage builds the leading system message for a conversation.
// An empty prompt falls back to DefaultSystemPrompt.
func SystemMessage(prompt string) Message {
	if prompt == "" {
		prompt = DefaultSystemPrompt
	}
	return Message{Role: RoleSystem, Content: prompt}
}

// CloneMessages returns an independent copy of a conversation so callers can
// hold snapshots without racing the store.
func CloneMessages(msgs []Message) []Message {
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}
