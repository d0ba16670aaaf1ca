package http

import (
	"ai-chatbot-backend/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id" binding:"required"`
}

func (r chatReq) toInput() chat.StreamInput {
	return chat.StreamInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

type clearReq struct {
	SessionID string `json:"session_id" binding:"required"`
}

type memoryReq struct {
	Turns     int    `json:"turns"`
	SessionID string `json:"session_id"` // optional: empty updates the shared default
}

func (r memoryReq) toInput() chat.SetMemoryInput {
	return chat.SetMemoryInput{
		SessionID: r.SessionID,
		Turns:     r.Turns,
	}
}

type exportReq struct {
	SessionID string `form:"session_id" binding:"required"`
}

// --- Response DTOs ---

// deltaFrame is one SSE payload carrying an incremental reply fragment.
type deltaFrame struct {
	Delta string `json:"delta"`
}

// errorFrame signals a mid-stream abort to a caller already receiving frames.
type errorFrame struct {
	Error string `json:"error"`
}

type clearResp struct {
	SessionID string `json:"session_id"`
}

type memoryResp struct {
	Turns       int `json:"turns"`
	MaxMessages int `json:"max_messages"`
}

func newMemoryResp(turns int) memoryResp {
	return memoryResp{
		Turns:       turns,
		MaxMessages: chat.MaxMessages(turns),
	}
}
