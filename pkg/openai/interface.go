package openai

import "context"

// IOpenAI defines the interface for the OpenAI chat-completions client
type IOpenAI interface {
	// StreamChatCompletion opens a streaming completion request. The returned
	// stream delivers chunks in arrival order and must be closed by the caller.
	StreamChatCompletion(ctx context.Context, req *Request) (ChatStream, error)

	// Model returns the configured model identifier
	Model() string
}

// ChatStream is a lazy, finite, non-restartable sequence of completion chunks.
// Recv returns io.EOF after the terminal [DONE] marker.
type ChatStream interface {
	Recv() (*StreamChunk, error)
	Close() error
}
