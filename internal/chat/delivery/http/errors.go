package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-chatbot-backend/internal/chat"
	"ai-chatbot-backend/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses.
// Validation failures stay 4xx; anything unexpected is a 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, chat.ErrInvalidTurns):
		response.Error(c, err)
	case errors.Is(err, chat.ErrTranscriptNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
