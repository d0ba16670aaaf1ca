package http

import (
	"github.com/gin-gonic/gin"

	"ai-chatbot-backend/internal/chat"
	pkgLog "ai-chatbot-backend/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Clear(c *gin.Context)
	SetMemory(c *gin.Context)
	ExportJSON(c *gin.Context)
	ExportText(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l pkgLog.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
