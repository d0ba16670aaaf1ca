package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("", h.Chat)
	rg.POST("/clear", h.Clear)
	rg.POST("/memory", h.SetMemory)
	rg.GET("/export", h.ExportJSON)
	rg.GET("/export/txt", h.ExportText)
}
