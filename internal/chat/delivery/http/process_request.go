package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds the turn request body. Message emptiness is the
// usecase's call: whitespace-only input must be rejected there, before any
// session mutation.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processClearReq binds the clear request body.
func (h *handler) processClearReq(c *gin.Context) (clearReq, error) {
	var req clearReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processMemoryReq binds the memory capacity request body.
func (h *handler) processMemoryReq(c *gin.Context) (memoryReq, error) {
	var req memoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processExportReq binds the export query parameters.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
