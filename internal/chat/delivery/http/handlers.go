package http

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"ai-chatbot-backend/pkg/response"
)

const doneFrame = "data:[DONE]\n\n"

// Chat godoc
// @Summary     Run one conversation turn
// @Description Appends the user message, streams the assistant reply back as SSE frames ({"delta":"..."}), and ends with a [DONE] marker.
// @Tags        Chat
// @Accept      json
// @Produce     text/event-stream
// @Param       body body chatReq true "Turn request"
// @Success     200 {string} string "SSE stream of delta frames"
// @Failure     400 {object} response.Resp "Bad Request - empty message"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	started := false
	sink := func(delta string) error {
		if !started {
			started = true
			h.writeStreamHeaders(c)
		}
		payload, merr := json.Marshal(deltaFrame{Delta: delta})
		if merr != nil {
			return merr
		}
		if _, werr := fmt.Fprintf(c.Writer, "data:%s\n\n", payload); werr != nil {
			return werr
		}
		c.Writer.Flush()
		return nil
	}

	_, err = h.uc.Stream(ctx, req.toInput(), sink)
	if err != nil {
		if !started {
			// Nothing streamed yet: a plain HTTP error is still possible.
			h.l.Errorf(ctx, "uc.Stream: %v", err)
			h.mapError(c, err)
			return
		}
		// The response is already a stream; signal the abort in-band and close
		// without the [DONE] marker.
		h.l.Errorf(ctx, "uc.Stream aborted mid-stream: %v", err)
		payload, _ := json.Marshal(errorFrame{Error: "stream aborted"})
		fmt.Fprintf(c.Writer, "data:%s\n\n", payload)
		c.Writer.Flush()
		return
	}

	if !started {
		// Zero-fragment reply: the terminal marker is still owed.
		h.writeStreamHeaders(c)
	}
	fmt.Fprint(c.Writer, doneFrame)
	c.Writer.Flush()
}

func (h *handler) writeStreamHeaders(c *gin.Context) {
	header := c.Writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("X-Accel-Buffering", "no")
	c.Writer.Flush()
}

// Clear godoc
// @Summary     Clear session memory
// @Description Resets the session's conversation to the default system message. Idempotent for unknown sessions.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body clearReq true "Session to clear"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClearReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Clear(ctx, req.SessionID); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, clearResp{SessionID: req.SessionID})
}

// SetMemory godoc
// @Summary     Set memory window capacity
// @Description Updates the trim capacity in turns used on subsequent turns. Omitting session_id updates the default shared by all sessions.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body memoryReq true "New capacity"
// @Success     200 {object} memoryResp
// @Failure     400 {object} response.Resp "Bad Request - turns < 1"
// @Router      /api/v1/chat/memory [POST]
func (h *handler) SetMemory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMemoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetMemory(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.SetMemory: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newMemoryResp(req.Turns))
}

// ExportJSON godoc
// @Summary     Export conversation as JSON
// @Description Returns the session's conversation as an indented JSON array of {role, content} objects.
// @Tags        Chat
// @Produce     json
// @Param       session_id query string true "Session ID"
// @Success     200 {array} model.Message
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/export [GET]
func (h *handler) ExportJSON(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := h.uc.ExportJSON(ctx, req.SessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportJSON: %v", err)
		h.mapError(c, err)
		return
	}

	c.Data(200, "application/json; charset=utf-8", data)
}

// ExportText godoc
// @Summary     Export conversation as text
// @Description Downloads the session's conversation in the "<ROLE>: <content>" text format.
// @Tags        Chat
// @Produce     plain
// @Param       session_id query string true "Session ID"
// @Success     200 {string} string
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/export/txt [GET]
func (h *handler) ExportText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := h.uc.ExportText(ctx, req.SessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportText: %v", err)
		h.mapError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="chat_export.txt"`)
	c.Data(200, "text/plain; charset=utf-8", []byte(body))
}
