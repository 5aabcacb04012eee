package controller

import (
	"biotutor_backend/internal/service"
	"biotutor_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatController struct {
	AIService *service.AIService
}

func NewChatController(aiService *service.AIService) *ChatController {
	return &ChatController{AIService: aiService}
}

type chatRequest struct {
	Messages []service.ChatMessage `json:"messages"`
}

// Chat godoc
// @Summary Streaming AI tutor chat
// @Description Relays the provider's token stream as a chunked text/plain body, in arrival order. A provider failure before the first token returns a 500 JSON body; a failure mid-stream truncates the output.
// @Tags chat
// @Accept json
// @Produce plain
// @Security ApiKeyAuth
// @Param body body chatRequest true "message transcript"
// @Success 200 {string} string "streamed tutor output"
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	var req chatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stream, errChan := c.AIService.ChatStream(ctx.Request.Context(), req.Messages)

	// The status line is committed on the first fragment, so a pre-stream
	// provider failure can still produce a structured 500.
	started := false
	for content := range stream {
		if !started {
			ctx.Header("Content-Type", "text/plain; charset=utf-8")
			ctx.Status(http.StatusOK)
			started = true
		}
		ctx.Writer.WriteString(content)
		ctx.Writer.Flush()
	}

	if err := <-errChan; err != nil {
		if !started {
			logger.Log.Error("chat completion failed", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Headers are already on the wire; the caller observes a truncated
		// stream. No retry.
		logger.Log.Error("chat stream aborted mid-flight", zap.Error(err))
		return
	}

	if !started {
		ctx.Header("Content-Type", "text/plain; charset=utf-8")
		ctx.Status(http.StatusOK)
	}
}
