// Package mockapi provides a mock Anthropic Messages endpoint for local
// development and tests.
package mockapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jordanvaneetveldt/claudewire/internal/anthropic"
	"github.com/jordanvaneetveldt/claudewire/internal/logger"
)

// NewRouter builds a gin engine serving a mock /v1/messages endpoint. The
// handler enforces the request preconditions the model type itself leaves to
// the caller, then answers a canned response.
func NewRouter() *gin.Engine {
	log := logger.GetLogger().WithComponent("mockapi")

	r := gin.Default()
	r.POST("/v1/messages", func(c *gin.Context) {
		var req anthropic.RequestBody
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := validateRequest(&req); err != nil {
			log.Warn("Rejected request: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Debug("Accepted request for model %s with %d messages", req.Model, len(req.Messages))
		c.JSON(http.StatusOK, mockResponse(&req))
	})

	return r
}

// validateRequest checks the required-field contract of the Messages API.
func validateRequest(req *anthropic.RequestBody) error {
	if req.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be a positive integer")
	}
	if len(req.Messages) == 0 {
		return fmt.Errorf("messages must not be empty")
	}
	if req.Model == "" {
		return fmt.Errorf("model is required")
	}
	for i, msg := range req.Messages {
		if msg.Role != anthropic.RoleUser && msg.Role != anthropic.RoleAssistant {
			return fmt.Errorf("message %d has invalid role %q", i, msg.Role)
		}
	}
	if req.ToolChoice != nil && req.ToolChoice.Type == "tool" {
		found := false
		for _, tool := range req.Tools {
			if tool.Name == req.ToolChoice.Name {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("tool_choice names undeclared tool %q", req.ToolChoice.Name)
		}
	}
	return nil
}

// mockResponse echoes back a short acknowledgment of the last user turn.
func mockResponse(req *anthropic.RequestBody) *anthropic.MessageResponse {
	var lastText string
	for _, msg := range req.Messages {
		for _, block := range msg.Content {
			if block.Type == anthropic.ContentTypeText && block.Text != nil {
				lastText = *block.Text
			}
		}
	}

	inputTokens := 0
	for _, msg := range req.Messages {
		for _, block := range msg.Content {
			if block.Text != nil {
				inputTokens += len(strings.Fields(*block.Text))
			}
		}
	}

	reply := "mock reply to: " + lastText
	return &anthropic.MessageResponse{
		Content:    []anthropic.ContentBlock{anthropic.TextBlock(reply)},
		ID:         "msg_mock_001",
		Model:      req.Model,
		Role:       anthropic.RoleAssistant,
		StopReason: "end_turn",
		Type:       "message",
		Usage: anthropic.Usage{
			InputTokens:  inputTokens,
			OutputTokens: len(strings.Fields(reply)),
		},
	}
}
