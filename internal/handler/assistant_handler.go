package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stc-cow/cowtrack-backend-go/internal/assistant"
	"github.com/stc-cow/cowtrack-backend-go/pkg/response"
)

// AssistantHandler handles HTTP requests for the Q&A helper
type AssistantHandler struct {
	manager *assistant.Manager
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(manager *assistant.Manager) *AssistantHandler {
	return &AssistantHandler{manager: manager}
}

type askRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question" binding:"required"`
}

// Ask handles POST /api/v1/assistant/ask
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "A question is required")
		return
	}

	sessionID, answer, err := h.manager.Ask(req.SessionID, req.Question)
	if err != nil {
		response.InternalError(c, "Failed to answer")
		return
	}
	response.Success(c, gin.H{"session_id": sessionID, "answer": answer})
}

// Transcript handles GET /api/v1/assistant/sessions/:id
func (h *AssistantHandler) Transcript(c *gin.Context) {
	messages := h.manager.Transcript(c.Param("id"))
	if messages == nil {
		response.NotFound(c, "Session not found")
		return
	}
	response.Success(c, messages)
}
