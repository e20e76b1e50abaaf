// internal/interfaces/http/handlers/chat.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/digistore-backend/internal/domain/catalog"
	"github.com/your-org/digistore-backend/internal/domain/chat"
)

// ChatHandler handles the storefront chat widget
type ChatHandler struct {
	loader *catalog.Loader
}

// NewChatHandler creates a new chat handler
func NewChatHandler(loader *catalog.Loader) *ChatHandler {
	return &ChatHandler{
		loader: loader,
	}
}

// ChatRequest is a single customer utterance
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Reply handles POST /chat
func (h *ChatHandler) Reply(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	reply := chat.Classify(req.Message, h.loader.Products())

	c.JSON(http.StatusOK, gin.H{
		"message": "Reply generated",
		"data":    reply,
	})
}
