package handlers

import (
	"net/http"

	"coworkly/models"
	"coworkly/services/assistant"
	"coworkly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler returns the handler for one conversational exchange. The
// assistant decides whether to answer directly or call the search/booking
// tools; either way the client gets a text reply plus any structured tool
// results.
func ChatHandler(svc assistant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid chat request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		resp, err := svc.ProcessChat(c.Request.Context(), req)
		if err != nil {
			logger.Error("Chat processing failed",
				zap.String("sessionID", req.SessionID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat message"})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
