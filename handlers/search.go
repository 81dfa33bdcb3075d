package handlers

import (
	"net/http"

	"coworkly/models"
	"coworkly/services/tools"
	"coworkly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler exposes the coworking search directly, bypassing the
// assistant. The tool layer already returns a uniform payload on failure, so
// the handler responds 200 either way and the client branches on "success".
func SearchHandler(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		var args models.SearchToolArgs
		if err := c.ShouldBindJSON(&args); err != nil {
			logger.Error("Invalid search request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, svc.SearchCoworkings(args))
	}
}
