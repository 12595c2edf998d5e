package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hao186188/parttime-job-frontend/internal/api"
)

// respondErr maps a remote-call failure onto our own response envelope.
// Server rejections keep their status and message; transport failures become
// a 502 with the generic fallback. Nothing is retried.
func respondErr(c *gin.Context, err error) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{
			"success": false,
			"message": apiErr.Message,
		})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{
		"success": false,
		"message": api.Message(err),
	})
}

// HealthCheck is GET /health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "parttime-job-frontend"})
}
