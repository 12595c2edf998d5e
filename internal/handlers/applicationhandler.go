package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hao186188/parttime-job-frontend/internal/api"
	"github.com/Hao186188/parttime-job-frontend/internal/dtos"
)

// ApplicationHandler forwards apply/withdraw/status actions to the remote
// API. Each action is atomic from the UI's view: it either succeeds entirely
// or comes back as a failure message with no local state change.
type ApplicationHandler struct {
	Client *api.Client
}

func NewApplicationHandler(c *api.Client) *ApplicationHandler {
	return &ApplicationHandler{Client: c}
}

// Apply is POST /applications.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Dữ liệu không hợp lệ: " + err.Error(),
		})
		return
	}

	app, err := h.Client.Apply(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"application": app},
	})
}

// MyApplications is GET /applications/student/my-applications.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	apps, err := h.Client.MyApplications(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"applications": apps},
	})
}

// EmployerApplications is GET /applications/employer/job-applications.
func (h *ApplicationHandler) EmployerApplications(c *gin.Context) {
	apps, err := h.Client.EmployerApplications(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"applications": apps},
	})
}

// UpdateStatus is PUT /applications/:id/status.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Dữ liệu không hợp lệ: " + err.Error(),
		})
		return
	}

	if err := h.Client.UpdateApplicationStatus(c.Request.Context(), c.Param("id"), req); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Withdraw is DELETE /applications/:id.
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	if err := h.Client.WithdrawApplication(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Statistics is GET /applications/employer/statistics.
func (h *ApplicationHandler) Statistics(c *gin.Context) {
	stats, err := h.Client.ApplicationStatistics(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"statistics": stats},
	})
}
