package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hao186188/parttime-job-frontend/internal/api"
)

// SavedJobHandler manages a student's bookmarked listings. The bookmarks
// themselves live server-side; this is pure pass-through.
type SavedJobHandler struct {
	Client *api.Client
}

func NewSavedJobHandler(c *api.Client) *SavedJobHandler {
	return &SavedJobHandler{Client: c}
}

// List is GET /users/saved-jobs.
func (h *SavedJobHandler) List(c *gin.Context) {
	jobs, err := h.Client.SavedJobs(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"jobs": jobs},
	})
}

// Save is POST /users/saved-jobs/:id.
func (h *SavedJobHandler) Save(c *gin.Context) {
	if err := h.Client.SaveJob(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// Remove is DELETE /users/saved-jobs/:id.
func (h *SavedJobHandler) Remove(c *gin.Context) {
	if err := h.Client.RemoveSavedJob(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
