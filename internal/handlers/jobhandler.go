package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hao186188/parttime-job-frontend/internal/api"
	"github.com/Hao186188/parttime-job-frontend/internal/dtos"
	"github.com/Hao186188/parttime-job-frontend/internal/listing"
	"github.com/Hao186188/parttime-job-frontend/internal/models"
	"github.com/Hao186188/parttime-job-frontend/internal/services"
)

// featuredSidebarCount matches the promotional sidebar on the listing page.
const featuredSidebarCount = 3

// JobHandler serves the listing pages: browse/search/filter over the cached
// collection, job detail, and the employer's posting management.
type JobHandler struct {
	Listing *services.ListingService
	Client  *api.Client
}

func NewJobHandler(l *services.ListingService, c *api.Client) *JobHandler {
	return &JobHandler{Listing: l, Client: c}
}

// ListJobs is GET /jobs. Criteria come from the query string; the result is
// recomputed over the cached collection, never re-fetched. The featured
// sidebar is filled from the same collection, independent of the criteria.
func (h *JobHandler) ListJobs(c *gin.Context) {
	criteria := listing.ParseCriteria(c.Request.URL.Query())
	jobs := h.Listing.Jobs()

	result := listing.Recompute(jobs, criteria)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"jobs":     result,
			"total":    len(result),
			"featured": listing.Featured(jobs, featuredSidebarCount),
		},
	})
}

// FeaturedJobs is GET /jobs/featured (the home page strip).
func (h *JobHandler) FeaturedJobs(c *gin.Context) {
	jobs, err := h.Client.GetFeaturedJobs(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"jobs": jobs},
	})
}

// GetJob is GET /jobs/:id.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.Client.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}

	// Similar jobs for the detail sidebar: same category, current job excluded.
	similar := listing.Recompute(h.Listing.Jobs(), listing.Criteria{
		Categories: []string{job.Category},
	})
	sidebar := make([]models.Job, 0, featuredSidebarCount)
	for _, s := range similar {
		if s.ID == job.ID {
			continue
		}
		sidebar = append(sidebar, s)
		if len(sidebar) == featuredSidebarCount {
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"job": job, "similarJobs": sidebar},
	})
}

// EmployerJobs is GET /jobs/employer/my-jobs.
func (h *JobHandler) EmployerJobs(c *gin.Context) {
	jobs, err := h.Client.GetEmployerJobs(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"jobs": jobs},
	})
}

// CreateJob is POST /jobs.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Dữ liệu không hợp lệ: " + err.Error(),
		})
		return
	}

	job, err := h.Client.CreateJob(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"job": job},
	})
}

// UpdateJob is PUT /jobs/:id.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Dữ liệu không hợp lệ: " + err.Error(),
		})
		return
	}

	job, err := h.Client.UpdateJob(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"job": job},
	})
}

// DeleteJob is DELETE /jobs/:id.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.Client.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
