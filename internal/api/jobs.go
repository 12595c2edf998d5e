package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Hao186188/parttime-job-frontend/internal/dtos"
	"github.com/Hao186188/parttime-job-frontend/internal/models"
)

type jobsData struct {
	Jobs []models.Job `json:"jobs"`
}

type jobData struct {
	Job *models.Job `json:"job"`
}

// GetJobs lists jobs. query may be nil; when present it is passed through to
// the server unchanged (search, location, limit, ...).
func (c *Client) GetJobs(ctx context.Context, query url.Values) ([]models.Job, error) {
	path := "/jobs"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var data jobsData
	if err := c.request(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return data.Jobs, nil
}

// GetFeaturedJobs lists jobs flagged for promotional placement.
func (c *Client) GetFeaturedJobs(ctx context.Context) ([]models.Job, error) {
	var data jobsData
	if err := c.request(ctx, http.MethodGet, "/jobs/featured", nil, &data); err != nil {
		return nil, err
	}
	return data.Jobs, nil
}

// GetJob fetches one listing by id.
func (c *Client) GetJob(ctx context.Context, id string) (*models.Job, error) {
	var data jobData
	if err := c.request(ctx, http.MethodGet, "/jobs/"+url.PathEscape(id), nil, &data); err != nil {
		return nil, err
	}
	return data.Job, nil
}

// GetEmployerJobs lists the authenticated employer's own postings.
func (c *Client) GetEmployerJobs(ctx context.Context) ([]models.Job, error) {
	var data jobsData
	if err := c.request(ctx, http.MethodGet, "/jobs/employer/my-jobs", nil, &data); err != nil {
		return nil, err
	}
	return data.Jobs, nil
}

// CreateJob posts a new listing on behalf of the authenticated employer.
func (c *Client) CreateJob(ctx context.Context, req dtos.JobCreationRequest) (*models.Job, error) {
	var data jobData
	if err := c.request(ctx, http.MethodPost, "/jobs", req, &data); err != nil {
		return nil, err
	}
	return data.Job, nil
}

// UpdateJob modifies an existing posting.
func (c *Client) UpdateJob(ctx context.Context, id string, req dtos.JobUpdateRequest) (*models.Job, error) {
	var data jobData
	if err := c.request(ctx, http.MethodPut, "/jobs/"+url.PathEscape(id), req, &data); err != nil {
		return nil, err
	}
	return data.Job, nil
}

// DeleteJob removes a posting.
func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/jobs/"+url.PathEscape(id), nil, nil)
}
