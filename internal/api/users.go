package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Hao186188/parttime-job-frontend/internal/models"
)

// SavedJobs lists the authenticated student's bookmarked listings.
func (c *Client) SavedJobs(ctx context.Context) ([]models.Job, error) {
	var data jobsData
	if err := c.request(ctx, http.MethodGet, "/users/saved-jobs", nil, &data); err != nil {
		return nil, err
	}
	return data.Jobs, nil
}

// SaveJob bookmarks a listing.
func (c *Client) SaveJob(ctx context.Context, jobID string) error {
	return c.request(ctx, http.MethodPost, "/users/saved-jobs/"+url.PathEscape(jobID), nil, nil)
}

// RemoveSavedJob drops a bookmark.
func (c *Client) RemoveSavedJob(ctx context.Context, jobID string) error {
	return c.request(ctx, http.MethodDelete, "/users/saved-jobs/"+url.PathEscape(jobID), nil, nil)
}
