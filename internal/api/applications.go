package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Hao186188/parttime-job-frontend/internal/dtos"
	"github.com/Hao186188/parttime-job-frontend/internal/models"
)

type applicationsData struct {
	Applications []models.Application `json:"applications"`
}

// Apply submits an application for the authenticated student.
func (c *Client) Apply(ctx context.Context, req dtos.ApplicationRequest) (*models.Application, error) {
	var data struct {
		Application *models.Application `json:"application"`
	}
	if err := c.request(ctx, http.MethodPost, "/applications", req, &data); err != nil {
		return nil, err
	}
	return data.Application, nil
}

// MyApplications lists the authenticated student's submissions.
func (c *Client) MyApplications(ctx context.Context) ([]models.Application, error) {
	var data applicationsData
	if err := c.request(ctx, http.MethodGet, "/applications/student/my-applications", nil, &data); err != nil {
		return nil, err
	}
	return data.Applications, nil
}

// EmployerApplications lists applicants across the employer's postings.
func (c *Client) EmployerApplications(ctx context.Context) ([]models.Application, error) {
	var data applicationsData
	if err := c.request(ctx, http.MethodGet, "/applications/employer/job-applications", nil, &data); err != nil {
		return nil, err
	}
	return data.Applications, nil
}

// UpdateApplicationStatus moves one application through the employer's
// pipeline (e.g. accepted, rejected).
func (c *Client) UpdateApplicationStatus(ctx context.Context, id string, req dtos.StatusUpdateRequest) error {
	return c.request(ctx, http.MethodPut, "/applications/"+url.PathEscape(id)+"/status", req, nil)
}

// WithdrawApplication deletes the student's own application.
func (c *Client) WithdrawApplication(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/applications/"+url.PathEscape(id), nil, nil)
}

// ApplicationStatistics returns the employer dashboard counters.
func (c *Client) ApplicationStatistics(ctx context.Context) (*models.ApplicationStatistics, error) {
	var data struct {
		Statistics *models.ApplicationStatistics `json:"statistics"`
	}
	if err := c.request(ctx, http.MethodGet, "/applications/employer/statistics", nil, &data); err != nil {
		return nil, err
	}
	return data.Statistics, nil
}
