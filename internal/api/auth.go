package api

import (
	"context"
	"net/http"

	"github.com/Hao186188/parttime-job-frontend/internal/dtos"
	"github.com/Hao186188/parttime-job-frontend/internal/models"
)

// Credentials is what a successful register or login returns. The caller is
// responsible for handing both to the session store.
type Credentials struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates an account and returns its fresh credentials.
func (c *Client) Register(ctx context.Context, req dtos.RegisterRequest) (*Credentials, error) {
	var creds Credentials
	if err := c.request(ctx, http.MethodPost, "/auth/register", req, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Login authenticates and returns credentials.
func (c *Client) Login(ctx context.Context, req dtos.LoginRequest) (*Credentials, error) {
	var creds Credentials
	if err := c.request(ctx, http.MethodPost, "/auth/login", req, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Me returns the identity the server associates with the current token.
// This is the session store's reconcile call.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var data struct {
		User *models.User `json:"user"`
	}
	if err := c.request(ctx, http.MethodGet, "/auth/me", nil, &data); err != nil {
		return nil, err
	}
	return data.User, nil
}
