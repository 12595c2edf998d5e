package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hao186188/parttime-job-frontend/internal/api"
	"github.com/Hao186188/parttime-job-frontend/internal/dtos"
	"github.com/Hao186188/parttime-job-frontend/internal/session"
)

// AuthHandler owns login, registration, logout and the identity check. It is
// the only place the session store is written from.
type AuthHandler struct {
	Client *api.Client
	Store  *session.Store
}

func NewAuthHandler(c *api.Client, s *session.Store) *AuthHandler {
	return &AuthHandler{Client: c, Store: s}
}

// Register is POST /auth/register. On success the returned credentials are
// recorded in the session store before being echoed back.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Dữ liệu không hợp lệ: " + err.Error(),
		})
		return
	}

	creds, err := h.Client.Register(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	if err := h.Store.SetSession(c.Request.Context(), creds.Token, creds.User); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"token": creds.Token, "user": creds.User},
	})
}

// Login is POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Dữ liệu không hợp lệ: " + err.Error(),
		})
		return
	}

	creds, err := h.Client.Login(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	if err := h.Store.SetSession(c.Request.Context(), creds.Token, creds.User); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"token": creds.Token, "user": creds.User},
	})
}

// Logout is POST /auth/logout. Purely local: the token is forgotten, not
// revoked server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Store.Clear(c.Request.Context()); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me is GET /auth/me. It reconciles the cached identity against the remote
// API: a stale or revoked token leaves the session cleared and answers 401.
func (h *AuthHandler) Me(c *gin.Context) {
	if !h.Store.IsAuthenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Vui lòng đăng nhập để tiếp tục",
		})
		return
	}

	if err := h.Store.Reconcile(c.Request.Context(), h.Client); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Phiên đăng nhập đã hết hạn",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"user": h.Store.CurrentUser()},
	})
}
