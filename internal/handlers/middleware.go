package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hao186188/parttime-job-frontend/internal/session"
)

// RequireAuth rejects requests while the session is anonymous. This is the
// gateway's equivalent of the login redirect: the caller gets a 401 and the
// UI sends the user to the login page.
func RequireAuth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Vui lòng đăng nhập để tiếp tục",
			})
			return
		}
		c.Next()
	}
}

// RequireRole additionally requires the cached user to carry the given role
// tag ("student" or "employer").
func RequireRole(store *session.Store, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Vui lòng đăng nhập để tiếp tục",
			})
			return
		}
		if !store.HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Bạn không có quyền thực hiện thao tác này",
			})
			return
		}
		c.Next()
	}
}
