package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abdallaElamawy03/plant-back-end/auth"
	"github.com/abdallaElamawy03/plant-back-end/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Admin-gated handlers check the role rule before anything else, so the
// rejection paths are testable end to end through the auth middleware.
func TestAdminGates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ts := auth.NewTokenService(testAuthConfig())

	r := gin.New()
	authed := r.Group("", middleware.Auth(ts))
	authed.GET("/users", GetAllUsers())
	authed.POST("/announce/add", AddAnnouncement())
	authed.DELETE("/announce/deleteannounce/:id", DeleteAnnouncement())
	authed.DELETE("/posts/a/:id", DeletePostAdmin())

	issue := func(roles auth.RoleSet) string {
		token, err := ts.IssueAccessToken("bob", roles, time.Minute)
		require.NoError(t, err)
		return token
	}

	do := func(method, path, bearer string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer "+bearer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	adminOnly := []struct {
		name   string
		method string
		path   string
	}{
		{"list all users", http.MethodGet, "/users"},
		{"add announcement", http.MethodPost, "/announce/add"},
		{"delete announcement", http.MethodDelete, "/announce/deleteannounce/5f1d7f3b9d3b2c1a2b3c4d5e"},
		{"admin delete post", http.MethodDelete, "/posts/a/5f1d7f3b9d3b2c1a2b3c4d5e"},
	}

	for _, op := range adminOnly {
		t.Run(op.name+" rejects a non-admin", func(t *testing.T) {
			w := do(op.method, op.path, issue(auth.RoleSet{"user"}))
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Contains(t, w.Body.String(), "Unauthorized - Admin access only")
		})

		t.Run(op.name+" rejects a refresh-derived principal", func(t *testing.T) {
			token, err := ts.IssueRefreshToken("bob", time.Minute)
			require.NoError(t, err)
			w := do(op.method, op.path, token)
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}

	t.Run("manager role is not admin", func(t *testing.T) {
		w := do(http.MethodGet, "/users", issue(auth.RoleSet{"manager"}))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
