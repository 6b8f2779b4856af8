package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abdallaElamawy03/plant-back-end/auth"
	"github.com/abdallaElamawy03/plant-back-end/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *auth.Config {
	return &auth.Config{
		AccessSecret:        []byte("access-secret"),
		RefreshSecret:       []byte("refresh-secret"),
		LoginAccessTTL:      30 * time.Minute,
		LoginRefreshTTL:     30 * time.Minute,
		RefreshCookieMaxAge: 7 * 24 * time.Hour,
		CookieSecure:        true,
	}
}

func TestLogout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testAuthConfig()
	r := gin.New()
	r.POST("/auth/logout", Logout(cfg))

	do := func(cookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: utils.RefreshCookieName, Value: cookie})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("with a cookie the cookie is cleared", func(t *testing.T) {
		w := do("some-refresh-token")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Cookie Cleared")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, utils.RefreshCookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("without a cookie it is still a success", func(t *testing.T) {
		w := do("")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("idempotent back to back", func(t *testing.T) {
		first := do("some-refresh-token")
		assert.Equal(t, http.StatusOK, first.Code)
		// client dropped the cookie after the first call
		second := do("")
		assert.Equal(t, http.StatusNoContent, second.Code)
	})

	t.Run("an invalid token is cleared without verification", func(t *testing.T) {
		w := do("definitely-not-a-jwt")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRefreshRejections(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testAuthConfig()
	ts := auth.NewTokenService(cfg)
	r := gin.New()
	r.GET("/auth/refresh", Refresh(cfg, ts))

	do := func(cookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: utils.RefreshCookieName, Value: cookie})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing cookie", func(t *testing.T) {
		w := do("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Unauthorized")
	})

	t.Run("garbage token", func(t *testing.T) {
		w := do("garbage")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Forbidden")
	})

	t.Run("expired refresh token", func(t *testing.T) {
		token, err := ts.IssueRefreshToken("alice", -time.Minute)
		require.NoError(t, err)
		w := do(token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Forbidden")
	})

	t.Run("access token in the refresh cookie is rejected", func(t *testing.T) {
		token, err := ts.IssueAccessToken("alice", auth.RoleSet{"user"}, time.Minute)
		require.NoError(t, err)
		w := do(token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
