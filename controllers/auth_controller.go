package controllers

import (
	"net/http"

	"github.com/abdallaElamawy03/plant-back-end/auth"
	"github.com/abdallaElamawy03/plant-back-end/database"
	"github.com/abdallaElamawy03/plant-back-end/dto"
	"github.com/abdallaElamawy03/plant-back-end/utils"
	"github.com/gin-gonic/gin"
)

// POST /auth
func Login(cfg *auth.Config, ts *auth.TokenService) gin.HandlerFunc {
	verifier := auth.NewCredentialVerifier(database.NewUsers())
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
			return
		}

		user, err := verifier.Verify(c.Request.Context(), utils.NormalizeUsername(body.Username), body.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		roles, err := auth.NewRoleSet(user.Roles)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "there is no roles found"})
			return
		}

		accessToken, err := ts.IssueAccessToken(user.Username, roles, cfg.LoginAccessTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to generate access token"})
			return
		}
		refreshToken, err := ts.IssueRefreshToken(user.Username, cfg.LoginRefreshTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to generate refresh token"})
			return
		}

		utils.SetRefreshCookie(c, cfg, refreshToken)
		c.JSON(http.StatusOK, gin.H{
			"accessToken": accessToken,
			"roles":       roles,
		})
	}
}

// GET /auth/refresh
//
// The refresh token proves identity only; roles are re-resolved from
// storage so deactivation and role changes take effect here even though an
// outstanding access token cannot be recalled early.
func Refresh(cfg *auth.Config, ts *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		cookie, err := c.Cookie(utils.RefreshCookieName)
		if err != nil || cookie == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := ts.ParseRefresh(cookie)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		// A vanished identity is indistinguishable from a bad token on
		// purpose: "never existed" and "deleted" must look the same.
		user, err := database.NewUsers().FindByUsername(ctx, claims.Username)
		if err != nil || user == nil || !user.Active {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		roles, err := auth.NewRoleSet(user.Roles)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		accessToken, err := ts.IssueAccessToken(user.Username, roles, cfg.LoginAccessTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to generate access token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"accessToken": accessToken,
			"roles":       roles,
		})
	}
}

// POST /auth/logout
//
// Idempotent: with no cookie present this is already a success. Clearing
// never validates the token since clearing an invalid one is harmless.
func Logout(cfg *auth.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(utils.RefreshCookieName)
		if err != nil || cookie == "" {
			c.Status(http.StatusNoContent)
			return
		}

		utils.ClearRefreshCookie(c, cfg)
		c.JSON(http.StatusOK, gin.H{"message": "Cookie Cleared"})
	}
}
