package middleware

import (
	"net/http"
	"strings"

	"github.com/abdallaElamawy03/plant-back-end/auth"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Auth extracts and verifies the bearer token. Access-token semantics are
// tried first; a refresh token presented as a bearer credential still
// authenticates, but with an empty role set, so role-gated handlers reject
// it. No storage is touched on this path.
func Auth(ts *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Missing or invalid token format"})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		principal, err := ts.VerifyBearer(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden - Invalid or expired token"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// Principal returns the identity the Auth middleware attached to the
// request, or nil if the route was not authenticated.
func Principal(c *gin.Context) *auth.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*auth.Principal)
	return p
}
