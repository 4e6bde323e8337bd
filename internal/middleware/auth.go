package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/doctors-portal/api/internal/auth"
	"github.com/doctors-portal/api/internal/store"
)

// ContextUserEmail is the gin context key holding the authenticated
// identity set by RequireAuth.
const ContextUserEmail = "userEmail"

// RequireAuth gates a route on a valid bearer token. A missing
// Authorization header is 401; a header that fails validation is 403.
// The two cases are deliberately distinct.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := tokens.Validate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(ContextUserEmail, email)
		c.Next()
	}
}

// RequireAdmin composes after RequireAuth: the authenticated identity
// must have an admin user record. A missing record counts as non-admin
// rather than an error.
func RequireAdmin(users store.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextUserEmail)

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to check admin role"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			return
		}

		c.Next()
	}
}
