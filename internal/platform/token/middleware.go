package token

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the verified caller id.
const ContextUserID = "userID"

// AuthRequired returns a Gin middleware that validates the bearer credential
// and restricts access to authenticated callers. It is the single
// enforcement point for owner-scoped routes: handlers behind it read the
// caller identity from the context and never parse tokens themselves.
//
// CORS preflight requests (OPTIONS) pass through unconditionally so that
// cross-origin capability probing works without credentials.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed!"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		if secret == "" {
			// Server misconfiguration (signing key not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server misconfigured."})
			return
		}

		claims, err := Verify(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed!"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
