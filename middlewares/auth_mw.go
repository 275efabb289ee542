package middlewares

import (
	"net/http"
	"strings"

	"popout/utils"

	"github.com/gin-gonic/gin"
)

const ContextUserID = "userId"

// sessionToken pulls the JWT from the session cookie, falling back to
// a bearer Authorization header for non-browser clients.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(utils.SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	auth := c.GetHeader("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := sessionToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}

		claims, err := utils.ValidateSessionToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session", "details": err.Error()})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
