package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tokens"
	"github.com/Gurunath-S/Time-Management-Coach-backend/pkg/logger"
	"github.com/Gurunath-S/Time-Management-Coach-backend/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// TokenVerifier is the minimal interface the middleware depends on.
type TokenVerifier interface {
	Verify(raw string) (string, error)
}

const userIDKey = "userID"

// AuthMiddleware returns a Gin middleware that verifies Bearer session
// tokens and stores the resolved user id on the request context. All
// rejections return the same 401 class; the reason is kept to logs and
// metrics only.
func AuthMiddleware(ver TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			metrics.AuthRejected.WithLabelValues("missing").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing token"})
			return
		}
		raw, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || raw == "" {
			metrics.AuthRejected.WithLabelValues("malformed").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header"})
			return
		}

		userID, err := ver.Verify(raw)
		if err != nil {
			reason := "invalid"
			if errors.Is(err, tokens.ErrTokenExpired) {
				reason = "expired"
			}
			logger.Debugf("auth rejected (%s): %v", reason, err)
			metrics.AuthRejected.WithLabelValues(reason).Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id stored by AuthMiddleware,
// or "" when the request is unauthenticated.
func UserID(c *gin.Context) string {
	v, _ := c.Get(userIDKey)
	s, _ := v.(string)
	return s
}
