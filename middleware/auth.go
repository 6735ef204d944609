// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"careinsight/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware resolves the bearer token to a user ID and stores it as "userID".
// Requests without a valid token never reach the handler.
func AuthMiddleware(verifier utils.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthenticated(c)
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			abortUnauthenticated(c)
			return
		}

		userID, err := verifier.VerifyToken(c.Request.Context(), tokenString)
		if err != nil || userID == "" {
			zap.L().Debug("Token verification failed", zap.Error(err), zap.String("ip", getClientIP(c)))
			abortUnauthenticated(c)
			return
		}

		c.Set("userID", userID)
		if l, ok := c.Get("logger"); ok {
			if logger, ok := l.(*zap.Logger); ok {
				c.Set("logger", logger.With(zap.String("userId", userID)))
			}
		}
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
		Error:   "unauthenticated",
		Message: "User must be logged in",
	})
}
