package handlers

import (
	"careinsight/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped Zap logger from the Gin context, falling back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// currentUserID returns the caller identity set by the auth middleware, or "".
func currentUserID(c *gin.Context) string {
	raw, exists := c.Get("userID")
	if !exists || raw == nil {
		return ""
	}
	userID, _ := raw.(string)
	return userID
}
