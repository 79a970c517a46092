package handlers

import (
	"tripcraft/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped logger set by the request logger middleware,
// falling back to the global logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// currentUserID returns the user id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	id := c.GetString("userID")
	return id, id != ""
}
